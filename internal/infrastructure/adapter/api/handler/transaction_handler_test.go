package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/middleware"
	tokenauth "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/auth"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/logger"
	timeProvider "github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/time"
)

// fakeLedger lets each test script the usecase outcome
type fakeLedger struct {
	err          error
	lastIdentity entity.Identity
	views        []usecase.TransactionView
}

func (f *fakeLedger) ListTransactions(ctx context.Context, caller entity.Identity) ([]usecase.TransactionView, error) {
	f.lastIdentity = caller
	return f.views, f.err
}
func (f *fakeLedger) ListOrders(ctx context.Context, caller entity.Identity) ([]usecase.OrderView, error) {
	f.lastIdentity = caller
	return nil, f.err
}
func (f *fakeLedger) InitiateTransaction(ctx context.Context, caller entity.Identity, req usecase.InitiateTransactionRequest) (string, error) {
	f.lastIdentity = caller
	return req.TransactionID, f.err
}
func (f *fakeLedger) InitiateOrder(ctx context.Context, caller entity.Identity, req usecase.InitiateOrderRequest) (string, error) {
	f.lastIdentity = caller
	return req.OrderID, f.err
}
func (f *fakeLedger) VerifyTransaction(ctx context.Context, caller entity.Identity, req usecase.ModifyRequest) error {
	f.lastIdentity = caller
	return f.err
}
func (f *fakeLedger) VerifyOrder(ctx context.Context, caller entity.Identity, req usecase.ModifyRequest) error {
	f.lastIdentity = caller
	return f.err
}
func (f *fakeLedger) DeactivateTransaction(ctx context.Context, caller entity.Identity, id string) error {
	f.lastIdentity = caller
	return f.err
}
func (f *fakeLedger) DeactivateOrder(ctx context.Context, caller entity.Identity, id string) error {
	f.lastIdentity = caller
	return f.err
}

func newTestRouter(ledger usecase.LedgerUseCase) (*gin.Engine, *tokenauth.TokenManager) {
	gin.SetMode(gin.TestMode)

	tokens := tokenauth.NewTokenManager("test-secret", 5*time.Minute, timeProvider.NewRealTimeProvider())
	h := NewTransactionHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	authenticated := router.Group("/", middleware.RequireAuth(tokens))
	authenticated.GET("/gettransactions", h.List)
	authenticated.POST("/initiatetransaction", h.Initiate)
	authenticated.POST("/modifytransaction", h.Verify)
	authenticated.POST("/modifytransaction_delete", h.Deactivate)
	return router, tokens
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, tokens *tokenauth.TokenManager, username string, role entity.Role) string {
	t.Helper()
	token, err := tokens.Issue(&entity.User{Username: username, Role: role})
	require.NoError(t, err)
	return token
}

func TestTransactionEndpoints(t *testing.T) {
	initiateBody := map[string]any{
		"transaction_id": "t1",
		"payment_method": "cash",
		"amount":         100,
		"initiated_for":  "farmer1",
	}

	t.Run("Initiate returns 201 with the id", func(t *testing.T) {
		ledger := &fakeLedger{}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "manager", entity.RoleManager)

		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", token, initiateBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "manager", ledger.lastIdentity.Username)
		assert.Equal(t, entity.RoleManager, ledger.lastIdentity.Role)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Transaction initiated successfully", resp["message"])
		assert.Equal(t, "t1", resp["transaction"])
	})

	t.Run("Missing token rejected with 401", func(t *testing.T) {
		router, _ := newTestRouter(&fakeLedger{})
		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", "", initiateBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Guard conflict surfaces as 400", func(t *testing.T) {
		ledger := &fakeLedger{err: errs.NewPendingEventError("farmer1", "t0")}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "manager", entity.RoleManager)

		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", token, initiateBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodePendingTransaction), resp["code"])
	})

	t.Run("Unauthorized role surfaces as 403", func(t *testing.T) {
		ledger := &fakeLedger{err: errs.ErrUnauthorized}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "farmer1", entity.RoleUser)

		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", token, initiateBody)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Unauthorized", resp["error"])
	})

	t.Run("Verify unknown id surfaces as 404", func(t *testing.T) {
		ledger := &fakeLedger{err: errs.ErrTransactionNotFound}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "farmer1", entity.RoleUser)

		rec := doRequest(t, router, http.MethodPost, "/modifytransaction", token, map[string]any{
			"transaction_id": "ghost",
			"status":         "VERIFIED",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Store errors surface as 500 with generic headline", func(t *testing.T) {
		ledger := &fakeLedger{err: errs.ErrDuplicateEvent}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "manager", entity.RoleManager)

		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", token, initiateBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Database error", resp["error"])
		assert.NotEmpty(t, resp["message"])
	})

	t.Run("List passes caller identity through", func(t *testing.T) {
		ledger := &fakeLedger{}
		router, tokens := newTestRouter(ledger)
		token := issueToken(t, tokens, "farmer1", entity.RoleUser)

		rec := doRequest(t, router, http.MethodGet, "/gettransactions", token, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "farmer1", ledger.lastIdentity.Username)
	})

	t.Run("Malformed body on initiate is a missing-fields 400", func(t *testing.T) {
		router, tokens := newTestRouter(&fakeLedger{})
		token := issueToken(t, tokens, "manager", entity.RoleManager)

		rec := doRequest(t, router, http.MethodPost, "/initiatetransaction", token, map[string]any{
			"payment_method": "cash",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(errs.CodeMissingFields), resp["code"])
	})
}
