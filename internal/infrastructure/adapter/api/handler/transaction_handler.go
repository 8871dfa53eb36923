package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerService usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// List handles the GET /gettransactions endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	views, err := h.ledgerService.ListTransactions(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTransactionViews(views))
}

// Initiate handles the POST /initiatetransaction endpoint
func (h *TransactionHandler) Initiate(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.InitiateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrMissingFields)
		return
	}

	transactionID, err := h.ledgerService.InitiateTransaction(c.Request.Context(), identity, usecase.InitiateTransactionRequest{
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		InitiatedFor:  req.InitiatedFor,
		Comments:      req.Comments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Message:     "Transaction initiated successfully",
		Transaction: transactionID,
	})
}

// Verify handles the POST /modifytransaction endpoint
func (h *TransactionHandler) Verify(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.ModifyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrInvalidStatus)
		return
	}

	err := h.ledgerService.VerifyTransaction(c.Request.Context(), identity, usecase.ModifyRequest{
		ID:     req.TransactionID,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Message:     "Transaction modified successfully",
		Transaction: req.TransactionID,
	})
}

// Deactivate handles the POST /modifytransaction_delete endpoint
func (h *TransactionHandler) Deactivate(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req dto.DeleteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domainerr.ErrMissingFields)
		return
	}

	if err := h.ledgerService.DeactivateTransaction(c.Request.Context(), identity, req.TransactionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Message:     "Transaction deactivated successfully",
		Transaction: req.TransactionID,
	})
}
