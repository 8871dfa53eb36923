package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// dateTimeNotAvailable substitutes a date the workflow has not reached yet
const dateTimeNotAvailable = "NA"

// InitiateTransactionRequest represents the body of POST /initiatetransaction.
// Amount is the submitted positive cash figure; the ledger stores its
// negation.
type InitiateTransactionRequest struct {
	TransactionID string          `json:"transaction_id" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	InitiatedFor  string          `json:"initiated_for" binding:"required"`
	Comments      string          `json:"comments"`
}

// ModifyTransactionRequest represents the body of POST /modifytransaction
type ModifyTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// DeleteTransactionRequest represents the body of POST /modifytransaction_delete
type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

// TransactionMutationResponse acknowledges a successful transaction write
type TransactionMutationResponse struct {
	Message     string `json:"message"`
	Transaction string `json:"transaction"`
}

// TransactionResponse is a single row of GET /gettransactions
type TransactionResponse struct {
	TransactionID string              `json:"transaction_id"`
	PaymentMethod string              `json:"payment_method"`
	Amount        decimal.Decimal     `json:"amount"`
	Status        string              `json:"status"`
	InitiatedDate time.Time           `json:"initiated_date"`
	VerifiedDate  string              `json:"verified_date"`
	InitiatedBy   string              `json:"initiated_by"`
	VerifiedBy    string              `json:"verified_by"`
	InitiatedFor  string              `json:"initiated_for"`
	TotalAmount   decimal.NullDecimal `json:"total_amount"`
	Comments      string              `json:"comments"`
}

// FromTransactionView maps a usecase projection to its API shape
func FromTransactionView(v usecase.TransactionView) TransactionResponse {
	return TransactionResponse{
		TransactionID: v.TransactionID,
		PaymentMethod: v.PaymentMethod,
		Amount:        v.Amount,
		Status:        v.Status,
		InitiatedDate: v.InitiatedDate,
		VerifiedDate:  formatOptionalDate(v.VerifiedDate),
		InitiatedBy:   v.InitiatedBy,
		VerifiedBy:    v.VerifiedBy,
		InitiatedFor:  v.InitiatedFor,
		TotalAmount:   v.TotalAmount,
		Comments:      v.Comments,
	}
}

// FromTransactionViews maps a list of projections to API rows
func FromTransactionViews(views []usecase.TransactionView) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromTransactionView(v))
	}
	return result
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return dateTimeNotAvailable
	}
	return t.Format(time.RFC3339)
}
