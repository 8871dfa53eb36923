package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
)

// InitiateTransactionRequest is the input for initiating a plain cash
// transaction. Amount is the submitted (positive) cash figure; the stored
// amount is negated.
type InitiateTransactionRequest struct {
	TransactionID string
	PaymentMethod string
	Amount        decimal.Decimal
	InitiatedFor  string
	Comments      string
}

// InitiateOrderRequest is the input for initiating a bag-rate order. The
// order and its paired transaction share the same id.
type InitiateOrderRequest struct {
	OrderID       string
	PaymentMethod string
	NoBags        int64
	Rate          decimal.Decimal
	VehicleNo     string
	InitiatedFor  string
	Comments      string
}

// ModifyRequest is the input for verify calls; Status must be "VERIFIED"
type ModifyRequest struct {
	ID     string
	Status string
}

// TransactionView is the read-only listing projection of a transaction.
// Verifier and beneficiary usernames are resolved; "NA" substitutes a
// missing verifier.
type TransactionView struct {
	TransactionID string
	PaymentMethod string
	Amount        decimal.Decimal
	Status        string
	InitiatedDate time.Time
	VerifiedDate  *time.Time
	InitiatedBy   string
	VerifiedBy    string
	InitiatedFor  string
	TotalAmount   decimal.NullDecimal
	Comments      string
}

// OrderView is the read-only listing projection of an order. "NA"
// substitutes a missing verifier or vehicle number.
type OrderView struct {
	OrderID       string
	NoBags        int64
	Rate          decimal.Decimal
	VehicleNo     string
	Status        string
	InitiatedDate time.Time
	VerifiedDate  *time.Time
	InitiatedBy   string
	VerifiedBy    string
	InitiatedFor  string
	Comments      string
}

// LedgerUseCase drives ledger events through their workflow. Every method
// takes the verified caller identity; authorization, the pending-event
// guard and balance recomputation happen inside.
type LedgerUseCase interface {
	// ListTransactions returns active transactions visible to the caller
	ListTransactions(ctx context.Context, caller entity.Identity) ([]TransactionView, error)

	// ListOrders returns active orders visible to the caller
	ListOrders(ctx context.Context, caller entity.Identity) ([]OrderView, error)

	// InitiateTransaction creates an INITIATED cash transaction and returns its id
	InitiateTransaction(ctx context.Context, caller entity.Identity, req InitiateTransactionRequest) (string, error)

	// InitiateOrder creates an INITIATED order plus its paired transaction
	// atomically and returns the shared id
	InitiateOrder(ctx context.Context, caller entity.Identity, req InitiateOrderRequest) (string, error)

	// VerifyTransaction transitions a transaction to VERIFIED and assigns
	// its running total
	VerifyTransaction(ctx context.Context, caller entity.Identity, req ModifyRequest) error

	// VerifyOrder transitions an order to VERIFIED; no balance is touched
	VerifyOrder(ctx context.Context, caller entity.Identity, req ModifyRequest) error

	// DeactivateTransaction soft-deletes the beneficiary's newest
	// transaction and corrects its stored total
	DeactivateTransaction(ctx context.Context, caller entity.Identity, transactionID string) error

	// DeactivateOrder soft-deletes an order, leaving the paired transaction untouched
	DeactivateOrder(ctx context.Context, caller entity.Identity, orderID string) error
}

// AuthUseCase validates credentials and returns the account on success.
// Token issuance happens outside the core.
type AuthUseCase interface {
	Login(ctx context.Context, username, password string) (*entity.User, error)
}
