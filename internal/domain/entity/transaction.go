package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
)

// EventStatus is the workflow status of a ledger event
type EventStatus string

const (
	StatusInitiated EventStatus = "INITIATED"
	StatusVerified  EventStatus = "VERIFIED"
)

// Record status values; deactivated rows stay in the table but are excluded
// from listings and from future balance chains
const (
	RecordActive      = 1
	RecordDeactivated = 0
)

// Transaction is a single ledger event for a beneficiary. Amount is signed:
// negative for cash collected from the beneficiary, positive for money the
// beneficiary earns (order-derived). TotalAmount is the running balance
// snapshot as of this event and is only set upon verification.
type Transaction struct {
	TransactionID          string
	PaymentMethod          string
	Amount                 decimal.Decimal
	Status                 EventStatus
	InitiatedDate          time.Time
	VerifiedDate           *time.Time
	InitiatedBy            string
	VerifiedBy             *string
	InitiatedFor           string
	RecordStatus           int
	RecordStatusModifiedBy *string
	TotalAmount            decimal.NullDecimal
	Comments               string
}

// NewCashTransaction creates an INITIATED cash transaction. The submitted
// amount is stored negated: cash collected reduces what the beneficiary has.
func NewCashTransaction(
	id, paymentMethod string,
	amount decimal.Decimal,
	initiatedFor, initiatedBy, comments string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if id == "" || paymentMethod == "" || initiatedFor == "" || amount.IsZero() {
		return nil, errs.ErrMissingFields
	}
	return &Transaction{
		TransactionID: id,
		PaymentMethod: paymentMethod,
		Amount:        amount.Neg(),
		Status:        StatusInitiated,
		InitiatedDate: timeProvider.Now(),
		InitiatedBy:   initiatedBy,
		InitiatedFor:  initiatedFor,
		RecordStatus:  RecordActive,
		Comments:      comments,
	}, nil
}

// NewOrderTransaction creates the INITIATED transaction paired with an
// order: amount = rate * noBags, positive, money the beneficiary earns.
func NewOrderTransaction(
	id, paymentMethod string,
	noBags int64,
	rate decimal.Decimal,
	initiatedFor, initiatedBy, comments string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if id == "" || paymentMethod == "" || initiatedFor == "" || noBags == 0 || rate.IsZero() {
		return nil, errs.ErrMissingFields
	}
	return &Transaction{
		TransactionID: id,
		PaymentMethod: paymentMethod,
		Amount:        rate.Mul(decimal.NewFromInt(noBags)),
		Status:        StatusInitiated,
		InitiatedDate: timeProvider.Now(),
		InitiatedBy:   initiatedBy,
		InitiatedFor:  initiatedFor,
		RecordStatus:  RecordActive,
		Comments:      comments,
	}, nil
}

// IsActive reports whether the event is still part of the balance chain
func (t *Transaction) IsActive() bool {
	return t.RecordStatus == RecordActive
}

// IsVerified reports whether the event has been verified
func (t *Transaction) IsVerified() bool {
	return t.Status == StatusVerified
}

// MarkVerified transitions the event to VERIFIED and stores the running
// balance computed for it
func (t *Transaction) MarkVerified(verifier string, total decimal.Decimal, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	t.Status = StatusVerified
	t.VerifiedDate = &now
	t.VerifiedBy = &verifier
	t.TotalAmount = decimal.NewNullDecimal(total)
}

// MarkDeactivated soft-deletes the event and stores its corrected total
func (t *Transaction) MarkDeactivated(modifier string, total decimal.Decimal) {
	t.RecordStatus = RecordDeactivated
	t.RecordStatusModifiedBy = &modifier
	t.TotalAmount = decimal.NewNullDecimal(total)
}
