package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
)

// Order is a bag-rate order. It mirrors the transaction workflow columns but
// carries no balance of its own: the monetary effect lives entirely on the
// paired transaction created alongside it with the same id.
type Order struct {
	OrderID                string
	NoBags                 int64
	Rate                   decimal.Decimal
	VehicleNo              string
	Status                 EventStatus
	InitiatedDate          time.Time
	VerifiedDate           *time.Time
	InitiatedBy            string
	VerifiedBy             *string
	InitiatedFor           string
	RecordStatus           int
	RecordStatusModifiedBy *string
	Comments               string
}

// NewOrder creates an INITIATED order. Comments are required for orders
// (unlike plain cash transactions); vehicle number is optional.
func NewOrder(
	id string,
	noBags int64,
	rate decimal.Decimal,
	vehicleNo, initiatedFor, initiatedBy, comments string,
	timeProvider coreport.TimeProvider,
) (*Order, error) {
	if id == "" || initiatedFor == "" || comments == "" || noBags == 0 || rate.IsZero() {
		return nil, errs.ErrMissingFields
	}
	return &Order{
		OrderID:       id,
		NoBags:        noBags,
		Rate:          rate,
		VehicleNo:     vehicleNo,
		Status:        StatusInitiated,
		InitiatedDate: timeProvider.Now(),
		InitiatedBy:   initiatedBy,
		InitiatedFor:  initiatedFor,
		RecordStatus:  RecordActive,
		Comments:      comments,
	}, nil
}

// MarkVerified transitions the order to VERIFIED. No balance is touched;
// the paired transaction is verified separately.
func (o *Order) MarkVerified(verifier string, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	o.Status = StatusVerified
	o.VerifiedDate = &now
	o.VerifiedBy = &verifier
}

// MarkDeactivated soft-deletes the order. The paired transaction is left
// untouched.
func (o *Order) MarkDeactivated(modifier string) {
	o.RecordStatus = RecordDeactivated
	o.RecordStatusModifiedBy = &modifier
}
