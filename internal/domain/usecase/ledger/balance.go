package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
)

// The recomputation engine is pure: every function takes the beneficiary's
// full chain, ordered by initiated_date descending with no record-status
// filter, and derives the total to store. No state, no clock, no store.

// PredecessorTotal returns the total_amount of the chain's second entry
// (index 1), or zero when the chain is shorter than two events or that entry
// has no total yet. The lookup deliberately takes whatever occupies index 1,
// verified or not, active or not; callers must not substitute "the most
// recent verified predecessor".
func PredecessorTotal(chain []*entity.Transaction) decimal.Decimal {
	if len(chain) < 2 {
		return decimal.Zero
	}
	prev := chain[1]
	if !prev.TotalAmount.Valid {
		return decimal.Zero
	}
	return prev.TotalAmount.Decimal
}

// VerifiedTotal derives the running total assigned at verification time:
// predecessor total plus the event's own amount while the event is active,
// predecessor total alone once it has been deactivated.
func VerifiedTotal(event *entity.Transaction, chain []*entity.Transaction) decimal.Decimal {
	pred := PredecessorTotal(chain)
	if event.IsActive() {
		return pred.Add(event.Amount)
	}
	return pred
}

// DeactivatedTotal derives the corrected total stored when an event leaves
// the chain. A VERIFIED event undoes its own contribution; a still-INITIATED
// event never contributed, so its total falls back to the predecessor total
// exactly as a verify would compute it.
func DeactivatedTotal(event *entity.Transaction, chain []*entity.Transaction) decimal.Decimal {
	if event.IsVerified() {
		return event.TotalAmount.Decimal.Sub(event.Amount)
	}
	return PredecessorTotal(chain)
}
