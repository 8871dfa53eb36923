package ledger

import (
	"context"
	"errors"

	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/persistence"
)

// ensureNoPending enforces the one-pending-event-per-beneficiary rule: the
// beneficiary's most recently initiated active transaction must be VERIFIED
// (or absent) before a new event may be created. Orders are guarded through
// the same transaction chain because every order owns a paired transaction.
//
// Must run inside the same unit of work as the subsequent insert so the
// guard read and the write are atomic.
func ensureNoPending(ctx context.Context, repo persistence.TransactionRepository, beneficiary string) error {
	latest, err := repo.LatestActiveByBeneficiary(ctx, beneficiary)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil
		}
		return err
	}
	if !latest.IsVerified() {
		return errs.NewPendingEventError(beneficiary, latest.TransactionID)
	}
	return nil
}
