package ledger

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
)

// DeactivateTransaction soft-deletes a transaction and corrects its stored
// total. Only the beneficiary's newest event may be deactivated; allowing an
// older one would silently invalidate every total computed after it.
func (s *Service) DeactivateTransaction(
	ctx context.Context,
	caller entity.Identity,
	transactionID string,
) error {
	if err := Authorize(caller.Role, OpDeactivateTransaction); err != nil {
		s.logger.Warn("Deactivate transaction rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return err
	}
	if transactionID == "" {
		return errs.ErrMissingFields
	}

	err := s.inUnit(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		txn, err := repo.GetByID(txCtx, transactionID)
		if err != nil {
			return err
		}

		chain, err := repo.ListByBeneficiary(txCtx, txn.InitiatedFor)
		if err != nil {
			return err
		}
		if len(chain) == 0 || chain[0].TransactionID != txn.TransactionID {
			return errs.ErrNotLatestTransaction
		}

		txn.MarkDeactivated(caller.Username, DeactivatedTotal(txn, chain))
		return repo.Update(txCtx, txn)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Transaction deactivated", map[string]any{
		"transaction_id": transactionID,
		"modified_by":    caller.Username,
	})
	return nil
}

// DeactivateOrder soft-deletes an order. Only record_status and
// record_status_modified_by change; the paired transaction keeps its amount
// and total untouched.
func (s *Service) DeactivateOrder(
	ctx context.Context,
	caller entity.Identity,
	orderID string,
) error {
	if err := Authorize(caller.Role, OpDeactivateOrder); err != nil {
		s.logger.Warn("Deactivate order rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return err
	}
	if orderID == "" {
		return errs.ErrMissingFields
	}

	err := s.inUnit(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetOrderRepository(txCtx)

		order, err := repo.GetByID(txCtx, orderID)
		if err != nil {
			return err
		}

		order.MarkDeactivated(caller.Username)
		return repo.Update(txCtx, order)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Order deactivated", map[string]any{
		"order_id":    orderID,
		"modified_by": caller.Username,
	})
	return nil
}
