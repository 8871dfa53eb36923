package ledger

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// VerifyTransaction transitions a transaction to VERIFIED and assigns its
// running total: the predecessor total (index-1 lookup over the full
// descending chain) plus the event's own amount while it is active.
func (s *Service) VerifyTransaction(
	ctx context.Context,
	caller entity.Identity,
	req usecase.ModifyRequest,
) error {
	if err := Authorize(caller.Role, OpVerifyTransaction); err != nil {
		s.logger.Warn("Verify transaction rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return err
	}
	if req.Status != string(entity.StatusVerified) {
		return errs.ErrInvalidStatus
	}

	err := s.inUnit(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)

		txn, err := repo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		chain, err := repo.ListByBeneficiary(txCtx, txn.InitiatedFor)
		if err != nil {
			return err
		}

		txn.MarkVerified(caller.Username, VerifiedTotal(txn, chain), s.timeProvider)
		return repo.Update(txCtx, txn)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Transaction verified", map[string]any{
		"transaction_id": req.ID,
		"verified_by":    caller.Username,
	})
	return nil
}

// VerifyOrder transitions an order to VERIFIED. Orders carry no balance;
// the paired transaction is verified separately through VerifyTransaction.
func (s *Service) VerifyOrder(
	ctx context.Context,
	caller entity.Identity,
	req usecase.ModifyRequest,
) error {
	if err := Authorize(caller.Role, OpVerifyOrder); err != nil {
		s.logger.Warn("Verify order rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return err
	}
	if req.Status != string(entity.StatusVerified) {
		return errs.ErrInvalidStatus
	}

	err := s.inUnit(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetOrderRepository(txCtx)

		order, err := repo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		order.MarkVerified(caller.Username, s.timeProvider)
		return repo.Update(txCtx, order)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Order verified", map[string]any{
		"order_id":    req.ID,
		"verified_by": caller.Username,
	})
	return nil
}
