package ledger

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// InitiateTransaction creates an INITIATED cash transaction for a
// beneficiary. Field validation runs before the guard; the guard read and
// the insert share one unit of work.
func (s *Service) InitiateTransaction(
	ctx context.Context,
	caller entity.Identity,
	req usecase.InitiateTransactionRequest,
) (string, error) {
	if err := Authorize(caller.Role, OpInitiateTransaction); err != nil {
		s.logger.Warn("Initiate transaction rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return "", err
	}

	txn, err := entity.NewCashTransaction(
		req.TransactionID,
		req.PaymentMethod,
		req.Amount,
		req.InitiatedFor,
		caller.Username,
		req.Comments,
		s.timeProvider,
	)
	if err != nil {
		return "", err
	}

	err = s.inUnit(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetTransactionRepository(txCtx)
		if err := ensureNoPending(txCtx, repo, req.InitiatedFor); err != nil {
			return err
		}
		return repo.Create(txCtx, txn)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Transaction initiated", map[string]any{
		"transaction_id": txn.TransactionID,
		"initiated_for":  txn.InitiatedFor,
		"initiated_by":   caller.Username,
		"amount":         txn.Amount.String(),
	})
	return txn.TransactionID, nil
}

// InitiateOrder creates an INITIATED order together with its paired
// transaction (same id, amount = rate * no_bags). The pair is inserted in
// one unit of work: both rows commit or neither does.
func (s *Service) InitiateOrder(
	ctx context.Context,
	caller entity.Identity,
	req usecase.InitiateOrderRequest,
) (string, error) {
	if err := Authorize(caller.Role, OpInitiateOrder); err != nil {
		s.logger.Warn("Initiate order rejected", map[string]any{
			"caller": caller.Username,
			"role":   string(caller.Role),
		})
		return "", err
	}

	order, err := entity.NewOrder(
		req.OrderID,
		req.NoBags,
		req.Rate,
		req.VehicleNo,
		req.InitiatedFor,
		caller.Username,
		req.Comments,
		s.timeProvider,
	)
	if err != nil {
		return "", err
	}

	paired, err := entity.NewOrderTransaction(
		req.OrderID,
		req.PaymentMethod,
		req.NoBags,
		req.Rate,
		req.InitiatedFor,
		caller.Username,
		req.Comments,
		s.timeProvider,
	)
	if err != nil {
		return "", err
	}

	err = s.inUnit(ctx, func(txCtx context.Context) error {
		txRepo := s.uow.GetTransactionRepository(txCtx)
		if err := ensureNoPending(txCtx, txRepo, req.InitiatedFor); err != nil {
			return err
		}
		if err := s.uow.GetOrderRepository(txCtx).Create(txCtx, order); err != nil {
			return err
		}
		return txRepo.Create(txCtx, paired)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Order initiated", map[string]any{
		"order_id":      order.OrderID,
		"initiated_for": order.InitiatedFor,
		"initiated_by":  caller.Username,
		"no_bags":       order.NoBags,
		"rate":          order.Rate.String(),
	})
	return order.OrderID, nil
}
