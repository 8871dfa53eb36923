package ledger

import (
	"context"
	"fmt"

	coreport "github.com/imnexerio/i2step-backend/internal/domain/port/core"
	"github.com/imnexerio/i2step-backend/internal/domain/port/persistence"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// Service drives ledger events through the workflow state machine:
// INITIATED(active) -> VERIFIED(active) -> VERIFIED(deactivated), with the
// side branch INITIATED(active) -> INITIATED(deactivated). Every transition
// is authorized, guarded and recomputed inside a single unit of work.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// compile-time check that Service satisfies the usecase port
var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates the ledger workflow service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// inUnit runs fn inside one store transaction: commit on success, rollback
// on any error path. The rollback error, if any, is logged and swallowed so
// the original failure reaches the caller.
func (s *Service) inUnit(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin unit of work: %w", err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("commit unit of work: %w", err)
	}
	return nil
}
