package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
)

// fakeTransactionRepo backs the guard tests with an in-memory latest row
type fakeTransactionRepo struct {
	latest    *entity.Transaction
	latestErr error
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error { return nil }
func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return nil, errs.ErrTransactionNotFound
}
func (f *fakeTransactionRepo) ListByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) LatestActiveByBeneficiary(ctx context.Context, beneficiary string) (*entity.Transaction, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	return f.latest, nil
}
func (f *fakeTransactionRepo) ListActive(ctx context.Context) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTransactionRepo) ListActiveByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error) {
	return nil, nil
}

func TestEnsureNoPending(t *testing.T) {
	ctx := context.Background()

	t.Run("No events passes", func(t *testing.T) {
		repo := &fakeTransactionRepo{latestErr: errs.ErrTransactionNotFound}
		assert.NoError(t, ensureNoPending(ctx, repo, "farmer1"))
	})

	t.Run("Latest verified passes", func(t *testing.T) {
		repo := &fakeTransactionRepo{latest: &entity.Transaction{
			TransactionID: "t1",
			Status:        entity.StatusVerified,
			RecordStatus:  entity.RecordActive,
		}}
		assert.NoError(t, ensureNoPending(ctx, repo, "farmer1"))
	})

	t.Run("Latest still initiated blocks", func(t *testing.T) {
		repo := &fakeTransactionRepo{latest: &entity.Transaction{
			TransactionID: "t1",
			Status:        entity.StatusInitiated,
			RecordStatus:  entity.RecordActive,
		}}
		err := ensureNoPending(ctx, repo, "farmer1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPendingTransaction)

		var pending *errs.PendingEventError
		require.ErrorAs(t, err, &pending)
		assert.Equal(t, "farmer1", pending.Beneficiary)
		assert.Equal(t, "t1", pending.PendingID)
	})

	t.Run("Store error propagates", func(t *testing.T) {
		repo := &fakeTransactionRepo{latestErr: errs.ErrDatabaseConnection}
		assert.ErrorIs(t, ensureNoPending(ctx, repo, "farmer1"), errs.ErrDatabaseConnection)
	})
}
