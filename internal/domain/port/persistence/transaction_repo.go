package persistence

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
)

// TransactionRepository defines the ledger store operations for transactions
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateEvent: if a transaction with the same ID already exists
	// - ErrDatabaseConnection: if the store fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists the mutable workflow fields of an existing transaction
	// (status, verified fields, record status, total amount)
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no row matches the ID
	// - ErrDatabaseConnection: if the store fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its ID
	//
	// Possible errors:
	// - ErrTransactionNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// ListByBeneficiary returns the beneficiary's full chain, every record
	// status included, ordered by initiated_date descending. Both the
	// predecessor lookup and the latest-event check read this chain.
	ListByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error)

	// LatestActiveByBeneficiary returns the beneficiary's most recently
	// initiated active transaction, or ErrTransactionNotFound if the
	// beneficiary has none. When the dialect supports it the row is locked
	// for update so concurrent guard checks serialize.
	LatestActiveByBeneficiary(ctx context.Context, beneficiary string) (*entity.Transaction, error)

	// ListActive returns every active transaction, ordered by
	// initiated_date descending
	ListActive(ctx context.Context) ([]*entity.Transaction, error)

	// ListActiveByBeneficiary returns the beneficiary's active transactions,
	// ordered by initiated_date descending
	ListActiveByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Transaction, error)
}
