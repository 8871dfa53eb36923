package persistence

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
)

// OrderRepository defines the ledger store operations for orders
type OrderRepository interface {
	// Create saves a new order
	//
	// Possible errors:
	// - ErrDuplicateEvent: if an order with the same ID already exists
	// - ErrDatabaseConnection: if the store fails
	Create(ctx context.Context, order *entity.Order) error

	// Update persists the mutable workflow fields of an existing order
	//
	// Possible errors:
	// - ErrOrderNotFound
	// - ErrDatabaseConnection
	Update(ctx context.Context, order *entity.Order) error

	// GetByID retrieves an order by its ID
	//
	// Possible errors:
	// - ErrOrderNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, orderID string) (*entity.Order, error)

	// ListActive returns every active order, ordered by initiated_date descending
	ListActive(ctx context.Context) ([]*entity.Order, error)

	// ListActiveByBeneficiary returns the beneficiary's active orders,
	// ordered by initiated_date descending
	ListActiveByBeneficiary(ctx context.Context, beneficiary string) ([]*entity.Order, error)
}
