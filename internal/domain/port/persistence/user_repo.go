package persistence

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
)

// UserRepository defines methods to interact with user data. The ledger core
// only reads users; accounts are created by the seed migration.
type UserRepository interface {
	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound
	// - ErrDatabaseConnection
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// ListAll returns every user; listings join usernames through this map
	ListAll(ctx context.Context) ([]*entity.User, error)

	// Create creates a new user (seed migration only)
	//
	// Possible errors:
	// - ErrDuplicateEvent: if the username is taken
	// - ErrDatabaseConnection
	Create(ctx context.Context, user *entity.User) error
}
