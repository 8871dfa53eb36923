package migration

import (
	"context"
	"errors"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/persistence"
)

// defaultUsers seeds one account per role so a fresh install is usable.
// User provisioning is otherwise out-of-band.
var defaultUsers = []entity.User{
	{Username: "admin", Password: "admin", Role: entity.RoleAdmin, Name: "Administrator", PhoneNo: 9000000001},
	{Username: "manager", Password: "manager", Role: entity.RoleManager, Name: "Manager", PhoneNo: 9000000002},
	{Username: "user", Password: "user", Role: entity.RoleUser, Name: "User", PhoneNo: 9000000003},
}

// CreateDefaultUsers inserts the seed accounts, skipping ones that exist
func CreateDefaultUsers(ctx context.Context, users persistence.UserRepository) error {
	for i := range defaultUsers {
		u := defaultUsers[i]
		if err := users.Create(ctx, &u); err != nil {
			if errors.Is(err, errs.ErrDuplicateEvent) {
				continue
			}
			return err
		}
	}
	return nil
}
