package ledger

import (
	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
)

// Operation identifies a ledger operation for authorization purposes
type Operation string

const (
	OpListTransactions      Operation = "list_transactions"
	OpListOrders            Operation = "list_orders"
	OpInitiateTransaction   Operation = "initiate_transaction"
	OpInitiateOrder         Operation = "initiate_order"
	OpVerifyTransaction     Operation = "verify_transaction"
	OpVerifyOrder           Operation = "verify_order"
	OpDeactivateTransaction Operation = "deactivate_transaction"
	OpDeactivateOrder       Operation = "deactivate_order"
)

// permissions is the single authorization table: operation -> allowed roles.
// Listing is open to every authenticated role (visibility is narrowed in the
// projection), initiation belongs to admin/manager, verification to
// admin/regular user, deactivation to admin only.
var permissions = map[Operation][]entity.Role{
	OpListTransactions:      {entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
	OpListOrders:            {entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
	OpInitiateTransaction:   {entity.RoleAdmin, entity.RoleManager},
	OpInitiateOrder:         {entity.RoleAdmin, entity.RoleManager},
	OpVerifyTransaction:     {entity.RoleAdmin, entity.RoleUser},
	OpVerifyOrder:           {entity.RoleAdmin, entity.RoleUser},
	OpDeactivateTransaction: {entity.RoleAdmin},
	OpDeactivateOrder:       {entity.RoleAdmin},
}

// Authorize admits or rejects a (role, operation) pair. Rejection carries no
// side effect; callers must check before touching the store.
func Authorize(role entity.Role, op Operation) error {
	for _, allowed := range permissions[op] {
		if role == allowed {
			return nil
		}
	}
	return errs.ErrUnauthorized
}
