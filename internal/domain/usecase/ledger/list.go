package ledger

import (
	"context"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
)

// notAvailable is the sentinel substituted for any missing verifier,
// username or vehicle field in listings
const notAvailable = "NA"

// ListTransactions returns active transactions, newest first. Admins and
// managers see every beneficiary; other roles only their own rows.
func (s *Service) ListTransactions(
	ctx context.Context,
	caller entity.Identity,
) ([]usecase.TransactionView, error) {
	if err := Authorize(caller.Role, OpListTransactions); err != nil {
		return nil, err
	}

	repo := s.uow.GetTransactionRepository(ctx)

	var (
		rows []*entity.Transaction
		err  error
	)
	if caller.Role.CanSeeAllRecords() {
		rows, err = repo.ListActive(ctx)
	} else {
		rows, err = repo.ListActiveByBeneficiary(ctx, caller.Username)
	}
	if err != nil {
		return nil, err
	}

	users, err := s.usernameIndex(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.TransactionView, 0, len(rows))
	for _, t := range rows {
		views = append(views, usecase.TransactionView{
			TransactionID: t.TransactionID,
			PaymentMethod: t.PaymentMethod,
			Amount:        t.Amount,
			Status:        string(t.Status),
			InitiatedDate: t.InitiatedDate,
			VerifiedDate:  t.VerifiedDate,
			InitiatedBy:   resolveUsername(users, &t.InitiatedBy),
			VerifiedBy:    resolveUsername(users, t.VerifiedBy),
			InitiatedFor:  resolveUsername(users, &t.InitiatedFor),
			TotalAmount:   t.TotalAmount,
			Comments:      t.Comments,
		})
	}
	return views, nil
}

// ListOrders returns active orders, newest first, with the same visibility
// rule as ListTransactions.
func (s *Service) ListOrders(
	ctx context.Context,
	caller entity.Identity,
) ([]usecase.OrderView, error) {
	if err := Authorize(caller.Role, OpListOrders); err != nil {
		return nil, err
	}

	repo := s.uow.GetOrderRepository(ctx)

	var (
		rows []*entity.Order
		err  error
	)
	if caller.Role.CanSeeAllRecords() {
		rows, err = repo.ListActive(ctx)
	} else {
		rows, err = repo.ListActiveByBeneficiary(ctx, caller.Username)
	}
	if err != nil {
		return nil, err
	}

	users, err := s.usernameIndex(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.OrderView, 0, len(rows))
	for _, o := range rows {
		vehicle := o.VehicleNo
		if vehicle == "" {
			vehicle = notAvailable
		}
		views = append(views, usecase.OrderView{
			OrderID:       o.OrderID,
			NoBags:        o.NoBags,
			Rate:          o.Rate,
			VehicleNo:     vehicle,
			Status:        string(o.Status),
			InitiatedDate: o.InitiatedDate,
			VerifiedDate:  o.VerifiedDate,
			InitiatedBy:   resolveUsername(users, &o.InitiatedBy),
			VerifiedBy:    resolveUsername(users, o.VerifiedBy),
			InitiatedFor:  resolveUsername(users, &o.InitiatedFor),
			Comments:      o.Comments,
		})
	}
	return views, nil
}

// usernameIndex loads all users keyed by username for the listing joins
func (s *Service) usernameIndex(ctx context.Context) (map[string]*entity.User, error) {
	users, err := s.uow.GetUserRepository(ctx).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*entity.User, len(users))
	for _, u := range users {
		index[u.Username] = u
	}
	return index, nil
}

// resolveUsername maps a stored username through the user index,
// substituting the NA sentinel for nil references and unknown accounts
func resolveUsername(users map[string]*entity.User, username *string) string {
	if username == nil {
		return notAvailable
	}
	if _, ok := users[*username]; !ok {
		return notAvailable
	}
	return *username
}
