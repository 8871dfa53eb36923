package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/imnexerio/i2step-backend/internal/domain/entity"
	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
	"github.com/imnexerio/i2step-backend/internal/domain/port/usecase"
	ledgerUseCase "github.com/imnexerio/i2step-backend/internal/domain/usecase/ledger"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/database"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/logger"
	"github.com/imnexerio/i2step-backend/internal/infrastructure/adapter/model"
)

// stepClock advances one minute per call so initiated dates order the chain
// deterministically
type stepClock struct {
	current time.Time
}

func (c *stepClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

var (
	admin   = entity.Identity{Username: "admin", Role: entity.RoleAdmin}
	manager = entity.Identity{Username: "manager", Role: entity.RoleManager}
	farmer  = entity.Identity{Username: "farmer1", Role: entity.RoleUser}
)

func newTestService(t *testing.T) (*ledgerUseCase.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a fresh schema per test; the shared-cache DSN would otherwise leak
	// rows between tests in the same process
	require.NoError(t, db.Migrator().DropTable(&model.Transaction{}, &model.Order{}, &model.User{}))
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Transaction{}, &model.Order{}))

	log := logger.NewNoopLogger()
	uow := database.NewUnitOfWork(db, log)

	users := uow.GetUserRepository(context.Background())
	for _, u := range []entity.User{
		{Username: "admin", Password: "admin", Role: entity.RoleAdmin, Name: "Administrator"},
		{Username: "manager", Password: "manager", Role: entity.RoleManager, Name: "Manager"},
		{Username: "farmer1", Password: "farmer1", Role: entity.RoleUser, Name: "Farmer One"},
	} {
		user := u
		require.NoError(t, users.Create(context.Background(), &user))
	}

	clock := &stepClock{current: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)}
	return ledgerUseCase.NewService(uow, clock, log), db
}

func getTransaction(t *testing.T, db *gorm.DB, id string) *model.Transaction {
	t.Helper()
	var m model.Transaction
	require.NoError(t, db.Where("transaction_id = ?", id).First(&m).Error)
	return &m
}

func getOrder(t *testing.T, db *gorm.DB, id string) *model.Order {
	t.Helper()
	var m model.Order
	require.NoError(t, db.Where("order_id = ?", id).First(&m).Error)
	return &m
}

func initiateCash(t *testing.T, svc *ledgerUseCase.Service, id string, amount int64) {
	t.Helper()
	_, err := svc.InitiateTransaction(context.Background(), manager, usecase.InitiateTransactionRequest{
		TransactionID: id,
		PaymentMethod: "cash",
		Amount:        decimal.NewFromInt(amount),
		InitiatedFor:  "farmer1",
	})
	require.NoError(t, err)
}

func verifyTransaction(t *testing.T, svc *ledgerUseCase.Service, id string) {
	t.Helper()
	require.NoError(t, svc.VerifyTransaction(context.Background(), farmer, usecase.ModifyRequest{
		ID:     id,
		Status: "VERIFIED",
	}))
}

func TestLedgerWorkflow(t *testing.T) {
	ctx := context.Background()

	t.Run("Cash then order settles the balance to zero", func(t *testing.T) {
		svc, db := newTestService(t)

		// 100 cash collected from the farmer: stored as -100
		initiateCash(t, svc, "t1", 100)
		row := getTransaction(t, db, "t1")
		assert.True(t, row.Amount.Equal(decimal.NewFromInt(-100)))
		assert.Equal(t, "INITIATED", row.Status)

		verifyTransaction(t, svc, "t1")
		row = getTransaction(t, db, "t1")
		assert.Equal(t, "VERIFIED", row.Status)
		require.True(t, row.TotalAmount.Valid)
		assert.True(t, row.TotalAmount.Decimal.Equal(decimal.NewFromInt(-100)))

		// a 2-bag order at rate 50 pairs a +100 transaction under the same id
		_, err := svc.InitiateOrder(ctx, manager, usecase.InitiateOrderRequest{
			OrderID:       "o1",
			PaymentMethod: "credit",
			NoBags:        2,
			Rate:          decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
			Comments:      "two bags",
		})
		require.NoError(t, err)

		paired := getTransaction(t, db, "o1")
		assert.True(t, paired.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, getOrder(t, db, "o1").OrderID, paired.TransactionID)

		verifyTransaction(t, svc, "o1")
		paired = getTransaction(t, db, "o1")
		require.True(t, paired.TotalAmount.Valid)
		assert.True(t, paired.TotalAmount.Decimal.IsZero())

		// verifying the order itself never touches a balance
		require.NoError(t, svc.VerifyOrder(ctx, farmer, usecase.ModifyRequest{ID: "o1", Status: "VERIFIED"}))
		order := getOrder(t, db, "o1")
		assert.Equal(t, "VERIFIED", order.Status)
		require.NotNil(t, order.VerifiedBy)
		assert.Equal(t, "farmer1", *order.VerifiedBy)
	})

	t.Run("Pending event guard blocks a second initiation", func(t *testing.T) {
		svc, _ := newTestService(t)

		initiateCash(t, svc, "t1", 100)

		_, err := svc.InitiateTransaction(ctx, manager, usecase.InitiateTransactionRequest{
			TransactionID: "t2",
			PaymentMethod: "cash",
			Amount:        decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
		})
		assert.ErrorIs(t, err, errs.ErrPendingTransaction)

		// orders are guarded through the same transaction chain
		_, err = svc.InitiateOrder(ctx, manager, usecase.InitiateOrderRequest{
			OrderID:       "o1",
			PaymentMethod: "credit",
			NoBags:        1,
			Rate:          decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
			Comments:      "blocked",
		})
		assert.ErrorIs(t, err, errs.ErrPendingTransaction)

		// verification clears the guard
		verifyTransaction(t, svc, "t1")
		_, err = svc.InitiateTransaction(ctx, manager, usecase.InitiateTransactionRequest{
			TransactionID: "t2",
			PaymentMethod: "cash",
			Amount:        decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
		})
		assert.NoError(t, err)
	})

	t.Run("Duplicate id rolls the order pair back together", func(t *testing.T) {
		svc, db := newTestService(t)

		initiateCash(t, svc, "shared", 100)
		verifyTransaction(t, svc, "shared")

		// the paired transaction insert collides with the existing id, so
		// the already-inserted order row must roll back too
		_, err := svc.InitiateOrder(ctx, manager, usecase.InitiateOrderRequest{
			OrderID:       "shared",
			PaymentMethod: "credit",
			NoBags:        1,
			Rate:          decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
			Comments:      "dup",
		})
		assert.ErrorIs(t, err, errs.ErrDuplicateEvent)

		var count int64
		require.NoError(t, db.Model(&model.Order{}).Where("order_id = ?", "shared").Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Deactivating a verified event subtracts its own amount", func(t *testing.T) {
		svc, db := newTestService(t)

		initiateCash(t, svc, "t1", 100)
		verifyTransaction(t, svc, "t1")
		initiateCash(t, svc, "t2", 50)
		verifyTransaction(t, svc, "t2") // total -150

		require.NoError(t, svc.DeactivateTransaction(ctx, admin, "t2"))

		row := getTransaction(t, db, "t2")
		assert.Equal(t, 0, row.RecordStatus)
		require.NotNil(t, row.RecordStatusModifiedBy)
		assert.Equal(t, "admin", *row.RecordStatusModifiedBy)
		require.True(t, row.TotalAmount.Valid)
		assert.True(t, row.TotalAmount.Decimal.Equal(decimal.NewFromInt(-100)))
		// workflow status survives deactivation
		assert.Equal(t, "VERIFIED", row.Status)
	})

	t.Run("Deactivating an initiated event recomputes from the chain", func(t *testing.T) {
		svc, db := newTestService(t)

		initiateCash(t, svc, "t1", 100)
		verifyTransaction(t, svc, "t1")
		initiateCash(t, svc, "t2", 50) // left INITIATED

		require.NoError(t, svc.DeactivateTransaction(ctx, admin, "t2"))

		row := getTransaction(t, db, "t2")
		assert.Equal(t, 0, row.RecordStatus)
		require.True(t, row.TotalAmount.Valid)
		assert.True(t, row.TotalAmount.Decimal.Equal(decimal.NewFromInt(-100)))
	})

	t.Run("Only the newest event may be deactivated", func(t *testing.T) {
		svc, _ := newTestService(t)

		initiateCash(t, svc, "t1", 100)
		verifyTransaction(t, svc, "t1")
		initiateCash(t, svc, "t2", 50)

		err := svc.DeactivateTransaction(ctx, admin, "t1")
		assert.ErrorIs(t, err, errs.ErrNotLatestTransaction)
	})

	t.Run("Order deactivation leaves the paired transaction untouched", func(t *testing.T) {
		svc, db := newTestService(t)

		_, err := svc.InitiateOrder(ctx, manager, usecase.InitiateOrderRequest{
			OrderID:       "o1",
			PaymentMethod: "credit",
			NoBags:        2,
			Rate:          decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
			Comments:      "two bags",
		})
		require.NoError(t, err)
		verifyTransaction(t, svc, "o1")

		require.NoError(t, svc.DeactivateOrder(ctx, admin, "o1"))

		order := getOrder(t, db, "o1")
		assert.Equal(t, 0, order.RecordStatus)

		paired := getTransaction(t, db, "o1")
		assert.Equal(t, 1, paired.RecordStatus)
		require.True(t, paired.TotalAmount.Valid)
		assert.True(t, paired.TotalAmount.Decimal.Equal(decimal.NewFromInt(100)))
	})

	t.Run("Unknown ids come back not found", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.VerifyTransaction(ctx, farmer, usecase.ModifyRequest{ID: "ghost", Status: "VERIFIED"})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		err = svc.VerifyOrder(ctx, farmer, usecase.ModifyRequest{ID: "ghost", Status: "VERIFIED"})
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)

		err = svc.DeactivateTransaction(ctx, admin, "ghost")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestListProjections(t *testing.T) {
	ctx := context.Background()

	t.Run("Deactivated rows disappear and NA fills missing fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		initiateCash(t, svc, "t1", 100)

		views, err := svc.ListTransactions(ctx, admin)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "t1", views[0].TransactionID)
		assert.Equal(t, "NA", views[0].VerifiedBy)
		assert.Nil(t, views[0].VerifiedDate)

		require.NoError(t, svc.DeactivateTransaction(ctx, admin, "t1"))

		views, err = svc.ListTransactions(ctx, admin)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("Non-admin callers see only their own rows", func(t *testing.T) {
		svc, db := newTestService(t)

		// second beneficiary with a transaction of their own
		users := database.NewUnitOfWork(db, logger.NewNoopLogger()).GetUserRepository(ctx)
		other := entity.User{Username: "farmer2", Password: "x", Role: entity.RoleUser, Name: "Farmer Two"}
		require.NoError(t, users.Create(ctx, &other))

		initiateCash(t, svc, "t1", 100)
		_, err := svc.InitiateTransaction(ctx, manager, usecase.InitiateTransactionRequest{
			TransactionID: "t2",
			PaymentMethod: "cash",
			Amount:        decimal.NewFromInt(70),
			InitiatedFor:  "farmer2",
		})
		require.NoError(t, err)

		all, err := svc.ListTransactions(ctx, manager)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		own, err := svc.ListTransactions(ctx, farmer)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, "t1", own[0].TransactionID)
	})

	t.Run("Order listing substitutes NA for a missing vehicle", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.InitiateOrder(ctx, manager, usecase.InitiateOrderRequest{
			OrderID:       "o1",
			PaymentMethod: "credit",
			NoBags:        2,
			Rate:          decimal.NewFromInt(50),
			InitiatedFor:  "farmer1",
			Comments:      "no vehicle",
		})
		require.NoError(t, err)

		views, err := svc.ListOrders(ctx, farmer)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "NA", views[0].VehicleNo)
		assert.Equal(t, "NA", views[0].VerifiedBy)
		assert.Equal(t, "manager", views[0].InitiatedBy)
		assert.Equal(t, "farmer1", views[0].InitiatedFor)
	})
}
