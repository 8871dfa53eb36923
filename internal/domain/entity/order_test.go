package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/imnexerio/i2step-backend/internal/domain/error"
)

func TestNewOrder(t *testing.T) {
	t.Run("Valid order", func(t *testing.T) {
		o, err := NewOrder("o1", 2, decimal.NewFromInt(50), "KA01AB1234", "farmer1", "manager", "two bags", testClock)

		require.NoError(t, err)
		assert.Equal(t, "o1", o.OrderID)
		assert.Equal(t, int64(2), o.NoBags)
		assert.True(t, o.Rate.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, "KA01AB1234", o.VehicleNo)
		assert.Equal(t, StatusInitiated, o.Status)
		assert.Equal(t, RecordActive, o.RecordStatus)
		assert.Equal(t, testClock.now, o.InitiatedDate)
	})

	t.Run("Vehicle number optional", func(t *testing.T) {
		o, err := NewOrder("o1", 2, decimal.NewFromInt(50), "", "farmer1", "manager", "two bags", testClock)
		require.NoError(t, err)
		assert.Equal(t, "", o.VehicleNo)
	})

	t.Run("Comments required for orders", func(t *testing.T) {
		o, err := NewOrder("o1", 2, decimal.NewFromInt(50), "", "farmer1", "manager", "", testClock)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
		assert.Nil(t, o)
	})

	t.Run("Zero bags rejected", func(t *testing.T) {
		o, err := NewOrder("o1", 0, decimal.NewFromInt(50), "", "farmer1", "manager", "c", testClock)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
		assert.Nil(t, o)
	})

	t.Run("Zero rate rejected", func(t *testing.T) {
		o, err := NewOrder("o1", 2, decimal.Zero, "", "farmer1", "manager", "c", testClock)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
		assert.Nil(t, o)
	})
}

func TestOrderTransitions(t *testing.T) {
	o, err := NewOrder("o1", 2, decimal.NewFromInt(50), "", "farmer1", "manager", "c", testClock)
	require.NoError(t, err)

	o.MarkVerified("user", testClock)
	assert.Equal(t, StatusVerified, o.Status)
	require.NotNil(t, o.VerifiedBy)
	assert.Equal(t, "user", *o.VerifiedBy)
	require.NotNil(t, o.VerifiedDate)

	o.MarkDeactivated("admin")
	assert.Equal(t, RecordDeactivated, o.RecordStatus)
	require.NotNil(t, o.RecordStatusModifiedBy)
	assert.Equal(t, "admin", *o.RecordStatusModifiedBy)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("X").IsValid())
	assert.False(t, Role("").IsValid())

	assert.True(t, RoleAdmin.CanSeeAllRecords())
	assert.True(t, RoleManager.CanSeeAllRecords())
	assert.False(t, RoleUser.CanSeeAllRecords())
}
