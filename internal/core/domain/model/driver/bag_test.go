package driver_test

import (
	"testing"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBag(t *testing.T) {
	t.Run("should create empty bag", func(t *testing.T) {
		id := kernel.NewUUID()

		bag, err := driver.NewBag(id, "Pizza bag", 4)

		require.NoError(t, err)
		require.NoError(t, bag.Validate())
		assert.True(t, bag.ID().IsEqual(id))
		assert.Equal(t, "Pizza bag", bag.Name())
		assert.Equal(t, 4, bag.Capacity())
		assert.True(t, bag.IsEmpty())
		assert.Nil(t, bag.OrderID())
	})

	tests := []struct {
		name     string
		id       kernel.UUID
		bagName  string
		capacity int
		wantErr  error
	}{
		{name: "invalid id", id: kernel.UUID{}, bagName: "bag", capacity: 1, wantErr: kernel.ErrUUIDIsNotConstructed},
		{name: "empty name", id: kernel.NewUUID(), bagName: "", capacity: 1, wantErr: errs.ErrValueIsRequired},
		{name: "zero capacity", id: kernel.NewUUID(), bagName: "bag", capacity: 0, wantErr: errs.ErrValueIsInvalid},
		{name: "negative capacity", id: kernel.NewUUID(), bagName: "bag", capacity: -3, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag, err := driver.NewBag(tt.id, tt.bagName, tt.capacity)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, bag)
		})
	}
}

func TestRestoreBag(t *testing.T) {
	orderID := kernel.NewUUID()

	bag, err := driver.RestoreBag(kernel.NewUUID(), "bag", 5, &orderID)

	require.NoError(t, err)
	assert.False(t, bag.IsEmpty())
	assert.True(t, bag.OrderID().IsEqual(orderID))

	_, err = driver.RestoreBag(kernel.NewUUID(), "bag", 5, &kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestBag_Validate(t *testing.T) {
	var nilBag *driver.Bag

	assert.Equal(t, driver.ErrBagIsNotConstructed, nilBag.Validate())
	assert.Equal(t, driver.ErrBagIsNotConstructed, (&driver.Bag{}).Validate())
}

func TestBag_CanStore(t *testing.T) {
	bag, err := driver.NewBag(kernel.NewUUID(), "bag", 5)
	require.NoError(t, err)

	tests := []struct {
		items   int
		want    bool
		wantErr bool
	}{
		{items: 1, want: true},
		{items: 5, want: true},
		{items: 6, want: false},
		{items: 0, wantErr: true},
		{items: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := bag.CanStore(tt.items)
		if tt.wantErr {
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "items=%d", tt.items)
	}
}

func TestBag_StoreAndClear(t *testing.T) {
	bag, err := driver.NewBag(kernel.NewUUID(), "bag", 5)
	require.NoError(t, err)
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, bag.Store(first, 3))
	assert.True(t, bag.OrderID().IsEqual(first))

	assert.ErrorIs(t, bag.Store(second, 1), driver.ErrBagCannotHoldOrder)
	assert.ErrorIs(t, bag.Clear(second), driver.ErrOrderNotInBag)

	require.NoError(t, bag.Clear(first))
	assert.True(t, bag.IsEmpty())
	assert.ErrorIs(t, bag.Clear(first), driver.ErrOrderNotInBag)

	assert.ErrorIs(t, bag.Store(second, 6), driver.ErrBagCannotHoldOrder)
	assert.ErrorIs(t, bag.Store(kernel.UUID{}, 1), kernel.ErrUUIDIsNotConstructed)
}

func TestBag_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := driver.NewBag(id, "a", 1)
	b, _ := driver.RestoreBag(id, "b", 2, nil)
	c, _ := driver.NewBag(kernel.NewUUID(), "a", 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
