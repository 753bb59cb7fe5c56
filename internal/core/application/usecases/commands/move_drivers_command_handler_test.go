package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedOrder(t *testing.T) (*order.Order, *driver.Driver) {
	t.Helper()
	o := newCreatedOrder(t, 2)
	d := newDriverAt(t, "Alice", pickupLocation)
	require.NoError(t, d.TakeOrder(o))
	require.NoError(t, o.Assign(d.ID()))
	return o, d
}

// tick runs one MoveDrivers pass over a single order with its driver.
// orderSaved says whether the pass is expected to write the order.
func tick(t *testing.T, o *order.Order, d *driver.Driver, orderSaved bool) {
	t.Helper()
	ctx := t.Context()

	orders := new(MockOrderRepository)
	orders.On("GetAllInDelivery", ctx).Return([]*order.Order{o}, nil).Once()
	if orderSaved {
		orders.On("Update", ctx, o).Return(nil).Once()
	}
	drivers := new(MockDriverRepository)
	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(drivers).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewMoveDriversCommandHandler(factory).Handle(ctx, commands.NewMoveDriversCommand())

	require.NoError(t, err)
	orders.AssertExpectations(t)
	if !orderSaved {
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	}
	drivers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMoveDriversCommandHandler_Handle_DeliversOrder(t *testing.T) {
	o, d := newAssignedOrder(t)

	// the driver waits at the restaurant
	tick(t, o, d, true)
	assert.Equal(t, order.PickedUp, o.Status())
	assert.False(t, d.IsFree())

	// 500 m per tick over ≈ 1112 m; the order is untouched on the way
	tick(t, o, d, false)
	assert.Equal(t, order.PickedUp, o.Status())
	assert.InDelta(t, 0.0045, d.Location().Longitude(), 0.0001)

	tick(t, o, d, false)
	assert.Equal(t, order.PickedUp, o.Status())

	tick(t, o, d, true)
	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, deliveryLocation, d.Location())
	assert.True(t, d.IsFree())
}

func TestMoveDriversCommandHandler_Handle_DriverTravelsToRestaurant(t *testing.T) {
	o := newCreatedOrder(t, 1)
	d := newDriverAt(t, "Bob", deliveryLocation)
	require.NoError(t, d.TakeOrder(o))
	require.NoError(t, o.Assign(d.ID()))

	tick(t, o, d, false)

	assert.Equal(t, order.Assigned, o.Status())
	assert.InDelta(t, 0.0055, d.Location().Longitude(), 0.0001)
}

func TestMoveDriversCommandHandler_Handle_NothingInDelivery(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)
	orders.On("GetAllInDelivery", ctx).Return([]*order.Order{}, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(new(MockDriverRepository)).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewMoveDriversCommandHandler(factory).Handle(ctx, commands.NewMoveDriversCommand())

	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestMoveDriversCommandHandler_Handle_DriverLookupFails(t *testing.T) {
	ctx := t.Context()
	o, d := newAssignedOrder(t)

	orders := new(MockOrderRepository)
	orders.On("GetAllInDelivery", ctx).Return([]*order.Order{o}, nil).Once()
	drivers := new(MockDriverRepository)
	drivers.On("Get", ctx, d.ID()).Return(nil, errs.NewObjectNotFoundError("driverID", d.ID())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(drivers).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewMoveDriversCommandHandler(factory).Handle(ctx, commands.NewMoveDriversCommand())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Assigned, o.Status())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMoveDriversCommandHandler_Handle_BeginFails(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	err := commands.NewMoveDriversCommandHandler(factory).Handle(ctx, commands.NewMoveDriversCommand())

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
