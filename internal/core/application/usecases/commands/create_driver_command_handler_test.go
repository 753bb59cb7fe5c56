package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(id, "Alice", 0, 52.52, 13.405)
	require.NoError(t, err)

	repo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(d *driver.Driver) bool {
			return d.ID().IsEqual(id) && d.Speed() == driver.DefaultSpeedKmh && len(d.Bags()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDriverCommandHandler_Handle_InvalidInput(t *testing.T) {
	ctx := t.Context()
	factory := new(MockDriverUoWFactory)
	h := commands.NewCreateDriverCommandHandler(factory)

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", 0, 0, 200)
	require.NoError(t, err)
	require.Error(t, h.Handle(ctx, cmd))

	cmd, err = commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", 500, 0, 0)
	require.NoError(t, err)
	require.Error(t, h.Handle(ctx, cmd))

	require.Error(t, h.Handle(ctx, commands.CreateDriverCommand{}))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDriverCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Alice", 0, 0, 0)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockDriverUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateDriverCommandHandler(factory)
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
