package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

var (
	ErrNoFreeDriversFound = errors.New("no free drivers found")
	ErrNoOrderFound       = errors.New("no order found")
)

type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle returns ErrNoOrderFound when nothing waits and ErrNoFreeDriversFound when
// nobody is free; both are expected on an idle marketplace.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoFreeDriversFound
	}

	assigned, err := h.dispatcher.Dispatch(o, drivers)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
