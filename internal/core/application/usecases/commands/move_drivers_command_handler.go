package commands

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type MoveDriversCommandHandler struct {
	uowFactory UoWFactory
}

func NewMoveDriversCommandHandler(uowFactory UoWFactory) MoveDriversCommandHandler {
	return MoveDriversCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves each driver towards their order's next stop. Arriving at the
// restaurant picks the order up; arriving at the customer completes it and frees the bag.
// Only orders whose status changed are written, so only they raise OrderChanged events.
func (h MoveDriversCommandHandler) Handle(ctx context.Context, cmd MoveDriversCommand) error {
	if err := cmd.Validate(); err != nil {
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

	orders, err := orderRepo.GetAllInDelivery(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		driverID := o.Driver()
		if driverID == nil {
			return errs.NewValueIsRequiredError("driverID")
		}

		d, getErr := driverRepo.Get(ctx, *driverID)
		if getErr != nil {
			return getErr
		}

		before := o.Status()
		if err = h.advance(o, d); err != nil {
			return err
		}

		// orders en route only change when a stop is reached
		if o.Status() != before {
			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}

		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h MoveDriversCommandHandler) advance(o *order.Order, d *driver.Driver) error {
	stop, err := o.NextStop()
	if err != nil {
		return err
	}

	arrived, err := d.Move(stop)
	if err != nil || !arrived {
		return err
	}

	if o.Status() == order.Assigned {
		return o.PickUp()
	}

	if err = o.Complete(); err != nil {
		return err
	}

	return d.CompleteOrder(o.ID())
}
