package commands

import (
	"context"
)

type AddDriverBagCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewAddDriverBagCommandHandler(uowFactory DriverUoWFactory) AddDriverBagCommandHandler {
	return AddDriverBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds an empty bag to an existing driver. An unknown driver yields
// errs.ErrObjectNotFound from the repository.
func (h AddDriverBagCommandHandler) Handle(ctx context.Context, cmd AddDriverBagCommand) error {
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

	repo := uow.DriverRepository()

	d, err := repo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = d.AddBag(cmd.Name(), cmd.Capacity()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
