package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// MaxOrderNumberAttempts bounds how many generated numbers are tried when they collide.
const MaxOrderNumberAttempts = 5

var ErrOrderNumberCollision = errors.New("could not allocate a unique order number")

// CreateOrderResult describes the stored order.
type CreateOrderResult struct {
	OrderID          kernel.UUID
	Number           string
	DistanceMeters   float64
	EstimatedMinutes int
}

type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	numbers    order.NumberGenerator
	now        func() time.Time
}

// NewCreateOrderCommandHandler builds the handler. A nil numbers generator uses the
// process-wide order number generator.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, numbers order.NumberGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
		now:        time.Now,
	}
}

// Handle stores the order with a freshly generated number. Number collisions reported
// by storage are retried in a new transaction with a new number.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	delivery, err := kernel.NewLocation(cmd.DeliveryLatitude(), cmd.DeliveryLongitude())
	if err != nil {
		return CreateOrderResult{}, err
	}

	for range MaxOrderNumberAttempts {
		result, addErr := h.add(ctx, cmd, delivery)
		if errors.Is(addErr, errs.ErrObjectAlreadyExists) {
			continue
		}
		return result, addErr
	}

	return CreateOrderResult{}, fmt.Errorf("%w after %d attempts", ErrOrderNumberCollision, MaxOrderNumberAttempts)
}

func (h CreateOrderCommandHandler) add(
	ctx context.Context,
	cmd CreateOrderCommand,
	delivery kernel.Location,
) (CreateOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		order.GenerateNumber(h.numbers),
		r.ID(),
		r.Location(),
		delivery,
		cmd.Items(),
		cmd.Total(),
		h.now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:          o.ID(),
		Number:           o.Number().String(),
		DistanceMeters:   o.DeliveryDistance(),
		EstimatedMinutes: o.EstimatedMinutes(r.PrepMinutes()),
	}, nil
}
