package commands

import (
	"errors"
	"math"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsIsInvalid = errors.New("items must be greater than 0")
	ErrTotalIsInvalid = errors.New("total must be a non-negative amount")
)

// CreateOrderCommand places an order at a restaurant for delivery to a customer location.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	restaurantID      kernel.UUID
	deliveryLatitude  float64
	deliveryLongitude float64
	items             int
	total             float64

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryLatitude float64,
	deliveryLongitude float64,
	items int,
	total float64,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		deliveryLatitude:  deliveryLatitude,
		deliveryLongitude: deliveryLongitude,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRestaurantID(restaurantID),
		command.setItems(items),
		command.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) DeliveryLatitude() float64 {
	return c.deliveryLatitude
}

func (c CreateOrderCommand) DeliveryLongitude() float64 {
	return c.deliveryLongitude
}

func (c CreateOrderCommand) Items() int {
	return c.items
}

func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items int) error {
	if items <= 0 {
		return ErrItemsIsInvalid
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return ErrTotalIsInvalid
	}

	c.total = total
	return nil
}
