package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add stores a new order. A duplicate order number yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus returns the oldest order waiting for a driver,
	// or errs.ErrObjectNotFound.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInDelivery returns orders that have a driver on the way: Assigned and PickedUp.
	GetAllInDelivery(ctx context.Context) ([]*order.Order, error)
}
