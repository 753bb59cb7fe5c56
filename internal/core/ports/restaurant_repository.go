package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
)

// RestaurantRepository persists restaurant aggregates.
type RestaurantRepository interface {
	// Add stores a new restaurant. A taken slug yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get returns the restaurant or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
