package ports

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
)

// DriverRepository persists driver aggregates together with their bags.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update stores the driver and replaces its bags.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get returns the driver or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllFree returns drivers whose bags are all empty.
	GetAllFree(ctx context.Context) ([]*driver.Driver, error)
}
