// Package ports declares the contracts the application core needs from infrastructure:
// repositories, the unit of work and the outgoing event publisher.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained from it share the
// transaction opened by Begin; Commit also publishes events for the orders it saved.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	DriverRepository() DriverRepository
	OrderRepository() OrderRepository
	RestaurantRepository() RestaurantRepository
}
