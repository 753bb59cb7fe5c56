package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists every driver with position and load, ordered by name.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// GetAllDriversQueryResponse describes one driver. Busy bags are bags holding an order.
type GetAllDriversQueryResponse struct {
	ID       kernel.UUID
	Name     string
	SpeedKmh float64
	Location kernel.Location
	Bags     int
	BusyBags int
}

func (r GetAllDriversQueryResponse) IsFree() bool {
	return r.BusyBags == 0
}
