package services

import (
	"errors"
	"math"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when none of the candidates has a bag that fits the order.
var ErrDriverNotFound = errors.New("driver not found")

// OrderDispatcher assigns orders to drivers by travel time to the pickup point.
//
// Rules:
//   - the order must be Created or Assigned
//   - only drivers with an empty bag large enough for the order are considered
//   - the driver with the smallest travel time to the restaurant wins; ties keep the
//     earlier candidate
//
// Example:
//
//	chosen, err := services.NewOrderDispatcher().Dispatch(o, freeDrivers)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // retry on the next tick
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch picks the best driver, stores the order in their bag and assigns it.
// Both aggregates are modified only on success.
func (d OrderDispatcher) Dispatch(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if _, err := o.Status().Assign(); err != nil {
		return nil, err
	}

	best, err := d.findBestDriver(o, drivers)
	if err != nil {
		return nil, err
	}

	if err = best.TakeOrder(o); err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d OrderDispatcher) findBestDriver(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	var (
		best     *driver.Driver
		bestTime = math.MaxFloat64
	)

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		canTake, err := candidate.CanTakeOrder(o)
		if err != nil {
			return nil, err
		}
		if !canTake {
			continue
		}

		minutes, err := candidate.CalculateTimeToLocation(o.Pickup())
		if err != nil {
			return nil, err
		}

		if minutes < bestTime {
			bestTime = minutes
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}

	return best, nil
}
