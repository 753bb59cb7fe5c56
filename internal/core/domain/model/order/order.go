package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/geo"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a single delivery.
//
// Invariants:
//   - id, number and restaurantID are set
//   - pickup and delivery are valid locations
//   - volume (number of items, the space taken in a driver's bag) is positive
//   - total is a finite, non-negative amount in the marketplace currency
//   - the driver reference agrees with the status (see Status.ValidateCanHaveDriver)
type Order struct {
	id           kernel.UUID
	number       Number
	restaurantID kernel.UUID
	pickup       kernel.Location
	delivery     kernel.Location
	volume       int
	total        float64
	createdAt    time.Time

	status   Status
	driverID *kernel.UUID

	isConstructed bool
}

// NewOrder creates an order in the Created status.
//
// Parameters:
//   - id: order identifier
//   - number: customer-facing number, see GenerateNumber
//   - restaurantID: restaurant preparing the food
//   - pickup: restaurant location
//   - delivery: customer location
//   - volume: item count, must be positive
//   - total: order amount, finite and >= 0
//   - createdAt: checkout time, stored in UTC
//
// Returns:
//   - *Order: the created order
//   - error: every failed check joined together
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(nil), restaurantID,
//	    restaurantLocation, customerLocation, 3, 42.5, time.Now())
func NewOrder(
	id kernel.UUID,
	number Number,
	restaurantID kernel.UUID,
	pickup kernel.Location,
	delivery kernel.Location,
	volume int,
	total float64,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setRestaurantID(restaurantID),
		order.setPickup(pickup),
		order.setDelivery(delivery),
		order.setVolume(volume),
		order.setTotal(total),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read from storage, including its status and driver.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	restaurantID kernel.UUID,
	pickup kernel.Location,
	delivery kernel.Location,
	volume int,
	total float64,
	createdAt time.Time,
	status Status,
	driverID *kernel.UUID,
) (*Order, error) {
	order, err := NewOrder(id, number, restaurantID, pickup, delivery, volume, total, createdAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), status.ValidateCanHaveDriver(driverID != nil)); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		id := *driverID
		order.driverID = &id
	}

	order.status = status
	return order, nil
}

// Validate fails for orders that bypassed the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Pickup is where the driver collects the order.
func (o *Order) Pickup() kernel.Location {
	return o.pickup
}

// Delivery is where the customer receives the order.
func (o *Order) Delivery() kernel.Location {
	return o.delivery
}

func (o *Order) Volume() int {
	return o.volume
}

func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver, nil while the order is Created.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveryDistance returns the meters between pickup and delivery.
func (o *Order) DeliveryDistance() float64 {
	meters, err := o.pickup.DistanceTo(o.delivery)
	if err != nil {
		return 0
	}
	return meters
}

// EstimatedMinutes is the delivery estimate for the pickup-to-customer leg after
// prepMinutes of kitchen time.
func (o *Order) EstimatedMinutes(prepMinutes int) int {
	return geo.DeliveryEstimateMinutes(o.DeliveryDistance(), prepMinutes)
}

// NextStop is the location the assigned driver is heading to: the restaurant while
// Assigned, the customer once PickedUp.
func (o *Order) NextStop() (kernel.Location, error) {
	switch o.status {
	case Assigned:
		return o.pickup, nil
	case PickedUp:
		return o.delivery, nil
	default:
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order has no next stop", o.status),
		)
	}
}

// Assign hands the order to a driver. Allowed from Created and, for reassignment,
// from Assigned.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// PickUp records that the driver collected the food at the restaurant.
func (o *Order) PickUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete records the hand-over to the customer.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setPickup(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.pickup = location
	return nil
}

func (o *Order) setDelivery(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.delivery = location
	return nil
}

func (o *Order) setVolume(volume int) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume is invalid", fmt.Errorf("%d is not greater than 0", volume))
	}
	o.volume = volume
	return nil
}

func (o *Order) setTotal(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) || total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%v is not a non-negative amount", total))
	}
	o.total = total
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
