package driver

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/geo"
	"marketplace/internal/pkg/guard"
)

const (
	// DefaultSpeedKmh is the speed of a driver created without an explicit speed.
	DefaultSpeedKmh = geo.TravelSpeedKmh
	// MaxSpeedKmh bounds the configurable speed.
	MaxSpeedKmh = 150.0

	defaultBagName     = "Thermal bag"
	defaultBagCapacity = 10

	metersPerKilometer = 1000.0
	minutesPerHour     = 60.0
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDriverIsNotConstructed is returned when a Driver did not come from NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrBagNotFound is returned when no bag fits an order or holds the given order.
	ErrBagNotFound = errors.New("bag not found")
)

// Driver is the aggregate root for a delivery driver and the bags they carry.
//
// Invariants:
//   - name is not empty
//   - speed is in (0..MaxSpeedKmh] km/h
//   - at least one bag
type Driver struct {
	id       kernel.UUID
	name     string
	speedKmh float64
	location kernel.Location
	bags     []*Bag
	guard    guard.ConstructorGuard
}

// NewDriver creates a driver with one default bag of 10 items.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Alice", driver.DefaultSpeedKmh, startLocation)
func NewDriver(id kernel.UUID, name string, speedKmh float64, location kernel.Location) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setSpeed(speedKmh),
		d.setLocation(location),
		d.AddBag(defaultBagName, defaultBagCapacity),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from storage with its bags as persisted.
func RestoreDriver(
	id kernel.UUID,
	name string,
	speedKmh float64,
	location kernel.Location,
	bags []*Bag,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setSpeed(speedKmh),
		d.setLocation(location),
		d.setBags(bags),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

// Speed returns the travel speed in km/h.
func (d *Driver) Speed() float64 {
	return d.speedKmh
}

func (d *Driver) Location() kernel.Location {
	return d.location
}

// Bags returns a copy of the bag list.
func (d *Driver) Bags() []*Bag {
	out := make([]*Bag, len(d.bags))
	copy(out, d.bags)
	return out
}

// IsFree reports whether every bag is empty.
func (d *Driver) IsFree() bool {
	for _, bag := range d.bags {
		if !bag.IsEmpty() {
			return false
		}
	}
	return true
}

// AddBag gives the driver another bag.
func (d *Driver) AddBag(name string, capacity int) error {
	bag, err := NewBag(kernel.NewUUID(), name, capacity)
	if err != nil {
		return err
	}

	d.bags = append(d.bags, bag)
	return nil
}

// CanTakeOrder reports whether some empty bag fits the order.
func (d *Driver) CanTakeOrder(o *order.Order) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	bag, err := d.findBagForItems(o.Volume())
	if err != nil {
		return false, err
	}

	return bag != nil, nil
}

// TakeOrder stores the order in the first empty bag that fits it.
func (d *Driver) TakeOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	bag, err := d.findBagForItems(o.Volume())
	if err != nil {
		return err
	}
	if bag == nil {
		return ErrBagNotFound
	}

	return bag.Store(o.ID(), o.Volume())
}

// CompleteOrder empties the bag holding orderID.
func (d *Driver) CompleteOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	bag := d.findBagByOrderID(orderID)
	if bag == nil {
		return ErrBagNotFound
	}

	return bag.Clear(orderID)
}

// CalculateTimeToLocation returns the travel minutes from the current position to target.
func (d *Driver) CalculateTimeToLocation(target kernel.Location) (float64, error) {
	distance, err := d.location.DistanceTo(target)
	if err != nil {
		return 0, err
	}

	return geo.TravelMinutes(distance, d.speedKmh), nil
}

// StepMeters is the distance covered in one simulated minute.
func (d *Driver) StepMeters() float64 {
	return d.speedKmh * metersPerKilometer / minutesPerHour
}

// Move advances the driver one simulated minute towards target and reports whether
// the driver has arrived.
func (d *Driver) Move(target kernel.Location) (bool, error) {
	next, arrived, err := d.location.StepTowards(target, d.StepMeters())
	if err != nil {
		return false, err
	}

	if err = d.setLocation(next); err != nil {
		return false, err
	}
	return arrived, nil
}

func (d *Driver) findBagForItems(items int) (*Bag, error) {
	for _, bag := range d.bags {
		canStore, err := bag.CanStore(items)
		if err != nil {
			return nil, err
		}

		if canStore {
			return bag, nil
		}
	}

	return nil, nil //nolint:nilnil // nothing is found and no error
}

func (d *Driver) findBagByOrderID(orderID kernel.UUID) *Bag {
	for _, bag := range d.bags {
		if id := bag.OrderID(); id != nil && id.IsEqual(orderID) {
			return bag
		}
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	d.name = name
	return nil
}

func (d *Driver) setSpeed(speedKmh float64) error {
	if !(speedKmh > 0 && speedKmh <= MaxSpeedKmh) {
		return errs.NewValueIsOutOfRangeError("speed", speedKmh, 0, MaxSpeedKmh)
	}

	d.speedKmh = speedKmh
	return nil
}

func (d *Driver) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	d.location = location
	return nil
}

func (d *Driver) setBags(bags []*Bag) error {
	if len(bags) == 0 {
		return errs.NewValueIsRequiredError("bags are required")
	}

	for _, bag := range bags {
		if err := bag.Validate(); err != nil {
			return err
		}
	}

	d.bags = make([]*Bag, len(bags))
	copy(d.bags, bags)
	return nil
}
