package driver

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrBagCannotHoldOrder is returned by Store when the bag is occupied or too small.
	ErrBagCannotHoldOrder = errors.New("bag cannot hold this order")

	// ErrOrderNotInBag is returned by Clear for an order the bag does not hold.
	ErrOrderNotInBag = errors.New("order is not in this bag")

	// ErrBagIsNotConstructed is returned when a Bag did not come from NewBag or RestoreBag.
	ErrBagIsNotConstructed = errors.New("Bag must be created via NewBag constructor")
)

// Bag is an entity of the Driver aggregate: a named container that fits one order of
// up to capacity items.
type Bag struct {
	id       kernel.UUID
	name     string
	capacity int
	orderID  *kernel.UUID
	guard    guard.ConstructorGuard
}

// NewBag creates an empty bag.
//
// Parameters:
//   - id: bag identifier
//   - name: display name, required
//   - capacity: maximum items, must be positive
func NewBag(id kernel.UUID, name string, capacity int) (*Bag, error) {
	bag := &Bag{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(bag.setID(id), bag.setName(name), bag.setCapacity(capacity)); err != nil {
		return nil, err
	}

	return bag, nil
}

// RestoreBag rebuilds a bag from storage, possibly holding an order.
func RestoreBag(id kernel.UUID, name string, capacity int, orderID *kernel.UUID) (*Bag, error) {
	bag := &Bag{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bag.setID(id),
		bag.setName(name),
		bag.setCapacity(capacity),
		bag.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return bag, nil
}

func (b *Bag) Validate() error {
	if b == nil {
		return ErrBagIsNotConstructed
	}
	return b.guard.Validate(ErrBagIsNotConstructed)
}

func (b *Bag) IsEqual(other *Bag) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Bag) ID() kernel.UUID {
	return b.id
}

func (b *Bag) Name() string {
	return b.name
}

func (b *Bag) Capacity() int {
	return b.capacity
}

// OrderID returns the order in the bag, nil when empty.
func (b *Bag) OrderID() *kernel.UUID {
	return b.orderID
}

func (b *Bag) IsEmpty() bool {
	return b.orderID == nil
}

// CanStore reports whether the bag is empty and large enough for items.
func (b *Bag) CanStore(items int) (bool, error) {
	if items <= 0 {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"items is invalid",
			fmt.Errorf("%d is not greater than 0", items),
		)
	}

	return b.IsEmpty() && b.capacity >= items, nil
}

// Store puts the order in the bag.
func (b *Bag) Store(orderID kernel.UUID, items int) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	canStore, err := b.CanStore(items)
	if err != nil {
		return err
	}
	if !canStore {
		return ErrBagCannotHoldOrder
	}

	b.orderID = &orderID
	return nil
}

// Clear empties the bag after orderID was delivered.
func (b *Bag) Clear(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if b.IsEmpty() || !b.orderID.IsEqual(orderID) {
		return ErrOrderNotInBag
	}

	b.orderID = nil
	return nil
}

func (b *Bag) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *Bag) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	b.name = name
	return nil
}

func (b *Bag) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity is invalid",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}

	b.capacity = capacity
	return nil
}

func (b *Bag) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		b.orderID = nil
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	id := *orderID
	b.orderID = &id
	return nil
}
