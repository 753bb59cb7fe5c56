// Package restaurant models the kitchens that list on the marketplace.
package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/geo"
	"marketplace/internal/pkg/guard"
	"marketplace/internal/pkg/identifier"
	"marketplace/internal/pkg/validate"
)

const (
	MinPrepMinutes = 1
	MaxPrepMinutes = 180
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRestaurantIsNotConstructed is returned when a Restaurant did not come from
	// NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the aggregate root for a listed kitchen.
//
// The slug is derived from the name and must be unique across the marketplace;
// WithSlugSuffix produces the "-2", "-3" variants tried on conflict.
// Email and phone are optional, but validated when present.
type Restaurant struct {
	id          kernel.UUID
	name        string
	slug        string
	location    kernel.Location
	prepMinutes int
	email       string
	phone       string
	guard       guard.ConstructorGuard
}

// NewRestaurant creates a restaurant and derives its slug from name.
//
// Parameters:
//   - id: restaurant identifier
//   - name: display name; its slug must not be empty
//   - location: where drivers pick orders up
//   - prepMinutes: typical kitchen time in [MinPrepMinutes..MaxPrepMinutes]
//   - email, phone: contact details, may be empty
//
// Returns:
//   - *Restaurant: the restaurant
//   - error: every failed check joined together
func NewRestaurant(
	id kernel.UUID,
	name string,
	location kernel.Location,
	prepMinutes int,
	email string,
	phone string,
) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSlug(identifier.Slugify(name)),
		r.setLocation(location),
		r.setPrepMinutes(prepMinutes),
		r.setEmail(email),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant rebuilds a restaurant from storage with its persisted slug.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	slug string,
	location kernel.Location,
	prepMinutes int,
	email string,
	phone string,
) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSlug(slug),
		r.setLocation(location),
		r.setPrepMinutes(prepMinutes),
		r.setEmail(email),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Slug() string {
	return r.slug
}

func (r *Restaurant) Location() kernel.Location {
	return r.location
}

func (r *Restaurant) PrepMinutes() int {
	return r.prepMinutes
}

func (r *Restaurant) Email() string {
	return r.email
}

func (r *Restaurant) Phone() string {
	return r.phone
}

// WithSlugSuffix replaces the slug with the name-derived slug plus "-n" for n >= 2.
// n below 2 restores the plain slug.
func (r *Restaurant) WithSlugSuffix(n int) {
	base := identifier.Slugify(r.name)
	if n < 2 {
		r.slug = base
		return
	}
	r.slug = fmt.Sprintf("%s-%d", base, n)
}

// DeliveryEstimate returns the meters to a customer location and the estimated
// delivery time in minutes including kitchen time.
//
// Example:
//
//	meters, minutes, err := r.DeliveryEstimate(customer)
//	// 2400 m with 20 prep minutes -> 5 + 20 = 25 minutes
func (r *Restaurant) DeliveryEstimate(to kernel.Location) (float64, int, error) {
	meters, err := r.location.DistanceTo(to)
	if err != nil {
		return 0, 0, err
	}

	return meters, geo.DeliveryEstimateMinutes(meters, r.prepMinutes), nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Restaurant) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsInvalidErrorWithCause("slug is invalid", errors.New("name has no letters or digits"))
	}
	if identifier.Slugify(slug) != slug {
		return errs.NewValueIsInvalidErrorWithCause("slug is invalid", fmt.Errorf("%q is not a slug", slug))
	}

	r.slug = slug
	return nil
}

func (r *Restaurant) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.location = location
	return nil
}

func (r *Restaurant) setPrepMinutes(minutes int) error {
	if minutes < MinPrepMinutes || minutes > MaxPrepMinutes {
		return errs.NewValueIsOutOfRangeError("prepMinutes", minutes, MinPrepMinutes, MaxPrepMinutes)
	}

	r.prepMinutes = minutes
	return nil
}

func (r *Restaurant) setEmail(email string) error {
	if email != "" && !validate.IsValidEmail(email) {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q is not an email address", email))
	}

	r.email = email
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if phone != "" && !validate.IsValidPhone(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone is invalid", fmt.Errorf("%q is not a phone number", phone))
	}

	r.phone = phone
	return nil
}
