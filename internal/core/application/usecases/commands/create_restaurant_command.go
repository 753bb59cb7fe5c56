package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateRestaurantCommand lists a new restaurant. Location, prep time and contact
// details are checked by the Restaurant aggregate.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	latitude     float64
	longitude    float64
	prepMinutes  int
	email        string
	phone        string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	latitude float64,
	longitude float64,
	prepMinutes int,
	email string,
	phone string,
) (CreateRestaurantCommand, error) {
	command := CreateRestaurantCommand{
		latitude:    latitude,
		longitude:   longitude,
		prepMinutes: prepMinutes,
		email:       strings.TrimSpace(email),
		phone:       strings.TrimSpace(phone),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return command, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Latitude() float64 {
	return c.latitude
}

func (c CreateRestaurantCommand) Longitude() float64 {
	return c.longitude
}

func (c CreateRestaurantCommand) PrepMinutes() int {
	return c.prepMinutes
}

func (c CreateRestaurantCommand) Email() string {
	return c.email
}

func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

func (c *CreateRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
