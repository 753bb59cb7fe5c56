package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
)

// CreateDriverCommand registers a driver at a starting position. A zero speed means
// driver.DefaultSpeedKmh.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	name      string
	speedKmh  float64
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	speedKmh float64,
	latitude float64,
	longitude float64,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setSpeed(speedKmh),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Speed() float64 {
	return c.speedKmh
}

func (c CreateDriverCommand) Latitude() float64 {
	return c.latitude
}

func (c CreateDriverCommand) Longitude() float64 {
	return c.longitude
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setSpeed(speedKmh float64) error {
	if speedKmh == 0 {
		speedKmh = driver.DefaultSpeedKmh
	}

	c.speedKmh = speedKmh
	return nil
}
