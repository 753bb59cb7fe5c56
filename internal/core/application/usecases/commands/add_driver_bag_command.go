package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddDriverBagCommandIsNotConstructed = errors.New(
		"AddDriverBagCommand must be created via NewAddDriverBagCommand constructor",
	)
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

type AddDriverBagCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	capacity int

	guard guard.ConstructorGuard
}

func NewAddDriverBagCommand(driverID kernel.UUID, name string, capacity int) (AddDriverBagCommand, error) {
	command := AddDriverBagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setCapacity(capacity),
	); err != nil {
		return AddDriverBagCommand{}, err
	}

	return command, nil
}

func (c AddDriverBagCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverBagCommandIsNotConstructed)
}

func (c AddDriverBagCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AddDriverBagCommand) Name() string {
	return c.name
}

func (c AddDriverBagCommand) Capacity() int {
	return c.capacity
}

func (c *AddDriverBagCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AddDriverBagCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddDriverBagCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
