package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrMoveDriversCommandIsNotConstructed = errors.New(
		"MoveDriversCommand must be created via NewMoveDriversCommand constructor",
	)
)

// MoveDriversCommand advances every driver with an order by one simulated minute.
type MoveDriversCommand struct {
	guard guard.ConstructorGuard
}

func NewMoveDriversCommand() MoveDriversCommand {
	return MoveDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c MoveDriversCommand) Validate() error {
	return c.guard.Validate(ErrMoveDriversCommandIsNotConstructed)
}
