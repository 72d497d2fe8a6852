package commands

import (
	"errors"

	"foodex/internal/pkg/guard"
)

var ErrDispatchCourierCommandIsNotConstructed = errors.New(
	"DispatchCourierCommand must be created via NewDispatchCourierCommand constructor",
)

// DispatchCourierCommand triggers one round of automatic courier dispatch:
// match the oldest accepted, unassigned order with an available delivery
// user. It carries no parameters; the dispatch job issues it periodically.
type DispatchCourierCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchCourierCommand creates a dispatch command.
func NewDispatchCourierCommand() DispatchCourierCommand {
	return DispatchCourierCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchCourierCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCourierCommandIsNotConstructed)
}
