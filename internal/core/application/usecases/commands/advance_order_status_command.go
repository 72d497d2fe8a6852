package commands

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to the next
// state in the fixed lifecycle sequence.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status
// on behalf of the authenticated actor.
func NewAdvanceOrderStatusCommand(orderID, actorID kernel.UUID) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated caller's identifier.
func (c AdvanceOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}
