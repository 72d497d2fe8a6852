package commands

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to assign a delivery person to an
// order. Assignment happens exactly once per order.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign the delivery user
// courierID to the order, requested by the authenticated actor (normally the
// courier accepting the order itself).
func NewAssignCourierCommand(orderID, courierID, actorID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
		actorID.Validate(),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the delivery user to assign.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// ActorID returns the authenticated caller's identifier.
func (c AssignCourierCommand) ActorID() kernel.UUID {
	return c.actorID
}
