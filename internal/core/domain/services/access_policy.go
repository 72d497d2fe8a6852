package services

import (
	"errors"
	"fmt"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/pkg/errs"
)

// ErrForbidden is returned whenever an actor attempts an operation outside
// the relations its role permits. Detail is attached with fmt.Errorf("%w: ...")
// so callers classify with errors.Is.
var ErrForbidden = errors.New("forbidden")

// Operation enumerates the order operations gated by the access policy.
type Operation int

const (
	// UnknownOperation represents an invalid or undefined operation.
	UnknownOperation Operation = iota

	// ReadOrder covers every read of a single order.
	ReadOrder

	// CreateOrder covers placing a new order.
	CreateOrder

	// AdvanceOrder covers moving the order status forward.
	AdvanceOrder

	// AssignOrder covers accepting the delivery assignment of an order.
	AssignOrder
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		UnknownOperation: "unknown",
		ReadOrder:        "read",
		CreateOrder:      "create",
		AdvanceOrder:     "advance",
		AssignOrder:      "assign",
	}
}

// Validate checks that the Operation is one of the declared valid values.
func (op Operation) Validate() error {
	if op <= UnknownOperation || op > AssignOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"operation", fmt.Errorf("%d is not a valid operation", op))
	}
	return nil
}

// String returns the operation name, or "unknown" for invalid values.
func (op Operation) String() string {
	if str, ok := getOperationStrings()[op]; ok {
		return str
	}
	return "unknown"
}

// AccessPolicy decides whether an actor may perform an operation on an order.
// It is a pure predicate over (actor, order, operation) with no I/O, evaluated
// ahead of every gated use case so authorization stays testable independent of
// transport.
//
// The relations it enforces:
//   - Customer: read/create only its own orders
//   - Restaurant: read/advance only its restaurant's orders
//   - Delivery: read/advance only orders assigned to it, and accept
//     delivery assignments
//   - Admin: allowed everywhere
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns nil when the actor may perform op on target, otherwise an
// error wrapping ErrForbidden.
func (p AccessPolicy) Authorize(actor *account.User, target *order.Order, op Operation) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if err := op.Validate(); err != nil {
		return err
	}

	if p.allowed(actor, target, op) {
		return nil
	}

	return fmt.Errorf("%w: %s may not %s this order", ErrForbidden, actor.Role(), op)
}

func (p AccessPolicy) allowed(actor *account.User, target *order.Order, op Operation) bool {
	switch actor.Role() {
	case account.Admin:
		return true

	case account.Customer:
		if op != ReadOrder && op != CreateOrder {
			return false
		}
		return target.CustomerID().IsEqual(actor.ID())

	case account.Restaurant:
		if op != ReadOrder && op != AdvanceOrder {
			return false
		}
		restaurantID := actor.RestaurantID()
		return restaurantID != nil && target.RestaurantID().IsEqual(*restaurantID)

	case account.Delivery:
		// Assignment attempts are always authorized; the order aggregate
		// enforces exactly-once and reports a state conflict, not a
		// permission failure, when the order is already taken.
		if op == AssignOrder {
			return true
		}
		if op != ReadOrder && op != AdvanceOrder {
			return false
		}
		assignee := target.DeliveryPerson()
		return assignee != nil && assignee.IsEqual(actor.ID())

	default:
		return false
	}
}
