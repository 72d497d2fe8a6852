package order

import (
	"errors"
	"fmt"

	"foodex/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status advance is requested from a
// state that has no successor. Detail is attached with fmt.Errorf("%w: ...")
// so callers classify with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. The lifecycle is linear
// and forward-only:
//
//	Pending ──> Accepted ──> OutForDelivery ──> Delivered
//
// There is no cancelled state. Status is a closed enum with an explicit
// successor function, so free-form values can never enter the system.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of every placed order, waiting for the
	// restaurant to accept it.
	Pending

	// Accepted indicates the restaurant has accepted and is preparing the order.
	Accepted

	// OutForDelivery indicates the order has left the restaurant with a courier.
	OutForDelivery

	// Delivered is the final state; no further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "UNKNOWN",
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Accepted:       "ACCEPTED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// Validate checks that the Status is one of the declared valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether the status admits no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the immediate successor in the fixed lifecycle sequence.
//
// Valid transitions:
//   - Pending -> Accepted
//   - Accepted -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// Returns ErrInvalidTransition for Delivered (final state) and for any
// invalid status value.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Accepted, nil
	case Accepted:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	case Delivered:
		return UnknownStatus, fmt.Errorf("%w: order is already delivered", ErrInvalidTransition)
	default:
		return UnknownStatus, fmt.Errorf("%w: %s has no successor", ErrInvalidTransition, s)
	}
}
