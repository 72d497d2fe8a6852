package services

import (
	"errors"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/order"
)

// ErrNoAvailableCourier is returned when no delivery user can take the order:
// either none were provided or none is currently available.
var ErrNoAvailableCourier = errors.New("no available courier found")

// CourierDispatcher is a domain service that matches an unassigned order with
// an available delivery user. Assignment and availability are updated
// atomically on the in-memory aggregates; the calling use case persists both
// within one transaction.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch assigns the first available delivery user to the order and marks
// that user busy. Returns ErrNoAvailableCourier when no candidate qualifies,
// or order.ErrAlreadyAssigned when the order already has a delivery person.
func (d CourierDispatcher) Dispatch(target *order.Order, couriers []*account.User) (*account.User, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	courier := d.findAvailableCourier(couriers)
	if courier == nil {
		return nil, ErrNoAvailableCourier
	}

	if err := target.AssignDeliveryPerson(courier.ID()); err != nil {
		return nil, err
	}
	if err := courier.MarkBusy(); err != nil {
		return nil, err
	}

	return courier, nil
}

func (d CourierDispatcher) findAvailableCourier(couriers []*account.User) *account.User {
	for _, courier := range couriers {
		if courier == nil || courier.Validate() != nil {
			continue
		}
		if courier.IsAvailable() {
			return courier
		}
	}
	return nil
}
