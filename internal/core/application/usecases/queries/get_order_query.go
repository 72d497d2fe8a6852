package queries

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of an authenticated actor.
// The read relation of the access policy is applied: a caller outside the
// order's customer/restaurant/assignee circle gets services.ErrForbidden.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	query.orderID = orderID
	query.actorID = actorID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to read.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the authenticated caller's identifier.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetOrderQueryResponse is the order view returned to transports.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	RestaurantID     kernel.UUID
	ItemIDs          []kernel.UUID
	Status           order.Status
	DeliveryPersonID *kernel.UUID
	Version          int
}
