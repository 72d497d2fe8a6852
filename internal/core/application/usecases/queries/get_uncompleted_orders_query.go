package queries

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders not yet delivered, scoped to
// what the actor may see: customers their own orders, restaurants their
// restaurant's, delivery users their assignments, admins everything.
type GetUncompletedOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve active orders
// visible to the actor.
func NewGetUncompletedOrdersQuery(actorID kernel.UUID) (GetUncompletedOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetUncompletedOrdersQuery{}, err
	}

	return GetUncompletedOrdersQuery{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// ActorID returns the authenticated caller's identifier.
func (q GetUncompletedOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// GetUncompletedOrdersQueryResponse is one active-order row of the listing.
type GetUncompletedOrdersQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	RestaurantID     kernel.UUID
	Status           order.Status
	DeliveryPersonID *kernel.UUID
	Version          int
}
