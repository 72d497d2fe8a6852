package queries

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves a restaurant with its menu items. The
// catalog is public; no actor is involved.
type GetRestaurantMenuQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a query to read one restaurant's menu.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant to read.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// MenuItemView is one menu entry of the response.
type MenuItemView struct {
	ID    kernel.UUID
	Name  string
	Price float64
}

// GetRestaurantMenuQueryResponse is the restaurant view with its menu,
// sorted by item name.
type GetRestaurantMenuQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Items []MenuItemView
}
