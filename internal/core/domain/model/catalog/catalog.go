// Package catalog contains the restaurant-facing entities the order core
// reads: Restaurant and MenuItem. The catalog is maintained outside this
// service; from the core's perspective it is read-only reference data, so the
// types here are restored from persistence and never mutated.
package catalog

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant was not
	// created through RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via RestoreRestaurant constructor")

	// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
	// through RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via RestoreMenuItem constructor")

	// ErrNameIsRequired is returned for empty restaurant or menu item names.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Restaurant is a catalog entity referenced by orders and by
// restaurant-affiliated user identities.
type Restaurant struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name string) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Restaurant{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Restaurant came through RestoreRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// MenuItem is a catalog entity owned by exactly one restaurant. Orders
// reference menu items by id.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        float64

	isConstructed bool
}

// RestoreMenuItem reconstructs a menu item from persistence.
// Price must not be negative; zero is allowed for promotional items.
func RestoreMenuItem(id, restaurantID kernel.UUID, name string, price float64) (*MenuItem, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if price < 0 {
		return nil, errs.NewValueIsOutOfRangeError("price", price, 0, nil)
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem came through RestoreMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the menu item's price.
func (m *MenuItem) Price() float64 {
	return m.price
}
