package ports

import (
	"context"

	"foodex/internal/core/domain/model/catalog"
	"foodex/internal/core/domain/model/kernel"
)

// CatalogRepository is the read-through accessor for restaurants and menu
// items. The catalog is maintained outside this service, so the contract
// carries no write operations.
type CatalogRepository interface {
	// GetRestaurant retrieves a restaurant by id.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetMenuItems retrieves all menu items owned by a restaurant.
	GetMenuItems(ctx context.Context, restaurantID kernel.UUID) ([]*catalog.MenuItem, error)
}
