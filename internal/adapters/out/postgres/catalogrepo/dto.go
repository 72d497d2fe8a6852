// Package catalogrepo provides read-through persistence for the restaurant
// catalog. The catalog is maintained outside this service; the DTOs exist so
// migrations and seeds can shape the tables, but the repository only reads.
package catalogrepo

import (
	"foodex/internal/core/domain/model/catalog"
	"foodex/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        float64
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(id, dto.Name)
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, restaurantID, dto.Name, dto.Price)
}
