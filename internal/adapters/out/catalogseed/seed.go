// Package catalogseed populates the restaurant catalog with an initial
// set of restaurants and menu items. Restaurants have no write API, so
// the seed is the only way rows appear in those tables.
package catalogseed

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodex/internal/adapters/out/postgres/catalogrepo"
)

type entry struct {
	restaurant catalogrepo.RestaurantDTO
	items      []catalogrepo.MenuItemDTO
}

// Apply inserts the default catalog. It is idempotent: existing rows
// with the same primary key are left untouched.
func Apply(db *gorm.DB) error {
	for _, e := range defaultCatalog() {
		result := db.FirstOrCreate(&e.restaurant, catalogrepo.RestaurantDTO{ID: e.restaurant.ID})
		if result.Error != nil {
			return result.Error
		}

		for _, item := range e.items {
			result = db.FirstOrCreate(&item, catalogrepo.MenuItemDTO{ID: item.ID})
			if result.Error != nil {
				return result.Error
			}
		}
	}
	return nil
}

func defaultCatalog() []entry {
	pizzeria := uuid.MustParse("7b3e2c1a-0f45-4a8e-9d12-3c5b8a6f01e1")
	sushi := uuid.MustParse("a94d7f20-6b3c-4e19-8f70-12d4c9b5e802")

	return []entry{
		{
			restaurant: catalogrepo.RestaurantDTO{ID: pizzeria, Name: "Napoli Express"},
			items: []catalogrepo.MenuItemDTO{
				{ID: uuid.MustParse("1f0a3b52-9c8d-4e67-b214-78a5d3c6e901"), RestaurantID: pizzeria, Name: "Margherita", Price: 9.50},
				{ID: uuid.MustParse("2e1b4c63-8d7e-4f78-a325-89b6e4d7f012"), RestaurantID: pizzeria, Name: "Quattro Formaggi", Price: 12.00},
				{ID: uuid.MustParse("3d2c5d74-7e6f-4089-b436-90c7f5e80123"), RestaurantID: pizzeria, Name: "Tiramisu", Price: 6.00},
			},
		},
		{
			restaurant: catalogrepo.RestaurantDTO{ID: sushi, Name: "Kaiten Sushi Bar"},
			items: []catalogrepo.MenuItemDTO{
				{ID: uuid.MustParse("4c3d6e85-6f50-419a-c547-01d806f90234"), RestaurantID: sushi, Name: "Salmon Nigiri Set", Price: 14.50},
				{ID: uuid.MustParse("5b4e7f96-5041-42ab-d658-12e917012345"), RestaurantID: sushi, Name: "Miso Soup", Price: 4.00},
			},
		},
	}
}
