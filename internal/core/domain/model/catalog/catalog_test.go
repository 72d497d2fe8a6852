package catalog_test

import (
	"testing"

	"foodex/internal/core/domain/model/catalog"
	"foodex/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreRestaurant(t *testing.T) {
	t.Run("should restore valid restaurant", func(t *testing.T) {
		id := kernel.NewUUID()

		restaurant, err := catalog.RestoreRestaurant(id, "Pizzeria Uno")
		require.NoError(t, err)

		assert.True(t, restaurant.ID().IsEqual(id))
		assert.Equal(t, "Pizzeria Uno", restaurant.Name())
		require.NoError(t, restaurant.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := catalog.RestoreRestaurant(kernel.NewUUID(), "")
		require.ErrorIs(t, err, catalog.ErrNameIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := catalog.RestoreRestaurant(id, "Pizzeria Uno")
		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var restaurant catalog.Restaurant
		require.ErrorIs(t, restaurant.Validate(), catalog.ErrRestaurantIsNotConstructed)
	})
}

func TestRestoreMenuItem(t *testing.T) {
	t.Run("should restore valid menu item", func(t *testing.T) {
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		item, err := catalog.RestoreMenuItem(id, restaurantID, "Margherita", 9.50)
		require.NoError(t, err)

		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "Margherita", item.Name())
		assert.InDelta(t, 9.50, item.Price(), 0.001)
		require.NoError(t, item.Validate())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		_, err := catalog.RestoreMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Tap water", 0)
		require.NoError(t, err)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := catalog.RestoreMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", -1)
		require.Error(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := catalog.RestoreMenuItem(kernel.NewUUID(), kernel.NewUUID(), "", 9.50)
		require.ErrorIs(t, err, catalog.ErrNameIsRequired)
	})

	t.Run("should reject missing restaurant id", func(t *testing.T) {
		var restaurantID kernel.UUID
		_, err := catalog.RestoreMenuItem(kernel.NewUUID(), restaurantID, "Margherita", 9.50)
		require.Error(t, err)
	})
}
