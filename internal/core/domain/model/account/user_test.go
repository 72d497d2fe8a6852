package account_test

import (
	"testing"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create customer user", func(t *testing.T) {
		id := kernel.NewUUID()

		user, err := account.NewUser(id, "a@x.com", "secret", account.Customer, nil)
		require.NoError(t, err)

		assert.True(t, user.ID().IsEqual(id))
		assert.Equal(t, "a@x.com", user.Email())
		assert.Equal(t, "secret", user.Credential())
		assert.Equal(t, account.Customer, user.Role())
		assert.Nil(t, user.RestaurantID())
		assert.False(t, user.IsAvailable())
		require.NoError(t, user.Validate())
	})

	t.Run("should create restaurant user with affiliation", func(t *testing.T) {
		restaurantID := kernel.NewUUID()

		user, err := account.NewUser(kernel.NewUUID(), "r@x.com", "secret", account.Restaurant, &restaurantID)
		require.NoError(t, err)

		require.NotNil(t, user.RestaurantID())
		assert.True(t, user.RestaurantID().IsEqual(restaurantID))
	})

	t.Run("should create delivery user available for assignment", func(t *testing.T) {
		user, err := account.NewUser(kernel.NewUUID(), "d@x.com", "secret", account.Delivery, nil)
		require.NoError(t, err)

		assert.True(t, user.IsAvailable())
	})

	t.Run("should reject empty email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "", "secret", account.Customer, nil)
		require.ErrorIs(t, err, account.ErrEmailIsRequired)
	})

	t.Run("should reject empty credential", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "a@x.com", "", account.Customer, nil)
		require.ErrorIs(t, err, account.ErrCredentialIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := account.NewUser(id, "a@x.com", "secret", account.Customer, nil)
		require.Error(t, err)
	})

	t.Run("should reject restaurant role without affiliation", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "r@x.com", "secret", account.Restaurant, nil)
		require.Error(t, err)
	})

	t.Run("should reject affiliation on non-restaurant role", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		_, err := account.NewUser(kernel.NewUUID(), "a@x.com", "secret", account.Customer, &restaurantID)
		require.Error(t, err)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "a@x.com", "secret", account.UnknownRole, nil)
		require.Error(t, err)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore delivery availability", func(t *testing.T) {
		user, err := account.RestoreUser(kernel.NewUUID(), "d@x.com", "secret", account.Delivery, nil, false)
		require.NoError(t, err)

		assert.False(t, user.IsAvailable())
	})
}

func TestUser_Availability(t *testing.T) {
	t.Run("delivery user can be marked busy and available", func(t *testing.T) {
		user, err := account.NewUser(kernel.NewUUID(), "d@x.com", "secret", account.Delivery, nil)
		require.NoError(t, err)

		require.NoError(t, user.MarkBusy())
		assert.False(t, user.IsAvailable())

		require.NoError(t, user.MarkAvailable())
		assert.True(t, user.IsAvailable())
	})

	t.Run("non-delivery user cannot change availability", func(t *testing.T) {
		user, err := account.NewUser(kernel.NewUUID(), "a@x.com", "secret", account.Customer, nil)
		require.NoError(t, err)

		require.ErrorIs(t, user.MarkBusy(), account.ErrNotADeliveryUser)
		require.ErrorIs(t, user.MarkAvailable(), account.ErrNotADeliveryUser)
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value user is not constructed", func(t *testing.T) {
		var user account.User
		require.ErrorIs(t, user.Validate(), account.ErrUserIsNotConstructed)
	})

	t.Run("nil user is not constructed", func(t *testing.T) {
		var user *account.User
		require.ErrorIs(t, user.Validate(), account.ErrUserIsNotConstructed)
	})
}

func TestUser_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := account.NewUser(id, "a@x.com", "secret", account.Customer, nil)
	require.NoError(t, err)
	b, err := account.RestoreUser(id, "a@x.com", "secret", account.Customer, nil, false)
	require.NoError(t, err)
	c, err := account.NewUser(kernel.NewUUID(), "c@x.com", "secret", account.Customer, nil)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
