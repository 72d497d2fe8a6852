package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler reads one restaurant and its menu items.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu reads.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle returns the restaurant with its menu, or errs.ObjectNotFoundError
// for an unknown restaurant. A restaurant without items yields an empty menu.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) (GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	var (
		id   uuid.UUID
		name string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Row()

	err := row.Scan(&id, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRestaurantMenuQueryResponse{}, errs.NewObjectNotFoundError(
			"restaurantID", query.RestaurantID())
	}
	if err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.RestaurantID())
	if err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	return GetRestaurantMenuQueryResponse{
		ID:    restaurantID,
		Name:  name,
		Items: items,
	}, nil
}

func (h GetRestaurantMenuQueryHandler) loadItems(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]MenuItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY name
	`, restaurantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		var (
			id    uuid.UUID
			item  MenuItemView
			price float64
		)

		if err = rows.Scan(&id, &item.Name, &price); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemID
		item.Price = price
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
