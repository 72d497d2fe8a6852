package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/core/domain/services"
	"foodex/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler lists orders that have not reached the
// Delivered state. The result set is narrowed to the actor's visibility
// before it leaves the database.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for active-order
// listings.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the listing, scoped by the actor's role. Results are sorted
// by creation time so dashboards show the oldest work first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	role, restaurantID, err := h.loadActorScope(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			status,
			version
		FROM orders
		WHERE status != ?`

	var rows *sql.Rows
	switch role {
	case account.Admin:
		rows, err = h.db.WithContext(ctx).Raw(
			baseSQL+` ORDER BY created_at`, order.Delivered).Rows()

	case account.Customer:
		rows, err = h.db.WithContext(ctx).Raw(
			baseSQL+` AND customer_id = ? ORDER BY created_at`,
			order.Delivered, query.ActorID().Bytes()).Rows()

	case account.Restaurant:
		if restaurantID == nil {
			return nil, fmt.Errorf("%w: restaurant user without affiliation", services.ErrForbidden)
		}
		rows, err = h.db.WithContext(ctx).Raw(
			baseSQL+` AND restaurant_id = ? ORDER BY created_at`,
			order.Delivered, restaurantID.Bytes()).Rows()

	case account.Delivery:
		rows, err = h.db.WithContext(ctx).Raw(
			baseSQL+` AND courier_id = ? ORDER BY created_at`,
			order.Delivered, query.ActorID().Bytes()).Rows()

	default:
		return nil, fmt.Errorf("%w: unknown role may not list orders", services.ErrForbidden)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUncompletedOrdersQueryResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetUncompletedOrdersQueryHandler) loadActorScope(
	ctx context.Context,
	actorID kernel.UUID,
) (account.Role, *kernel.UUID, error) {
	var (
		role         int
		restaurantID *uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT role, restaurant_id
		FROM users
		WHERE id = ?
	`, actorID.Bytes()).Row()

	err := row.Scan(&role, &restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return account.UnknownRole, nil, errs.NewObjectNotFoundError("actorID", actorID)
	}
	if err != nil {
		return account.UnknownRole, nil, err
	}

	var affiliation *kernel.UUID
	if restaurantID != nil {
		restored, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return account.UnknownRole, nil, idErr
		}
		affiliation = &restored
	}

	return account.Role(role), affiliation, nil
}

func scanOrderRow(rows *sql.Rows) (GetUncompletedOrdersQueryResponse, error) {
	var (
		id           uuid.UUID
		customerID   uuid.UUID
		restaurantID uuid.UUID
		courierID    *uuid.UUID
		status       int
		version      int
	)

	if err := rows.Scan(&id, &customerID, &restaurantID, &courierID, &status, &version); err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}
	restoredCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}
	restoredRestaurantID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return GetUncompletedOrdersQueryResponse{}, err
	}

	response := GetUncompletedOrdersQueryResponse{
		ID:           restoredID,
		CustomerID:   restoredCustomerID,
		RestaurantID: restoredRestaurantID,
		Status:       order.Status(status),
		Version:      version,
	}

	if courierID != nil {
		restored, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return GetUncompletedOrdersQueryResponse{}, idErr
		}
		response.DeliveryPersonID = &restored
	}

	return response, nil
}
