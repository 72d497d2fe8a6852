package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/core/domain/services"
	"foodex/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order, gated by the access policy.
// The actor and order are restored as aggregates so the policy evaluates the
// same relations the command side enforces.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle loads the order and evaluates the read relation for the actor.
// Returns errs.ObjectNotFoundError for unknown orders and
// services.ErrForbidden when the actor has no relation to the order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor, err := h.loadActor(ctx, query.ActorID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	target, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = h.policy.Authorize(actor, target, services.ReadOrder); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:               target.ID(),
		CustomerID:       target.CustomerID(),
		RestaurantID:     target.RestaurantID(),
		ItemIDs:          target.ItemIDs(),
		Status:           target.Status(),
		DeliveryPersonID: target.DeliveryPerson(),
		Version:          target.Version(),
	}, nil
}

func (h GetOrderQueryHandler) loadActor(ctx context.Context, actorID kernel.UUID) (*account.User, error) {
	var (
		id           uuid.UUID
		email        string
		credential   string
		role         int
		restaurantID *uuid.UUID
		available    bool
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			credential,
			role,
			restaurant_id,
			available
		FROM users
		WHERE id = ?
	`, actorID.Bytes()).Row()

	err := row.Scan(&id, &email, &credential, &role, &restaurantID, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("actorID", actorID)
	}
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	var affiliation *kernel.UUID
	if restaurantID != nil {
		restored, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		affiliation = &restored
	}

	return account.RestoreUser(userID, email, credential, account.Role(role), affiliation, available)
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	var (
		id           uuid.UUID
		customerID   uuid.UUID
		restaurantID uuid.UUID
		courierID    *uuid.UUID
		status       int
		version      int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			status,
			version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &customerID, &restaurantID, &courierID, &status, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, err
	}

	itemIDs, err := h.loadItemIDs(ctx, orderID)
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	restoredCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	restoredRestaurantID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if courierID != nil {
		restored, idErr := kernel.UUIDFromBytes(courierID[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &restored
	}

	return order.RestoreOrder(
		restoredID, restoredCustomerID, restoredRestaurantID,
		itemIDs, order.Status(status), deliveryPersonID, version)
}

func (h GetOrderQueryHandler) loadItemIDs(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemIDs := make([]kernel.UUID, 0)
	for rows.Next() {
		var itemID uuid.UUID
		if err = rows.Scan(&itemID); err != nil {
			return nil, err
		}

		restored, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemIDs, nil
}
