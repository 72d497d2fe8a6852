// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations. The item set lives in the order_items join table and is
// written once at creation; later updates only touch the lifecycle columns.
package orderrepo

import (
	"time"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the hot lookups: active orders by status and courier dispatch.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID     `gorm:"type:uuid;index"`
	Status       int            `gorm:"index"`
	Version      int
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one row of the order_items join table. Position preserves
// the submitted item ordering across reads.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	itemIDs := aggregate.ItemIDs()
	items := make([]OrderItemDTO, 0, len(itemIDs))
	for position, itemID := range itemIDs {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Position:   position,
			MenuItemID: itemID.Bytes(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CourierID:    courierID,
		Status:       int(aggregate.Status()),
		Version:      aggregate.Version(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, itemIDs,
		order.Status(dto.Status), courierID, dto.Version)
}
