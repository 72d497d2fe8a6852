package commands

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
	"foodex/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order. There is no
// status field anywhere in the input: every placed order starts in Pending by
// construction, whatever the transport layer was sent.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	itemIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. actorID identifies
// the authenticated caller (normally the customer itself); itemIDs must be
// non-empty.
func NewPlaceOrderCommand(
	orderID, actorID, customerID, restaurantID kernel.UUID,
	itemIDs []kernel.UUID,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUUID(&cmd.orderID, orderID),
		cmd.setUUID(&cmd.actorID, actorID),
		cmd.setUUID(&cmd.customerID, customerID),
		cmd.setUUID(&cmd.restaurantID, restaurantID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier generated for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the authenticated caller's identifier.
func (c PlaceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// CustomerID returns the customer the order is placed for.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the order is addressed to.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ItemIDs returns the ordered menu item ids.
func (c PlaceOrderCommand) ItemIDs() []kernel.UUID {
	items := make([]kernel.UUID, len(c.itemIDs))
	copy(items, c.itemIDs)
	return items
}

func (c *PlaceOrderCommand) setUUID(field *kernel.UUID, value kernel.UUID) error {
	if err := value.Validate(); err != nil {
		return err
	}
	*field = value
	return nil
}

func (c *PlaceOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return order.ErrItemsAreRequired
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}
