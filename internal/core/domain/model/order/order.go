package order

import (
	"errors"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsAreRequired is returned when placing an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrAlreadyAssigned is returned when assigning a delivery person to an
	// order that already has one. Assignment happens exactly once.
	ErrAlreadyAssigned = errors.New("delivery person already assigned")
)

// Order is the aggregate root of the order lifecycle. It connects the three
// actors of the system through a single record: the customer who placed it,
// the restaurant preparing it, and the delivery person carrying it.
//
// Invariants:
//   - customer and restaurant references are set at creation and never change
//   - the item set is non-empty
//   - status only moves along the fixed forward sequence (see Status)
//   - the delivery person is set exactly once
//   - every mutation increments the version used for optimistic locking
//
// Every order starts in Pending regardless of what the caller supplied; the
// constructors take no status parameter, which makes the "status forced to
// PENDING" rule structural rather than a runtime check.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	restaurantID     kernel.UUID
	itemIDs          []kernel.UUID
	status           Status
	deliveryPersonID *kernel.UUID
	version          int

	isConstructed bool
}

// NewOrder creates a freshly placed order in Pending status with version 1.
// itemIDs must be non-empty and every id valid. Whether the items actually
// belong to the given restaurant is the caller's concern.
func NewOrder(id, customerID, restaurantID kernel.UUID, itemIDs []kernel.UUID) (*Order, error) {
	order := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItemIDs(itemIDs),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its full state,
// including the version the row was read at.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	itemIDs []kernel.UUID,
	status Status,
	deliveryPersonID *kernel.UUID,
	version int,
) (*Order, error) {
	order, err := NewOrder(id, customerID, restaurantID, itemIDs)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if deliveryPersonID != nil {
		if err = deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("order")
	}

	order.status = status
	order.deliveryPersonID = deliveryPersonID
	order.version = version
	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the preparing restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// ItemIDs returns a copy of the ordered menu item ids.
func (o *Order) ItemIDs() []kernel.UUID {
	items := make([]kernel.UUID, len(o.itemIDs))
	copy(items, o.itemIDs)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the assigned delivery person's id, or nil while the
// order is unassigned.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// IsAssigned reports whether a delivery person has been assigned.
func (o *Order) IsAssigned() bool {
	return o.deliveryPersonID != nil
}

// Version returns the optimistic-lock counter. Repositories persist updates
// guarded on the version the aggregate was read at, so two concurrent
// mutations of the same order can never both succeed.
func (o *Order) Version() int {
	return o.version
}

// Advance moves the status to its immediate successor in the fixed sequence.
// Returns ErrInvalidTransition once the order is Delivered.
func (o *Order) Advance() error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.version++
	return nil
}

// AssignDeliveryPerson sets the delivery person exactly once.
// Returns ErrAlreadyAssigned on any later attempt, including re-assignment of
// the same person.
func (o *Order) AssignDeliveryPerson(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}
	if o.deliveryPersonID != nil {
		return ErrAlreadyAssigned
	}

	o.deliveryPersonID = &deliveryPersonID
	o.version++
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemsAreRequired
	}
	for _, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
	}

	o.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(o.itemIDs, itemIDs)
	return nil
}
