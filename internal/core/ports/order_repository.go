package ports

import (
	"context"

	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its item set.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is guarded on
	// the version the aggregate was read at: when the row has moved on, the
	// update affects nothing and an errs.VersionIsInvalidError is returned.
	// This serializes concurrent advance/assign calls per order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier including its item set.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstAcceptedUnassigned retrieves the oldest accepted order without a
	// delivery person. Used by the courier dispatch job.
	// Returns errs.ObjectNotFoundError when no such order exists.
	GetFirstAcceptedUnassigned(ctx context.Context) (*order.Order, error)
}
