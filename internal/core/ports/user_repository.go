package ports

import (
	"context"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A violated email uniqueness constraint is
	// reported as account.ErrDuplicateEmail.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user (delivery availability).
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by its unique email.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetAvailableCouriers retrieves all delivery users currently available
	// for assignment. Used by the courier dispatch job.
	GetAvailableCouriers(ctx context.Context) ([]*account.User, error)
}
