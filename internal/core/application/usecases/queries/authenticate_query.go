// Package queries contains read operations that retrieve system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read through gorm directly instead of going through the
// aggregate repositories, keeping the read path free of write-side locking.
package queries

import (
	"errors"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery represents a login attempt. Unknown email and wrong
// password are indistinguishable to the caller: both produce
// account.ErrInvalidCredentials and nothing else.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a query to verify a user's credentials.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	query := AuthenticateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if email == "" || password == "" {
		return AuthenticateQuery{}, account.ErrInvalidCredentials
	}

	query.email = email
	query.password = password
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the submitted login email.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the submitted plain password.
func (q AuthenticateQuery) Password() string {
	return q.password
}

// AuthenticateQueryResponse is the authenticated user view. Token issuance
// happens in the transport layer; the query only establishes identity.
type AuthenticateQueryResponse struct {
	UserID       kernel.UUID
	Email        string
	Role         account.Role
	RestaurantID *kernel.UUID
}
