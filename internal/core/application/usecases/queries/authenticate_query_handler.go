package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodex/internal/core/domain/model/account"
	"foodex/internal/core/domain/model/kernel"
	"foodex/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateQueryHandler verifies login credentials against the users table.
// A login for an unknown email still runs one full credential verification
// against a decoy credential, so the unknown-email and wrong-password paths
// take the same time.
type AuthenticateQueryHandler struct {
	db       *gorm.DB
	verifier ports.CredentialVerifier
	decoy    string
}

// NewAuthenticateQueryHandler creates a handler for login verification.
// The decoy credential is derived once at construction.
func NewAuthenticateQueryHandler(db *gorm.DB, verifier ports.CredentialVerifier) (AuthenticateQueryHandler, error) {
	decoy, err := verifier.Hash("decoy-credential-for-unknown-emails")
	if err != nil {
		return AuthenticateQueryHandler{}, err
	}

	return AuthenticateQueryHandler{
		db:       db,
		verifier: verifier,
		decoy:    decoy,
	}, nil
}

// Handle verifies the submitted credentials and returns the user view.
// Every failure mode surfaces as account.ErrInvalidCredentials.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var (
		id           uuid.UUID
		email        string
		credential   string
		role         int
		restaurantID *uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			credential,
			role,
			restaurant_id
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(&id, &email, &credential, &role, &restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		// Burn a verification anyway so unknown emails are not faster.
		_ = h.verifier.Verify(h.decoy, query.Password())
		return AuthenticateQueryResponse{}, account.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if err = h.verifier.Verify(credential, query.Password()); err != nil {
		return AuthenticateQueryResponse{}, account.ErrInvalidCredentials
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	response := AuthenticateQueryResponse{
		UserID: userID,
		Email:  email,
		Role:   account.Role(role),
	}

	if restaurantID != nil {
		affiliation, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return AuthenticateQueryResponse{}, idErr
		}
		response.RestaurantID = &affiliation
	}

	return response, nil
}
