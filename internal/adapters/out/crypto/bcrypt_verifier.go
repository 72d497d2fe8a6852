// Package crypto implements the CredentialVerifier port. BcryptVerifier is
// the production implementation; PlaintextVerifier exists for stores that
// predate hashing and compares in constant time.
package crypto

import (
	"foodex/internal/core/domain/model/account"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when no explicit cost is configured.
const DefaultBcryptCost = bcrypt.DefaultCost

// BcryptVerifier hashes and verifies passwords with bcrypt. bcrypt's compare
// is constant-time over the hash, so wrong passwords are not
// timing-distinguishable from each other.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier with the given cost. Costs outside
// bcrypt's supported range fall back to DefaultBcryptCost.
func NewBcryptVerifier(cost int) BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return BcryptVerifier{cost: cost}
}

// Hash derives the storable bcrypt credential from a plain password.
func (v BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares a stored bcrypt credential with a submitted password.
// Any mismatch or malformed credential surfaces as
// account.ErrInvalidCredentials.
func (v BcryptVerifier) Verify(storedCredential, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(storedCredential), []byte(password)); err != nil {
		return account.ErrInvalidCredentials
	}
	return nil
}
