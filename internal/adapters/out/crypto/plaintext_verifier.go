package crypto

import (
	"crypto/sha256"
	"crypto/subtle"

	"foodex/internal/core/domain/model/account"
)

// PlaintextVerifier stores passwords as-is and compares them in constant
// time. It exists for development setups and stores that predate hashing;
// production wiring uses BcryptVerifier.
type PlaintextVerifier struct{}

// NewPlaintextVerifier creates a new PlaintextVerifier instance.
func NewPlaintextVerifier() PlaintextVerifier {
	return PlaintextVerifier{}
}

// Hash returns the password unchanged.
func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares the stored value with the submitted password in constant
// time. subtle.ConstantTimeCompare short-circuits on unequal lengths, so both
// inputs are reduced to fixed-width digests before comparison.
func (PlaintextVerifier) Verify(storedCredential, password string) error {
	stored := sha256.Sum256([]byte(storedCredential))
	submitted := sha256.Sum256([]byte(password))

	if subtle.ConstantTimeCompare(stored[:], submitted[:]) != 1 {
		return account.ErrInvalidCredentials
	}
	return nil
}
