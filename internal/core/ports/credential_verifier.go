package ports

// CredentialVerifier isolates the credential storage format from the identity
// core. Signup runs the submitted password through Hash and stores the result;
// login verifies a submitted password against the stored value with Verify.
//
// The default implementation hashes with bcrypt. A constant-time plaintext
// implementation exists for legacy rows that predate hashing; swapping
// implementations never touches callers.
type CredentialVerifier interface {
	// Hash derives the storable credential from a plain password.
	Hash(password string) (string, error)

	// Verify compares a stored credential with a submitted password.
	// It returns account.ErrInvalidCredentials on mismatch and must not be
	// timing-distinguishable between its failure modes.
	Verify(storedCredential, password string) error
}
