// Package account contains the identity side of the domain model: the User
// aggregate and the Role enum. Credential verification itself lives behind the
// ports.CredentialVerifier interface so the storage format can change without
// touching this package.
package account
