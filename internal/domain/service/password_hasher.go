// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying derivation (scrypt), keeping the domain pure.
//
// The stored credential is two hex segments joined by a "." separator: a
// random per-signup salt and the derived hash. The same plaintext therefore
// produces a different credential on every Hash call, while Check remains
// deterministic given the stored salt.
type PasswordHasher interface {
	// Hash generates a salted credential from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored credential.
	Check(password, credential string) bool
}
