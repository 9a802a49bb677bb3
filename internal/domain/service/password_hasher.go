// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	// It is deliberately slow and must never be called while holding a shared-state lock.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash.
	// A malformed stored hash verifies as false rather than returning an error.
	Check(password, hash string) bool
}
