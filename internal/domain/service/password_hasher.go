// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying digest construction, keeping the domain pure.
type PasswordHasher interface {
	// Hash computes the digest of a plaintext password under the given salt.
	// Deterministic: the same password and salt always yield the same digest.
	Hash(password, salt string) string

	// GenerateSalt produces a random alphanumeric salt of the given length
	// from a cryptographically secure source.
	GenerateSalt(length int) (string, error)

	// Verify recomputes the digest for the candidate password and compares it
	// with the expected digest in constant time.
	Verify(password, salt, expectedDigest string) bool
}
