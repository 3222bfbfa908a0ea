// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"meetfind/internal/domain/service"
	"meetfind/internal/util"
)

// hashRounds is the number of times the digest is re-hashed. Slows brute
// force against a leaked table; changing it invalidates every stored digest.
const hashRounds = 32

// digestHasher is a concrete implementation of the PasswordHasher interface
// using an iterated, salted SHA-256 digest stored as uppercase hex.
type digestHasher struct{}

// NewDigestHasher is the constructor for digestHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewDigestHasher() service.PasswordHasher {
	return &digestHasher{}
}

// Hash computes the digest of password+salt over hashRounds iterations.
func (h *digestHasher) Hash(password, salt string) string {
	sum := []byte(password + salt)
	for range hashRounds {
		next := sha256.Sum256(sum)
		sum = next[:]
	}

	return strings.ToUpper(hex.EncodeToString(sum))
}

// GenerateSalt produces a random alphanumeric salt of the given length.
func (h *digestHasher) GenerateSalt(length int) (string, error) {
	return util.RandomString(util.AlphanumericAlphabet, length)
}

// Verify recomputes the digest and compares it in constant time.
func (h *digestHasher) Verify(password, salt, expectedDigest string) bool {
	digest := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(digest), []byte(expectedDigest)) == 1
}
