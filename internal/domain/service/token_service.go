package service

import "github.com/golang-jwt/jwt/v5"

// Claims defines the claims carried by identity tokens. The subject is the
// username; the ID is a random nonce so two tokens for the same user issued
// in the same second still differ.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity tokens. Implementations are immutable after
// construction and safe for concurrent use.
type TokenService interface {
	// Issue creates a signed token whose subject is the given username.
	Issue(username string) (string, error)

	// Verify reports whether the token is well formed, correctly signed by
	// this service, from the expected issuer, and not expired. It fails
	// closed: any anomaly yields false, never an error.
	Verify(tokenString string) bool

	// VerifyFor is Verify plus a subject check: the token must belong to the
	// given username.
	VerifyFor(tokenString, username string) bool
}
