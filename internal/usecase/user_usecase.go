// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Name     string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued identity token after a successful login.
type LoginOutput struct {
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user account from raw credential input.
	Register(ctx context.Context, input RegisterInput) error

	// Login checks the credentials and issues an identity token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// IsValidToken reports whether the token is currently acceptable.
	// It fails closed: any anomaly yields false.
	IsValidToken(ctx context.Context, token string) bool

	// IsTokenOwner reports whether the token is valid and belongs to the
	// given username.
	IsTokenOwner(ctx context.Context, token, username string) bool

	// UsernameExists reports whether a user with the given name is registered.
	UsernameExists(ctx context.Context, name string) (bool, error)
}
