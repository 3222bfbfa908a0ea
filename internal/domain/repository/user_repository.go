// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"meetfind/internal/domain/entity"
)

// Domain-specific persistence errors. These let the application layer handle
// specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user is not found by name.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when an insert hits the unique index on name.
	ErrDuplicateUser = errors.New("username already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The store assigns ID and CreatedAt.
	// A uniqueness violation on the name is reported as ErrDuplicateUser.
	Create(ctx context.Context, user *entity.User) error

	// FindByName retrieves a single user by their unique name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// ExistsByName reports whether a user with the given name is registered.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
