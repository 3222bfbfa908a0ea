// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account, identified by its unique name.
// A user is immutable after registration: there is no update or delete path.
type User struct {
	ID           int64     // Auto-assigned identifier from the store.
	Name         string    // Unique login name, also used as the token subject.
	PasswordHash string    // Uppercase hex digest of the salted password.
	Salt         string    // Per-user random salt the digest was computed with.
	CreatedAt    time.Time // Timestamp of when this account was registered.
}
