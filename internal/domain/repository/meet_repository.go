package repository

import (
	"context"
	"errors"

	"meetfind/internal/domain/entity"
)

var (
	// ErrMeetNotFound is returned when a meet is not found by id.
	ErrMeetNotFound = errors.New("meet not found")

	// ErrDuplicateParticipant is returned when an insert hits the composite
	// key on (meet id, username).
	ErrDuplicateParticipant = errors.New("participant already exists")

	// ErrParticipantNotFound is returned when a (meet id, username) pair is absent.
	ErrParticipantNotFound = errors.New("participant not found")
)

// MeetRepository defines the standard operations for meet and participation
// persistence.
type MeetRepository interface {
	// Create persists a new meet. The store assigns ID and TimeCreated.
	Create(ctx context.Context, meet *entity.Meet) error

	// List retrieves all meets ordered by id ascending.
	List(ctx context.Context) ([]*entity.Meet, error)

	// FindByID retrieves a single meet by id.
	FindByID(ctx context.Context, id int64) (*entity.Meet, error)

	// Delete removes a meet and all its participation rows.
	// Reports ErrMeetNotFound when no meet row was deleted.
	Delete(ctx context.Context, id int64) error

	// AddParticipant inserts the (meet id, username) pair. The pair's
	// uniqueness constraint is the final arbiter: a conflict is reported as
	// ErrDuplicateParticipant.
	AddParticipant(ctx context.Context, meetID int64, username string) error

	// RemoveParticipant deletes the (meet id, username) pair.
	// Reports ErrParticipantNotFound when the pair was absent.
	RemoveParticipant(ctx context.Context, meetID int64, username string) error

	// HasParticipant reports whether the (meet id, username) pair exists.
	HasParticipant(ctx context.Context, meetID int64, username string) (bool, error)

	// ListParticipants retrieves the usernames participating in a meet.
	ListParticipants(ctx context.Context, meetID int64) ([]string, error)

	// ListMeetIDsForUser retrieves the ids of all meets the user participates in.
	ListMeetIDsForUser(ctx context.Context, username string) ([]int64, error)
}
