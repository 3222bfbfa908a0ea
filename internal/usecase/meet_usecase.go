package usecase

import (
	"context"

	"meetfind/internal/domain/entity"
)

// CreateMeetInput defines the data required to create a new meet. Time is the
// raw wire string; it is validated and parsed by the use case so a malformed
// value surfaces as a business validation error.
type CreateMeetInput struct {
	Name            string
	Description     string
	Latitude        float64
	Longitude       float64
	Time            string
	CreatorUsername string
}

// MeetUsecase defines the interface for meet-related business operations.
type MeetUsecase interface {
	// CreateMeet validates the input and persists a new meet.
	CreateMeet(ctx context.Context, input CreateMeetInput) (*entity.Meet, error)

	// ListMeets retrieves all meets ordered by id ascending.
	ListMeets(ctx context.Context) ([]*entity.Meet, error)

	// GetMeetByID retrieves a single meet by id.
	GetMeetByID(ctx context.Context, id int64) (*entity.Meet, error)

	// DeleteMeet removes a meet and all its participation rows.
	DeleteMeet(ctx context.Context, id int64) error

	// AddParticipant joins a user to a meet.
	AddParticipant(ctx context.Context, meetID int64, username string) error

	// RemoveParticipant removes a user from a meet.
	RemoveParticipant(ctx context.Context, meetID int64, username string) error

	// ListParticipants retrieves the usernames participating in a meet.
	ListParticipants(ctx context.Context, meetID int64) ([]string, error)

	// ListUserMeets retrieves the ids of all meets the user participates in.
	ListUserMeets(ctx context.Context, username string) ([]int64, error)
}
