package impl

import (
	"context"
	"log/slog"
	"time"

	"meetfind/internal/domain/entity"
	domainerrors "meetfind/internal/domain/errors"
	"meetfind/internal/domain/repository"
	"meetfind/internal/domain/service"
	"meetfind/internal/usecase"

	"github.com/pkg/errors"
)

// meetService implements the MeetUsecase interface.
type meetService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMeetService is the constructor for meetService.
func NewMeetService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.MeetUsecase {
	return &meetService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateMeet validates the input and persists a new meet.
func (srv *meetService) CreateMeet(ctx context.Context, input usecase.CreateMeetInput) (*entity.Meet, error) {
	srv.logger.Info("Creating meet", "name", input.Name, "creator", input.CreatorUsername)

	if kind := service.ValidateMeetData(input.Name, input.Time); kind != service.MeetDataOK {
		return nil, domainerrors.NewMeetFormatError(int(kind), kind.String())
	}

	// Validation already proved the string parses.
	scheduled, err := time.Parse(service.TimeScheduledLayout, input.Time)
	if err != nil {
		return nil, domainerrors.NewMeetFormatError(int(service.MeetWrongTimeFormat), service.MeetWrongTimeFormat.String())
	}

	newMeet := &entity.Meet{
		Name:            input.Name,
		Description:     input.Description,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		TimeScheduled:   scheduled,
		CreatorUsername: input.CreatorUsername,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MeetRepo().Create(ctx, newMeet); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute meet creation transaction", "error", err)

		return nil, err
	}

	if newMeet.ID == 0 {
		return nil, domainerrors.ErrMeetCreationFailed.WrapMessage("store assigned no meet id")
	}
	srv.logger.Debug("Meet created", "meetID", newMeet.ID)

	return newMeet, nil
}

// ListMeets retrieves all meets ordered by id ascending.
func (srv *meetService) ListMeets(ctx context.Context) ([]*entity.Meet, error) {
	var meets []*entity.Meet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MeetRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list meets")
		}
		meets = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list meets", "error", err)

		return nil, err
	}

	return meets, nil
}

// GetMeetByID retrieves a single meet by id.
func (srv *meetService) GetMeetByID(ctx context.Context, id int64) (*entity.Meet, error) {
	var meet *entity.Meet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MeetRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMeetNotFound) {
				return domainerrors.ErrMeetNotFound.WrapMessage("meet lookup failed")
			}

			return errors.Wrap(err, "failed to find meet by id")
		}
		meet = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return meet, nil
}

// DeleteMeet removes a meet and all its participation rows in one transaction.
func (srv *meetService) DeleteMeet(ctx context.Context, id int64) error {
	srv.logger.Info("Deleting meet", "meetID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MeetRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrMeetNotFound) {
				return domainerrors.ErrMeetNotFound.WrapMessage("meet deletion failed")
			}

			return errors.Wrap(err, "failed to delete meet")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to delete meet", "error", err, "meetID", id)

		return err
	}

	return nil
}

// AddParticipant joins a user to a meet. The meet lookup, the pair pre-check
// and the insert run in a single transaction; the composite key on the pair is
// the final arbiter under concurrent joins.
func (srv *meetService) AddParticipant(ctx context.Context, meetID int64, username string) error {
	srv.logger.Info("Adding participant", "meetID", meetID, "name", username)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meetRepo := repoFactory.MeetRepo()

		if _, err := meetRepo.FindByID(ctx, meetID); err != nil {
			if errors.Is(err, repository.ErrMeetNotFound) {
				return domainerrors.ErrMeetNotFound.WrapMessage("participant join failed")
			}

			return errors.Wrap(err, "failed to find meet by id")
		}

		joined, err := meetRepo.HasParticipant(ctx, meetID, username)
		if err != nil {
			return errors.Wrap(err, "failed to check participant")
		}
		if joined {
			return domainerrors.ErrParticipantAlreadyExists.WrapMessage("participant join failed")
		}

		if err := meetRepo.AddParticipant(ctx, meetID, username); err != nil {
			if errors.Is(err, repository.ErrDuplicateParticipant) {
				return domainerrors.ErrParticipantAlreadyExists.WrapMessage("participant join failed")
			}

			return errors.Wrap(err, "failed to add participant")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to add participant", "error", err, "meetID", meetID, "name", username)

		return err
	}

	return nil
}

// RemoveParticipant removes a user from a meet. Only the pair matters: an
// unknown meet and a never-joined user both surface as an absent pair.
func (srv *meetService) RemoveParticipant(ctx context.Context, meetID int64, username string) error {
	srv.logger.Info("Removing participant", "meetID", meetID, "name", username)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MeetRepo().RemoveParticipant(ctx, meetID, username); err != nil {
			if errors.Is(err, repository.ErrParticipantNotFound) {
				return domainerrors.ErrParticipantNotFound.WrapMessage("participant removal failed")
			}

			return errors.Wrap(err, "failed to remove participant")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to remove participant", "error", err, "meetID", meetID, "name", username)

		return err
	}

	return nil
}

// ListParticipants retrieves the usernames participating in a meet. The meet
// must exist; listing an unknown meet is an error, not an empty list.
func (srv *meetService) ListParticipants(ctx context.Context, meetID int64) ([]string, error) {
	var participants []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		meetRepo := repoFactory.MeetRepo()

		if _, err := meetRepo.FindByID(ctx, meetID); err != nil {
			if errors.Is(err, repository.ErrMeetNotFound) {
				return domainerrors.ErrMeetNotFound.WrapMessage("participant listing failed")
			}

			return errors.Wrap(err, "failed to find meet by id")
		}

		found, err := meetRepo.ListParticipants(ctx, meetID)
		if err != nil {
			return errors.Wrap(err, "failed to list participants")
		}
		participants = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return participants, nil
}

// ListUserMeets retrieves the ids of all meets the user participates in.
func (srv *meetService) ListUserMeets(ctx context.Context, username string) ([]int64, error) {
	var ids []int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MeetRepo().ListMeetIDsForUser(ctx, username)
		if err != nil {
			return errors.Wrap(err, "failed to list meet ids for user")
		}
		ids = found

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list user meets", "error", err, "name", username)

		return nil, err
	}

	return ids, nil
}
