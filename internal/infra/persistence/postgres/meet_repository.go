package postgres

import (
	"context"

	"meetfind/internal/domain/entity"
	domainerrors "meetfind/internal/domain/errors"
	"meetfind/internal/domain/repository"
	"meetfind/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// meetRepository implements the repository.MeetRepository interface using GORM.
type meetRepository struct {
	db *gorm.DB
}

// NewMeetRepository is the constructor for meetRepository.
func NewMeetRepository(db *gorm.DB) repository.MeetRepository {
	return &meetRepository{db: db}
}

// Create persists a new meet row and reports the generated id and creation
// time back to the entity.
func (repo *meetRepository) Create(ctx context.Context, meet *entity.Meet) error {
	meetM := fromMeetDomain(meet)

	if err := repo.db.WithContext(ctx).Create(meetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create meet")
	}

	meet.ID = meetM.ID
	meet.TimeCreated = meetM.TimeCreated

	return nil
}

// List retrieves all meets ordered by id ascending.
func (repo *meetRepository) List(ctx context.Context) ([]*entity.Meet, error) {
	var meetMs []model.MeetModel
	err := repo.db.WithContext(ctx).
		Order("id asc").
		Find(&meetMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meets")
	}

	meets := make([]*entity.Meet, 0, len(meetMs))
	for i := range meetMs {
		meets = append(meets, toMeetDomain(&meetMs[i]))
	}

	return meets, nil
}

// FindByID retrieves a single meet by id.
func (repo *meetRepository) FindByID(ctx context.Context, id int64) (*entity.Meet, error) {
	var meetM model.MeetModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMeetNotFound
		}

		return nil, errors.Wrap(err, "failed to find meet by id")
	}

	return toMeetDomain(&meetM), nil
}

// Delete removes the meet row and all its participation rows.
func (repo *meetRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MeetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMeetNotFound
	}

	err := repo.db.WithContext(ctx).
		Where("meet_id = ?", id).
		Delete(&model.MeetParticipantModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete meet participants")
	}

	return nil
}

// AddParticipant inserts the (meet id, username) pair. The composite primary
// key is the final arbiter for duplicates.
func (repo *meetRepository) AddParticipant(ctx context.Context, meetID int64, username string) error {
	pair := &model.MeetParticipantModel{MeetID: meetID, Username: username}

	if err := repo.db.WithContext(ctx).Create(pair).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateParticipant
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add participant")
	}

	return nil
}

// RemoveParticipant deletes the (meet id, username) pair.
func (repo *meetRepository) RemoveParticipant(ctx context.Context, meetID int64, username string) error {
	result := repo.db.WithContext(ctx).
		Where("meet_id = ? AND username = ?", meetID, username).
		Delete(&model.MeetParticipantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove participant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrParticipantNotFound
	}

	return nil
}

// HasParticipant reports whether the (meet id, username) pair exists.
func (repo *meetRepository) HasParticipant(ctx context.Context, meetID int64, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MeetParticipantModel{}).
		Where("meet_id = ? AND username = ?", meetID, username).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count participants")
	}

	return count > 0, nil
}

// ListParticipants retrieves the usernames participating in a meet.
func (repo *meetRepository) ListParticipants(ctx context.Context, meetID int64) ([]string, error) {
	var usernames []string
	err := repo.db.WithContext(ctx).
		Model(&model.MeetParticipantModel{}).
		Where("meet_id = ?", meetID).
		Pluck("username", &usernames).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	return usernames, nil
}

// ListMeetIDsForUser retrieves the ids of all meets the user participates in.
func (repo *meetRepository) ListMeetIDsForUser(ctx context.Context, username string) ([]int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.MeetParticipantModel{}).
		Where("username = ?", username).
		Pluck("meet_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meet ids for user")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toMeetDomain converts a GORM MeetModel to a domain Meet entity.
func toMeetDomain(data *model.MeetModel) *entity.Meet {
	if data == nil {
		return nil
	}

	return &entity.Meet{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		TimeScheduled:   data.TimeScheduled,
		CreatorUsername: data.Creator,
		TimeCreated:     data.TimeCreated,
	}
}

// fromMeetDomain converts a domain Meet entity to a GORM MeetModel for persistence.
func fromMeetDomain(data *entity.Meet) *model.MeetModel {
	if data == nil {
		return nil
	}

	return &model.MeetModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		TimeScheduled: data.TimeScheduled,
		Creator:       data.CreatorUsername,
	}
}
