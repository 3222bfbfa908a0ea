package postgres

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"meetfind/internal/domain/entity"
	"meetfind/internal/domain/repository"
	"meetfind/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps the schema visible across pooled
	// connections while isolating each test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.MeetModel{},
		&model.MeetParticipantModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func newTestMeet(creator string) *entity.Meet {
	return &entity.Meet{
		Name:            "Board games night",
		Description:     "Bring your own snacks",
		Latitude:        52.52,
		Longitude:       13.405,
		TimeScheduled:   time.Date(2026, 9, 12, 18, 30, 0, 0, time.UTC),
		CreatorUsername: creator,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		Name:         "alice",
		PasswordHash: "ABCDEF0123456789",
		Salt:         "somesalt",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "ABCDEF0123456789", found.PasswordHash)
	assert.Equal(t, "somesalt", found.Salt)
}

func TestUserRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "bob", PasswordHash: "AA", Salt: "s1"}))

	err := repo.Create(ctx, &entity.User{Name: "bob", PasswordHash: "BB", Salt: "s2"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_FindByName_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ExistsByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByName(ctx, "carol")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "carol", PasswordHash: "CC", Salt: "s"}))

	exists, err = repo.ExistsByName(ctx, "carol")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMeetRepository_CreateAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))
	assert.NotZero(t, meet.ID)
	assert.False(t, meet.TimeCreated.IsZero())
}

func TestMeetRepository_ListOrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	first := newTestMeet("alice")
	second := newTestMeet("bob")
	second.Name = "Picnic"
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	meets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, meets, 2)
	assert.Less(t, meets[0].ID, meets[1].ID)
	assert.Equal(t, "Board games night", meets[0].Name)
	assert.Equal(t, "Picnic", meets[1].Name)
}

func TestMeetRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))

	found, err := repo.FindByID(ctx, meet.ID)
	require.NoError(t, err)
	assert.Equal(t, meet.Name, found.Name)
	assert.Equal(t, "alice", found.CreatorUsername)

	_, err = repo.FindByID(ctx, meet.ID+1000)
	assert.ErrorIs(t, err, repository.ErrMeetNotFound)
}

func TestMeetRepository_DeleteCascadesParticipants(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))
	require.NoError(t, repo.AddParticipant(ctx, meet.ID, "bob"))
	require.NoError(t, repo.AddParticipant(ctx, meet.ID, "carol"))

	require.NoError(t, repo.Delete(ctx, meet.ID))

	_, err := repo.FindByID(ctx, meet.ID)
	assert.ErrorIs(t, err, repository.ErrMeetNotFound)

	names, err := repo.ListParticipants(ctx, meet.ID)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMeetRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrMeetNotFound)
}

func TestMeetRepository_AddParticipantDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))

	require.NoError(t, repo.AddParticipant(ctx, meet.ID, "bob"))

	err := repo.AddParticipant(ctx, meet.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrDuplicateParticipant)

	// Same user on a different meet is fine.
	other := newTestMeet("carol")
	require.NoError(t, repo.Create(ctx, other))
	assert.NoError(t, repo.AddParticipant(ctx, other.ID, "bob"))
}

func TestMeetRepository_RemoveParticipant(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))
	require.NoError(t, repo.AddParticipant(ctx, meet.ID, "bob"))

	require.NoError(t, repo.RemoveParticipant(ctx, meet.ID, "bob"))

	err := repo.RemoveParticipant(ctx, meet.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrParticipantNotFound)

	// An unknown meet id is just an absent pair.
	err = repo.RemoveParticipant(ctx, 12345, "bob")
	assert.ErrorIs(t, err, repository.ErrParticipantNotFound)
}

func TestMeetRepository_HasParticipant(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	meet := newTestMeet("alice")
	require.NoError(t, repo.Create(ctx, meet))

	has, err := repo.HasParticipant(ctx, meet.ID, "bob")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.AddParticipant(ctx, meet.ID, "bob"))

	has, err = repo.HasParticipant(ctx, meet.ID, "bob")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestMeetRepository_ListMeetIDsForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewMeetRepository(db)
	ctx := context.Background()

	first := newTestMeet("alice")
	second := newTestMeet("alice")
	third := newTestMeet("bob")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	require.NoError(t, repo.AddParticipant(ctx, first.ID, "dora"))
	require.NoError(t, repo.AddParticipant(ctx, third.ID, "dora"))
	require.NoError(t, repo.AddParticipant(ctx, second.ID, "eve"))

	ids, err := repo.ListMeetIDsForUser(ctx, "dora")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{first.ID, third.ID}, ids)

	ids, err = repo.ListMeetIDsForUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	sentinel := repository.ErrDuplicateUser
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Name: "tx-user", PasswordHash: "AA", Salt: "s"}); err != nil {
			return err
		}

		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// The insert must have been rolled back.
	exists, err := NewUserRepository(db).ExistsByName(ctx, "tx-user")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		meet := newTestMeet("alice")
		if err := factory.MeetRepo().Create(ctx, meet); err != nil {
			return err
		}

		return factory.MeetRepo().AddParticipant(ctx, meet.ID, "alice")
	})
	require.NoError(t, err)

	meets, err := NewMeetRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, meets, 1)

	names, err := NewMeetRepository(db).ListParticipants(ctx, meets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, names)
}
