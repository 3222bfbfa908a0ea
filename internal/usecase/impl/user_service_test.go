package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"meetfind/config"
	"meetfind/internal/domain/entity"
	domainerrors "meetfind/internal/domain/errors"
	"meetfind/internal/domain/repository"
	mockRepo "meetfind/internal/mocks/repository"
	mockService "meetfind/internal/mocks/service"
	"meetfind/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{SaltLength: 8}}
	service := NewUserService(cfg, txManager, hasher, tokenService, logger)

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().GenerateSalt(8).Return("abcd1234", nil)
	fx.hasher.EXPECT().Hash("secret99", "abcd1234").Return("CAFEBABE")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "alice", user.Name)
					assert.Equal(t, "CAFEBABE", user.PasswordHash)
					assert.Equal(t, "abcd1234", user.Salt)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Register(ctx, usecase.RegisterInput{Name: "alice", Password: "secret99"})

	require.NoError(t, err)
}

func TestUserService_Register_Duplicate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().GenerateSalt(8).Return("abcd1234", nil)
	fx.hasher.EXPECT().Hash("secret99", "abcd1234").Return("CAFEBABE")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateUser)

			return fn(mockFactory)
		})

	err := fx.service.Register(ctx, usecase.RegisterInput{Name: "alice", Password: "secret99"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_ValidationCodes(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantKind int
		wantCode string
	}{
		{"empty username", "", "secret99", 1, "USERNAME_EMPTY"},
		{"blank username", "   ", "secret99", 1, "USERNAME_EMPTY"},
		{"short username", "al", "secret99", 2, "USERNAME_TOO_SHORT"},
		{"username with space", "al ice", "secret99", 3, "USERNAME_INVALID_CHARS"},
		{"short password", "alice", "12345", 5, "PASSWORD_TOO_SHORT"},
		{"password with space", "alice", "123 456", 6, "PASSWORD_INVALID_CHARS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			err := fx.service.Register(context.Background(), usecase.RegisterInput{
				Name:     tt.username,
				Password: tt.password,
			})

			var formatErr *domainerrors.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantKind, formatErr.Kind())
			assert.Equal(t, tt.wantCode, formatErr.ErrorCode())
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           7,
		Name:         "alice",
		PasswordHash: "CAFEBABE",
		Salt:         "abcd1234",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByName(ctx, "alice").Return(storedUser, nil)

			return fn(mockFactory)
		})
	fx.hasher.EXPECT().Verify("secret99", "abcd1234", "CAFEBABE").Return(true)
	fx.tokenService.EXPECT().Issue("alice").Return("signed-token", nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Name: "alice", Password: "secret99"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		Name:         "alice",
		PasswordHash: "CAFEBABE",
		Salt:         "abcd1234",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByName(ctx, "alice").Return(storedUser, nil)

			return fn(mockFactory)
		})
	fx.hasher.EXPECT().Verify("wrong-pw", "abcd1234", "CAFEBABE").Return(false)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Name: "alice", Password: "wrong-pw"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByName(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	out, err := fx.service.Login(ctx, usecase.LoginInput{Name: "ghost", Password: "secret99"})

	assert.Nil(t, out)
	// Unknown user and wrong password map to the same error.
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_IsValidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().Verify("good-token").Return(true)
	fx.tokenService.EXPECT().Verify("bad-token").Return(false)

	assert.True(t, fx.service.IsValidToken(context.Background(), "good-token"))
	assert.False(t, fx.service.IsValidToken(context.Background(), "bad-token"))
}

func TestUserService_IsTokenOwner(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().VerifyFor("token", "alice").Return(true)
	fx.tokenService.EXPECT().VerifyFor("token", "mallory").Return(false)

	assert.True(t, fx.service.IsTokenOwner(context.Background(), "token", "alice"))
	assert.False(t, fx.service.IsTokenOwner(context.Background(), "token", "mallory"))
}

func TestUserService_UsernameExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().ExistsByName(ctx, "alice").Return(true, nil)

			return fn(mockFactory)
		})

	exists, err := fx.service.UsernameExists(ctx, "alice")

	require.NoError(t, err)
	assert.True(t, exists)
}
