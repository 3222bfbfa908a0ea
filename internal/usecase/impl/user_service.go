// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"meetfind/config"
	"meetfind/internal/domain/entity"
	domainerrors "meetfind/internal/domain/errors"
	"meetfind/internal/domain/repository"
	"meetfind/internal/domain/service"
	"meetfind/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	saltLength   int
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		saltLength:   cfg.Auth.EffectiveSaltLength(),
		logger:       logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) error {
	srv.logger.Info("Starting user registration", "name", input.Name)

	if kind := service.ValidateUserData(input.Name, input.Password); kind != service.UserDataOK {
		return domainerrors.NewUserFormatError(int(kind), kind.String())
	}

	salt, err := srv.hasher.GenerateSalt(srv.saltLength)
	if err != nil {
		srv.logger.Error("Failed to generate salt during registration", "error", err)

		return errors.Wrap(err, "failed to generate salt during registration")
	}
	digest := srv.hasher.Hash(input.Password, salt)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		newUser := &entity.User{
			Name:         input.Name,
			PasswordHash: digest,
			Salt:         salt,
		}

		// The unique index on the name is the final arbiter: a concurrent
		// registration of the same name loses here, not at a pre-check.
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
			}

			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to execute user registration transaction", "error", err, "name", input.Name)

		return err
	}
	srv.logger.Debug("User registered successfully", "name", input.Name)

	return nil
}

// Login orchestrates the user login process and issues an identity token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "name", input.Name)

	if kind := service.ValidateUserData(input.Name, input.Password); kind != service.UserDataOK {
		return nil, domainerrors.NewUserFormatError(int(kind), kind.String())
	}

	var storedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByName(ctx, input.Name)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Indistinguishable from a wrong password on the wire.
				return domainerrors.ErrUserNotFound.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user by name")
		}
		storedUser = user

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", "name", input.Name, "error", err.Error())

		return nil, err
	}

	if !srv.hasher.Verify(input.Password, storedUser.Salt, storedUser.PasswordHash) {
		srv.logger.Warn("Login failed", "name", input.Name)

		return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(storedUser.Name)
	if err != nil {
		srv.logger.Error("Failed to issue token", "error", err, "name", input.Name)

		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.logger.Debug("User logged in successfully", "name", input.Name)

	return &usecase.LoginOutput{Token: token}, nil
}

// IsValidToken reports whether the token is currently acceptable.
func (srv *userService) IsValidToken(_ context.Context, token string) bool {
	return srv.tokenService.Verify(token)
}

// IsTokenOwner reports whether the token is valid and belongs to the given username.
func (srv *userService) IsTokenOwner(_ context.Context, token, username string) bool {
	return srv.tokenService.VerifyFor(token, username)
}

// UsernameExists reports whether a user with the given name is registered.
func (srv *userService) UsernameExists(ctx context.Context, name string) (bool, error) {
	var exists bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().ExistsByName(ctx, name)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		exists = found

		return nil
	})
	if err != nil {
		return false, err
	}

	return exists, nil
}
