package impl

import (
	"context"
	"log/slog"

	deliverycontext "dhansaathi/internal/delivery/context"
	"dhansaathi/internal/domain/entity"
	domainerrors "dhansaathi/internal/domain/errors"
	"dhansaathi/internal/domain/repository"
	"dhansaathi/internal/domain/service"
	"dhansaathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile of the authenticated user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	// Single read - use the direct repository instance.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// ListUsers returns all registered users.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUserByID retrieves a single user by their ID.
func (srv *profileService) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateProfile applies the provided partial update to the authenticated user's profile.
// Changing the email re-checks uniqueness against everyone except the user themselves.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", userID))

	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find user by ID")
		}

		if input.Email != nil && *input.Email != user.Email {
			taken, err := userRepo.EmailTaken(ctx, *input.Email, userID)
			if err != nil {
				return errors.Wrap(err, "failed to check email uniqueness")
			}
			if taken {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			}

			user.Email = *input.Email
		}
		if input.Username != nil {
			user.Username = *input.Username
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		updatedUser = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updatedUser, nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Debug("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to find user by ID")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	user.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}
