// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile loads the user and the profile row matching their role.
// A user whose role has no matching profile row violates the registration
// invariant and is reported as not found rather than exposed half-formed.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	if !user.HasProfile() {
		srv.logger.Warn("User has no profile for role", slog.Any("userID", userID), slog.Any("role", user.Role))

		return nil, domainerrors.ErrProfileNotFound.WrapMessage("no profile for user role")
	}

	return user, nil
}
