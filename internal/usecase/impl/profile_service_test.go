package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
)

func createTestProfileService(t *testing.T) (*mockUserRepository, *profileService) {
	t.Helper()

	userRepo := &mockUserRepository{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(userRepo, logger).(*profileService)

	return userRepo, service
}

func TestProfileService_GetProfile_Customer(t *testing.T) {
	userRepo, service := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:   userID,
		Role: entity.RoleCustomer,
		CustomerProfile: &entity.CustomerProfile{
			UserID:    userID,
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
	}
	userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, got.CustomerProfile)
	assert.Equal(t, "Ada", got.CustomerProfile.FirstName)
	assert.Nil(t, got.ProviderProfile)
}

func TestProfileService_GetProfile_Provider(t *testing.T) {
	userRepo, service := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:   userID,
		Role: entity.RoleProvider,
		ProviderProfile: &entity.ProviderProfile{
			UserID:      userID,
			CompanyName: "Grand Events Ltd",
		},
	}
	userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, got.ProviderProfile)
	assert.Equal(t, "Grand Events Ltd", got.ProviderProfile.CompanyName)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	userRepo, service := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_GetProfile_MissingProfileRow(t *testing.T) {
	userRepo, service := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Role says customer but no profile row exists; the account is reported
	// as not found rather than returned half-formed.
	user := &entity.User{ID: userID, Role: entity.RoleCustomer}
	userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
