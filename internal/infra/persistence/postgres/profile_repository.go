package postgres

import (
	"context"

	"gorm.io/gorm"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/infra/persistence/model"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateCustomerProfile inserts the customer profile row for an existing user.
func (repo *profileRepository) CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error {
	profileM := &model.CustomerProfileModel{
		UserID:            profile.UserID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		ProfilePictureURL: profile.ProfilePictureURL,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create customer profile")
	}

	return nil
}

// CreateProviderProfile inserts the provider profile row for an existing user.
func (repo *profileRepository) CreateProviderProfile(ctx context.Context, profile *entity.ProviderProfile) error {
	profileM := &model.ProviderProfileModel{
		UserID:                     profile.UserID,
		CompanyName:                profile.CompanyName,
		BusinessRegistrationNumber: profile.BusinessRegistrationNumber,
		TaxID:                      profile.TaxID,
		BusinessAddress:            profile.BusinessAddress,
		IsVerified:                 profile.IsVerified,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return domainerrors.NewStorageError(err, "failed to create provider profile")
	}

	return nil
}
