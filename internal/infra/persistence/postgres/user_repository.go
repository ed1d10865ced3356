// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the
// role-specific profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("ProviderProfile").
		Preload("AdminProfile").
		First(&userM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the
// role-specific profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("ProviderProfile").
		Preload("AdminProfile").
		First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists the user row only. Profile rows are written by the profile
// repository inside the same transaction, so associations are omitted here.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, "uq_users_phone") {
				return domainerrors.ErrPhoneTaken
			}

			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewStorageError(err, "failed to create user")
	}

	// Propagate the database-generated identity and timestamps back.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// UpdateLastLogin stamps the last successful authentication time.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("last_login", at)
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		Role:         entity.Role(data.UserType),
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
	}

	if data.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			UserID:            data.CustomerProfile.UserID,
			FirstName:         data.CustomerProfile.FirstName,
			LastName:          data.CustomerProfile.LastName,
			ProfilePictureURL: data.CustomerProfile.ProfilePictureURL,
		}
	}
	if data.ProviderProfile != nil {
		user.ProviderProfile = &entity.ProviderProfile{
			UserID:                     data.ProviderProfile.UserID,
			CompanyName:                data.ProviderProfile.CompanyName,
			BusinessRegistrationNumber: data.ProviderProfile.BusinessRegistrationNumber,
			TaxID:                      data.ProviderProfile.TaxID,
			BusinessAddress:            data.ProviderProfile.BusinessAddress,
			IsVerified:                 data.ProviderProfile.IsVerified,
		}
	}
	if data.AdminProfile != nil {
		user.AdminProfile = &entity.AdminProfile{
			UserID:          data.AdminProfile.UserID,
			FullName:        data.AdminProfile.FullName,
			PermissionLevel: data.AdminProfile.PermissionLevel,
		}
	}

	return user
}

// fromUserDomain maps a pure domain entity to the GORM persistence model.
func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PhoneNumber:  data.PhoneNumber,
		UserType:     data.Role.String(),
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
	}
}
