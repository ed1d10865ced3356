package postgres

import (
	"context"

	"gorm.io/gorm"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/infra/persistence/model"
)

// lookupRepository reads the seeded reference data (categories and amenities).
type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *gorm.DB) repository.LookupRepository {
	return &lookupRepository{db: db}
}

// ListCategories returns all venue categories ordered by name.
func (repo *lookupRepository) ListCategories(ctx context.Context) ([]entity.VenueCategory, error) {
	var models []model.VenueCategoryModel
	if err := repo.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list venue categories")
	}

	categories := make([]entity.VenueCategory, 0, len(models))
	for _, categoryM := range models {
		categories = append(categories, entity.VenueCategory{
			ID:          categoryM.ID,
			Name:        categoryM.Name,
			Description: categoryM.Description,
		})
	}

	return categories, nil
}

// ListAmenities returns all amenities ordered by name.
func (repo *lookupRepository) ListAmenities(ctx context.Context) ([]entity.Amenity, error) {
	var models []model.AmenityModel
	if err := repo.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to list amenities")
	}

	amenities := make([]entity.Amenity, 0, len(models))
	for _, amenityM := range models {
		amenities = append(amenities, entity.Amenity{
			ID:      amenityM.ID,
			Name:    amenityM.Name,
			IconURL: amenityM.IconURL,
		})
	}

	return amenities, nil
}
