package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"venuebook/internal/domain/entity"
	domainerrors "venuebook/internal/domain/errors"
	"venuebook/internal/domain/repository"
	"venuebook/internal/infra/persistence/model"
)

// venueRepository implements the repository.VenueRepository interface using GORM.
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository is the constructor for venueRepository.
func NewVenueRepository(db *gorm.DB) repository.VenueRepository {
	return &venueRepository{db: db}
}

// Create persists a new venue row together with its amenity join rows.
// Amenity rows themselves are seeded reference data, so only the join table
// is written for them. Category and amenity references are validated by the
// database's foreign keys.
func (repo *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	venueM := fromVenueDomain(venue)

	err := repo.db.WithContext(ctx).
		Omit("Amenities.*").
		Create(venueM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatesConstraint(err, "venue_amenities") {
				return domainerrors.ErrValidation.WrapMessage("unknown amenity reference")
			}

			return domainerrors.ErrValidation.WrapMessage("unknown category reference")
		}

		return domainerrors.NewStorageError(err, "failed to create venue")
	}

	venue.ID = venueM.ID
	venue.Status = venueM.Status
	venue.CreatedAt = venueM.CreatedAt

	return nil
}

// FindByID retrieves a venue with its category, amenities and images loaded.
func (repo *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venueM model.VenueModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Amenities").
		Preload("Images").
		First(&venueM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find venue by id")
	}

	return toVenueDomain(&venueM), nil
}

// toVenueDomain maps the persistence model back to a pure domain entity.
func toVenueDomain(data *model.VenueModel) *entity.Venue {
	venue := &entity.Venue{
		ID:           data.ID,
		ProviderID:   data.ProviderID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Capacity:     data.Capacity,
		PricePerHour: data.PricePerHour,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
	}

	if data.Category != nil {
		venue.Category = &entity.VenueCategory{
			ID:          data.Category.ID,
			Name:        data.Category.Name,
			Description: data.Category.Description,
		}
	}
	for _, amenityM := range data.Amenities {
		venue.Amenities = append(venue.Amenities, entity.Amenity{
			ID:      amenityM.ID,
			Name:    amenityM.Name,
			IconURL: amenityM.IconURL,
		})
	}
	for _, imageM := range data.Images {
		venue.Images = append(venue.Images, entity.VenueImage{
			ID:        imageM.ID,
			VenueID:   imageM.VenueID,
			ImageURL:  imageM.ImageURL,
			IsPrimary: imageM.IsPrimary,
		})
	}

	return venue
}

// fromVenueDomain maps a pure domain entity to the GORM persistence model.
func fromVenueDomain(data *entity.Venue) *model.VenueModel {
	venueM := &model.VenueModel{
		ID:           data.ID,
		ProviderID:   data.ProviderID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Capacity:     data.Capacity,
		PricePerHour: data.PricePerHour,
		Status:       data.Status,
	}

	for _, amenity := range data.Amenities {
		venueM.Amenities = append(venueM.Amenities, model.AmenityModel{ID: amenity.ID})
	}

	return venueM
}
