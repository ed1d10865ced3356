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

// venueService implements the VenueUsecase interface.
type venueService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	venueRepo  repository.VenueRepository
	lookupRepo repository.LookupRepository
	logger     *slog.Logger
}

// NewVenueService is the constructor for venueService.
func NewVenueService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	venueRepo repository.VenueRepository,
	lookupRepo repository.LookupRepository,
	logger *slog.Logger,
) usecase.VenueUsecase {
	return &venueService{
		txManager:  txManager,
		userRepo:   userRepo,
		venueRepo:  venueRepo,
		lookupRepo: lookupRepo,
		logger:     logger,
	}
}

// CreateVenue lists a new venue for the resolved provider. The venue is
// always created in UNDER_REVIEW status; category existence is enforced by
// the storage layer's foreign key.
func (srv *venueService) CreateVenue(ctx context.Context, userID uuid.UUID, input *usecase.CreateVenueInput) (*usecase.CreateVenueOutput, error) {
	srv.logger.Info("Creating venue", slog.Any("userID", userID), slog.String("name", input.Name))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrProvidersOnly.WrapMessage("identity does not resolve to a provider")
		}

		return nil, errors.Wrap(err, "failed to load user for venue creation")
	}

	if user.Role != entity.RoleProvider {
		srv.logger.Warn("Venue creation rejected for non-provider", slog.Any("userID", userID), slog.Any("role", user.Role))

		return nil, domainerrors.ErrProvidersOnly.WrapMessage("providers only")
	}

	if err := validateCreateVenueInput(input); err != nil {
		return nil, err
	}

	amenities := make([]entity.Amenity, 0, len(input.AmenityIDs))
	for _, id := range input.AmenityIDs {
		amenities = append(amenities, entity.Amenity{ID: id})
	}

	newVenue := &entity.Venue{
		ProviderID:   user.ID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Capacity:     input.Capacity,
		PricePerHour: input.PricePerHour,
		Status:       entity.VenueStatusUnderReview,
		Amenities:    amenities,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VenueRepo().Create(ctx, newVenue); err != nil {
			return errors.Wrap(err, "failed to create venue")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Venue creation transaction failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Venue created", slog.Any("venueID", newVenue.ID))

	return &usecase.CreateVenueOutput{VenueID: newVenue.ID}, nil
}

func validateCreateVenueInput(input *usecase.CreateVenueInput) error {
	if input.Name == "" || input.Address == "" {
		return domainerrors.ErrValidation.WrapMessage("name and address are required")
	}
	if input.CategoryID == uuid.Nil {
		return domainerrors.ErrValidation.WrapMessage("category_id is required")
	}
	if input.Capacity <= 0 {
		return domainerrors.ErrValidation.WrapMessage("capacity must be a positive number")
	}
	if input.PricePerHour.IsZero() || input.PricePerHour.IsNegative() {
		return domainerrors.ErrValidation.WrapMessage("price_per_hour must be a positive amount")
	}

	return nil
}

// GetVenue loads a venue with its category, amenities and images.
func (srv *venueService) GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error) {
	venue, err := srv.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound.WrapMessage("venue not found")
		}

		return nil, errors.Wrap(err, "failed to load venue")
	}

	return venue, nil
}

// ListCategories returns the seeded venue categories.
func (srv *venueService) ListCategories(ctx context.Context) ([]entity.VenueCategory, error) {
	categories, err := srv.lookupRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list venue categories")
	}

	return categories, nil
}

// ListAmenities returns the seeded amenities.
func (srv *venueService) ListAmenities(ctx context.Context) ([]entity.Amenity, error) {
	amenities, err := srv.lookupRepo.ListAmenities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}
