// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"venuebook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateVenueInput defines the data required to list a new venue. Required
// fields are checked by the use case after the provider role check, not by
// struct tags, so the authorization answer always comes first.
// PricePerHour binds from a JSON string or number without passing through
// binary floating point.
type CreateVenueInput struct {
	Name         string          `json:"name"`
	CategoryID   uuid.UUID       `json:"category_id"`
	Address      string          `json:"address"`
	Capacity     int             `json:"capacity"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`

	Description string      `json:"description"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
}

// --- Output DTOs ---

// CreateVenueOutput returns the identifier of the newly listed venue.
type CreateVenueOutput struct {
	VenueID uuid.UUID
}

// VenueUsecase defines the interface for venue-related business operations.
type VenueUsecase interface {
	// CreateVenue lists a new venue under the resolved provider identity.
	// Non-provider identities are rejected.
	CreateVenue(ctx context.Context, userID uuid.UUID, input *CreateVenueInput) (*CreateVenueOutput, error)

	// GetVenue loads a venue with its category, amenities and images.
	GetVenue(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error)

	// ListCategories returns the seeded venue categories.
	ListCategories(ctx context.Context) ([]entity.VenueCategory, error)

	// ListAmenities returns the seeded amenities.
	ListAmenities(ctx context.Context) ([]entity.Amenity, error)
}
