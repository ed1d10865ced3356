// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"venuebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVenueNotFound is returned when a venue is not found.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepository defines the standard operations for venue persistence.
type VenueRepository interface {
	// Create persists a new venue row together with its amenity
	// associations.
	Create(ctx context.Context, venue *entity.Venue) error

	// FindByID retrieves a venue with its category, amenities and images
	// loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
}

// LookupRepository reads the seeded reference data.
type LookupRepository interface {
	ListCategories(ctx context.Context) ([]entity.VenueCategory, error)
	ListAmenities(ctx context.Context) ([]entity.Amenity, error)
}
