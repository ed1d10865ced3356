// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VenueStatusUnderReview is the lifecycle status assigned to every newly
// listed venue. The status field is a free-form string; no transition table
// is enforced here.
const VenueStatusUnderReview = "UNDER_REVIEW"

// Venue is a bookable listing owned by exactly one provider and classified
// by exactly one category.
type Venue struct {
	ID         uuid.UUID
	ProviderID uuid.UUID // FK to the owning ProviderProfile (its user id).
	CategoryID uuid.UUID // FK to the classifying VenueCategory.

	Name        string
	Description string // Optional.
	Address     string
	Latitude    *float64 // Optional coordinates.
	Longitude   *float64
	Capacity    int
	// PricePerHour is a fixed-point decimal. Monetary values must never pass
	// through binary floating point.
	PricePerHour decimal.Decimal
	Status       string

	Category  *VenueCategory // Populated when loaded with associations.
	Amenities []Amenity
	Images    []VenueImage

	CreatedAt time.Time
}

// VenueCategory is read-only reference data seeded out of band.
type VenueCategory struct {
	ID          uuid.UUID
	Name        string // Globally unique.
	Description string
}

// Amenity is read-only reference data attached to venues many-to-many.
type Amenity struct {
	ID      uuid.UUID
	Name    string // Globally unique.
	IconURL string
}

// VenueImage is owned exclusively by one Venue; deleting the venue deletes
// its images.
type VenueImage struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	ImageURL  string
	IsPrimary bool
}
