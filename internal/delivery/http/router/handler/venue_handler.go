package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"venuebook/internal/delivery/http/middleware"
	"venuebook/internal/delivery/http/response"
	"venuebook/internal/domain/entity"
	"venuebook/internal/usecase"
)

// VenueHandler holds dependencies for venue-related handlers.
type VenueHandler struct {
	venueUC usecase.VenueUsecase
	logger  *slog.Logger
}

// NewVenueHandler is the constructor for VenueHandler, injected by Fx.
func NewVenueHandler(venueUC usecase.VenueUsecase, logger *slog.Logger) *VenueHandler {
	return &VenueHandler{
		venueUC: venueUC,
		logger:  logger,
	}
}

// CreateVenue handles the venue listing request. Only providers may call it.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	// No field validation here. The use case checks the stored provider
	// role first so a non-provider is refused before input shape matters.
	var input usecase.CreateVenueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue input")
	}

	output, err := h.venueUC.CreateVenue(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"venue_id": output.VenueID,
	}, "Venue submitted for review")
}

// GetVenue returns one venue with its category, amenities and images.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue id")
	}

	venue, err := h.venueUC.GetVenue(c.Request().Context(), venueID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVenueView(venue), "Venue retrieved successfully")
}

// ListCategories returns the seeded venue categories.
func (h *VenueHandler) ListCategories(c echo.Context) error {
	categories, err := h.venueUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"categories": categories}, "")
}

// ListAmenities returns the seeded amenities.
func (h *VenueHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.venueUC.ListAmenities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"amenities": amenities}, "")
}

// venueView is the wire form of a venue. The price renders as a decimal
// string, e.g. "150.00" stays "150.00".
type venueView struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Capacity     int       `json:"capacity"`
	PricePerHour string    `json:"price_per_hour"`
	Status       string    `json:"status"`
	Category     any       `json:"category"`
	Amenities    []any     `json:"amenities"`
	Images       []any     `json:"images"`
}

func toVenueView(venue *entity.Venue) venueView {
	view := venueView{
		ID:           venue.ID,
		ProviderID:   venue.ProviderID,
		Name:         venue.Name,
		Description:  venue.Description,
		Address:      venue.Address,
		Latitude:     venue.Latitude,
		Longitude:    venue.Longitude,
		Capacity:     venue.Capacity,
		PricePerHour: venue.PricePerHour.StringFixed(2),
		Status:       venue.Status,
		Amenities:    make([]any, 0, len(venue.Amenities)),
		Images:       make([]any, 0, len(venue.Images)),
	}

	if venue.Category != nil {
		view.Category = map[string]any{
			"id":   venue.Category.ID,
			"name": venue.Category.Name,
		}
	}
	for _, amenity := range venue.Amenities {
		view.Amenities = append(view.Amenities, map[string]any{
			"id":       amenity.ID,
			"name":     amenity.Name,
			"icon_url": amenity.IconURL,
		})
	}
	for _, image := range venue.Images {
		view.Images = append(view.Images, map[string]any{
			"id":         image.ID,
			"image_url":  image.ImageURL,
			"is_primary": image.IsPrimary,
		})
	}

	return view
}
