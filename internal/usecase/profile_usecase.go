// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"venuebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business
// operations.
type ProfileUsecase interface {
	// GetProfile loads the user for a resolved identity together with the
	// profile row matching their role.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
