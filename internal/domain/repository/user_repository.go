// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the
	// role-matching profile attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address
	// (case-sensitive exact match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user row. Profiles are written separately by
	// ProfileRepository within the same transaction.
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the last successful authentication time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ProfileRepository persists the role-specific profile rows. Exactly one
// profile row per user; the registration workflow enforces the pairing.
type ProfileRepository interface {
	CreateCustomerProfile(ctx context.Context, profile *entity.CustomerProfile) error
	CreateProviderProfile(ctx context.Context, profile *entity.ProviderProfile) error
}
