// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity anchor of the system. It carries the credentials and
// the role tag; the role-specific attributes live in exactly one of the
// profile pointers below, selected by Role.
type User struct {
	ID           uuid.UUID // Global unique identifier for the account.
	Email        string    // Login identifier, globally unique.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never stored.
	PhoneNumber  string    // Contact number, globally unique.
	Role         Role      // Discriminator selecting which profile variant this user owns.
	IsActive     bool      // Deactivated accounts keep their rows but cannot act.

	CustomerProfile *CustomerProfile // Non-nil iff Role == RoleCustomer.
	ProviderProfile *ProviderProfile // Non-nil iff Role == RoleProvider.
	AdminProfile    *AdminProfile    // Non-nil iff Role == RoleAdmin.

	LastLogin *time.Time // Stamped on each successful login; nil until the first one.
	CreatedAt time.Time
}

// HasProfile reports whether the role-matching profile is attached.
// Registration guarantees this; a false return is a data integrity defect.
func (u *User) HasProfile() bool {
	switch u.Role {
	case RoleCustomer:
		return u.CustomerProfile != nil
	case RoleProvider:
		return u.ProviderProfile != nil
	case RoleAdmin:
		return u.AdminProfile != nil
	default:
		return false
	}
}

// CustomerProfile holds data specific to the CUSTOMER role.
type CustomerProfile struct {
	UserID            uuid.UUID // Primary key and FK to users.id; there is no surrogate id.
	FirstName         string
	LastName          string
	ProfilePictureURL string // Optional.
}

// ProviderProfile holds data specific to the PROVIDER role.
type ProviderProfile struct {
	UserID                     uuid.UUID
	CompanyName                string
	BusinessRegistrationNumber string // Optional.
	TaxID                      string // Optional.
	BusinessAddress            string // Optional.
	IsVerified                 bool   // Flipped by an admin action, defaults to false.
}

// AdminProfile holds data specific to the ADMIN role. Registration never
// creates it; admin accounts are provisioned out of band.
type AdminProfile struct {
	UserID          uuid.UUID
	FullName        string
	PermissionLevel string // Defaults to "SUPPORT_STAFF".
}
