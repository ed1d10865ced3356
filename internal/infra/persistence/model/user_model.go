// Package model defines the GORM persistence models that mirror the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex:uq_users_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(20);uniqueIndex:uq_users_phone;not null"`
	UserType     string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CustomerProfile *CustomerProfileModel `gorm:"foreignKey:UserID"`
	ProviderProfile *ProviderProfileModel `gorm:"foreignKey:UserID"`
	AdminProfile    *AdminProfileModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customer_profiles' table. UserID references users.id.
type CustomerProfileModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName         string    `gorm:"type:varchar(50);not null"`
	LastName          string    `gorm:"type:varchar(50);not null"`
	ProfilePictureURL string    `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// ProviderProfileModel mirrors the 'provider_profiles' table. UserID references users.id.
type ProviderProfileModel struct {
	UserID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName                string    `gorm:"type:varchar(120);not null"`
	BusinessRegistrationNumber string    `gorm:"type:varchar(60)"`
	TaxID                      string    `gorm:"type:varchar(60)"`
	BusinessAddress            string    `gorm:"type:varchar(255)"`
	IsVerified                 bool      `gorm:"not null;default:false"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderProfileModel) TableName() string {
	return "provider_profiles"
}

// AdminProfileModel mirrors the 'admin_profiles' table. UserID references users.id.
type AdminProfileModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName        string    `gorm:"type:varchar(120);not null"`
	PermissionLevel string    `gorm:"type:varchar(30);not null;default:'SUPPORT_STAFF'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
