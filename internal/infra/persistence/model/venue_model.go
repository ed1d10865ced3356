package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VenueCategoryModel mirrors the 'venue_categories' table.
type VenueCategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(80);uniqueIndex:uq_venue_categories_name;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VenueCategoryModel) TableName() string {
	return "venue_categories"
}

// AmenityModel mirrors the 'amenities' table.
type AmenityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(80);uniqueIndex:uq_amenities_name;not null"`
	IconURL   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}

// VenueModel mirrors the 'venues' table. The price column is numeric(10,2) so
// monetary values survive round trips without float drift.
type VenueModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProviderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null"`
	Name         string          `gorm:"type:varchar(120);not null"`
	Description  string          `gorm:"type:text"`
	Address      string          `gorm:"type:varchar(255);not null"`
	Latitude     *float64        `gorm:"type:double precision"`
	Longitude    *float64        `gorm:"type:double precision"`
	Capacity     int             `gorm:"not null"`
	PricePerHour decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status       string          `gorm:"type:varchar(30);not null;default:'UNDER_REVIEW'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Provider  *ProviderProfileModel `gorm:"foreignKey:ProviderID;references:UserID"`
	Category  *VenueCategoryModel   `gorm:"foreignKey:CategoryID"`
	Amenities []AmenityModel        `gorm:"many2many:venue_amenities"`
	Images    []VenueImageModel     `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (VenueModel) TableName() string {
	return "venues"
}

// VenueImageModel mirrors the 'venue_images' table.
type VenueImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL  string    `gorm:"type:varchar(255);not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VenueImageModel) TableName() string {
	return "venue_images"
}
