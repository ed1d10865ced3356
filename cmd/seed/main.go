// Command seed populates the database with the initial reference data:
// venue categories and amenities. Running it twice is a no-op.
package main

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"venuebook/config"
	logs "venuebook/internal/infra/log"
	"venuebook/internal/infra/persistence/model"

	gormpostgres "gorm.io/driver/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(cfg)
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), db, logger); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seed completed")
}

func run(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.CustomerProfileModel{},
		&model.ProviderProfileModel{},
		&model.AdminProfileModel{},
		&model.VenueCategoryModel{},
		&model.AmenityModel{},
		&model.VenueModel{},
		&model.VenueImageModel{},
	); err != nil {
		return err
	}

	categories := []model.VenueCategoryModel{
		{Name: "Wedding Hall", Description: "Spacious halls suitable for wedding ceremonies and receptions."},
		{Name: "Conference Room", Description: "Professional spaces equipped for meetings and presentations."},
		{Name: "Outdoor Space", Description: "Gardens, terraces, and open areas for various events."},
	}
	// Names are unique, so reruns insert nothing.
	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories)
	if result.Error != nil {
		return result.Error
	}
	logger.Info("Venue categories seeded", slog.Int64("created", result.RowsAffected))

	amenities := []model.AmenityModel{
		{Name: "Free Wi-Fi"},
		{Name: "Parking Available"},
		{Name: "Projector"},
		{Name: "Air Conditioning"},
		{Name: "Catering Services"},
	}
	result = db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&amenities)
	if result.Error != nil {
		return result.Error
	}
	logger.Info("Amenities seeded", slog.Int64("created", result.RowsAffected))

	return nil
}
