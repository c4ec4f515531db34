package database

import (
	"fmt"

	"smartlinks/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate runs automatic migrations for all domain models.
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database auto-migration")

	// Migration order matters because of the clicks -> links foreign key.
	models := []interface{}{
		&domain.Link{},
		&domain.Click{},
	}

	for i, model := range models {
		modelName := fmt.Sprintf("%T", model)
		log.Info("migrating model",
			zap.String("model", modelName),
			zap.Int("step", i+1),
			zap.Int("total", len(models)))

		if err := db.AutoMigrate(model); err != nil {
			log.Error("failed to migrate model",
				zap.String("model", modelName),
				zap.Error(err))
			return fmt.Errorf("failed to migrate model %s: %w", modelName, err)
		}
	}

	log.Info("database auto-migration completed successfully", zap.Int("migrated_models", len(models)))
	return nil
}

// SeedData populates the database with a starter set of go-links. Skipped when
// any links already exist.
func SeedData(db *gorm.DB, log *zap.Logger) error {
	log.Info("starting database seeding")

	var count int64
	db.Model(&domain.Link{}).Count(&count)
	if count > 0 {
		log.Info("links already exist, skipping seeding", zap.Int64("existing_count", count))
		return nil
	}

	sampleLinks := []domain.Link{
		{
			Keyword:     "github",
			URL:         "https://github.com",
			Title:       strPtr("GitHub"),
			Description: strPtr("Code repository platform"),
			Category:    domain.CategoryDevelopment,
			CreatedBy:   "seed",
			IsActive:    true,
		},
		{
			Keyword:     "docs",
			URL:         "https://docs.google.com",
			Title:       strPtr("Google Docs"),
			Description: strPtr("Document creation and collaboration"),
			Category:    domain.CategoryProductivity,
			CreatedBy:   "seed",
			IsActive:    true,
		},
		{
			Keyword:     "slack",
			URL:         "https://slack.com",
			Title:       strPtr("Slack"),
			Description: strPtr("Team communication platform"),
			Category:    domain.CategoryCommunication,
			CreatedBy:   "seed",
			IsActive:    true,
		},
	}

	if err := db.Create(&sampleLinks).Error; err != nil {
		log.Error("failed to seed links", zap.Error(err))
		return fmt.Errorf("failed to seed links: %w", err)
	}

	log.Info("database seeding completed successfully", zap.Int("links_created", len(sampleLinks)))
	return nil
}

func strPtr(s string) *string {
	return &s
}
