package database

import (
	"fmt"
	"log"

	"soc-archive-api/config"
	"soc-archive-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the backing store and migrates the schema. A configured
// DATABASE_URL selects postgres; otherwise a local sqlite file is used.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Work{}, &models.Category{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedCategories creates the default taxonomy once, when the categories
// table is empty. Calling it again is a no-op.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Category{
		{Name: "Mathematics", Description: strPtr("Works in mathematics")},
		{Name: "Physics", Description: strPtr("Works in physics")},
		{Name: "Informatics", Description: strPtr("Works in informatics")},
		{Name: "Biology", Description: strPtr("Works in biology")},
		{Name: "Chemistry", Description: strPtr("Works in chemistry")},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return err
	}

	log.Println("Default categories seeded")
	return nil
}

func strPtr(s string) *string {
	return &s
}
