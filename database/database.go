// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"volunteerhub-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Opportunity{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Registry refreshes always read newest-first with a row cap
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_opportunities_created ON opportunities(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for opportunities created_at: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_opportunities_zip ON opportunities(zip_code)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for opportunities zip_code: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_opportunities_creator ON opportunities(created_by)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for opportunities created_by: %v\n", err)
	}

	return nil
}

// SeedData inserts a demo account and a couple of opportunities for
// development environments. Does nothing when users already exist.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Volunteer1!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	demo := models.User{
		ID:        uuid.New().String(),
		FirstName: "Demo",
		LastName:  "Volunteer",
		Email:     "demo@volunteerhub.org",
		Password:  string(hashed),
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	now := time.Now()
	seedOpportunities := []models.Opportunity{
		{
			ID:          uuid.New().String(),
			Title:       "Community Garden Cleanup",
			Description: "Help us prepare the garden beds for the fall planting season.",
			EventBegin:  now.Add(48 * time.Hour),
			EventEnd:    now.Add(52 * time.Hour),
			ZipCode:     65201,
			CreatedBy:   demo.ID,
			Organizers:  models.StringSlice{demo.DisplayName()},
			ImageURL:    models.DefaultImageURL,
		},
		{
			ID:          uuid.New().String(),
			Title:       "Food Bank Sorting Shift",
			Description: "Sort and shelve donated goods at the downtown food bank.",
			EventBegin:  now.Add(96 * time.Hour),
			EventEnd:    now.Add(100 * time.Hour),
			ZipCode:     65203,
			CreatedBy:   demo.ID,
			Organizers:  models.StringSlice{demo.DisplayName()},
			ImageURL:    models.DefaultImageURL,
		},
	}

	for i := range seedOpportunities {
		if err := db.Create(&seedOpportunities[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
