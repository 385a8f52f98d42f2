package seeders

import (
	"log"

	"github.com/FrankCasanova/fastapi-blog/config"

	"gorm.io/gorm"
)

// SeedAllData runs all seeders
func SeedAllData(db *gorm.DB, settings *config.Settings) {
	log.Println("=== Starting Database Seeding ===")

	SeedSuperuser(db, settings)

	log.Println("=== Database Seeding Completed ===")
}
