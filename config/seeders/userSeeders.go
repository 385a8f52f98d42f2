package seeders

import (
	"log"

	"github.com/FrankCasanova/fastapi-blog/config"
	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/security"

	"gorm.io/gorm"
)

// SeedSuperuser creates the bootstrap superuser configured via
// SUPERUSER_EMAIL/SUPERUSER_PASSWORD. It runs only against an empty
// users table.
func SeedSuperuser(db *gorm.DB, settings *config.Settings) {
	if settings.SuperuserEmail == "" || settings.SuperuserPassword == "" {
		log.Println("No superuser configured, skipping...")
		return
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already exist, skipping...")
		return
	}

	hashed, err := security.HashPassword(settings.SuperuserPassword)
	if err != nil {
		log.Printf("Error hashing superuser password: %v", err)
		return
	}

	superuser := models.User{
		Email:       settings.SuperuserEmail,
		Password:    hashed,
		IsActive:    true,
		IsSuperuser: true,
	}

	if err := db.Create(&superuser).Error; err != nil {
		log.Printf("Error creating superuser: %v", err)
		return
	}

	log.Printf("Superuser created: %s", superuser.Email)
}
