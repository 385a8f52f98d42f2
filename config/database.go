package config

import (
	"fmt"
	"log"

	"github.com/FrankCasanova/fastapi-blog/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the configured database and ensures the schema exists.
func ConnectDB(settings *Settings) (*gorm.DB, error) {
	dialector, err := openDialector(settings)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return db, nil
}

func openDialector(settings *Settings) (gorm.Dialector, error) {
	switch settings.DBDriver {
	case "mysql":
		if settings.DBUser == "" || settings.DBName == "" {
			return nil, fmt.Errorf("mysql driver requires DB_USER and DB_NAME")
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			settings.DBUser,
			settings.DBPass,
			settings.DBHost,
			settings.DBPort,
			settings.DBName)
		log.Printf("Connecting to database: %s@%s:%s/%s", settings.DBUser, settings.DBHost, settings.DBPort, settings.DBName)
		return mysql.Open(dsn), nil
	case "sqlite":
		log.Printf("Connecting to database: %s", settings.DBPath)
		return sqlite.Open(settings.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", settings.DBDriver)
	}
}
