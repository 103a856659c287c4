package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"snackmart-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB menginisialisasi koneksi ke PostgreSQL lewat GORM.
// Handle yang dikembalikan dibuat sekali di main dan dipakai ulang
// oleh semua handler supaya koneksi tidak bocor per request.
func ConnectDB(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to PostgreSQL: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Banner{},
		&models.HighlightedProduct{},
	); err != nil {
		return nil, fmt.Errorf("error migrating schema: %w", err)
	}

	fmt.Println("Successfully connected to PostgreSQL")
	return db, nil
}
