package database

import (
	"log"

	"github.com/ngofreelancing/platform-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The *gorm.DB is
// returned rather than stored in a package global so services can be handed
// a test database instead.
func Connect(databaseURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.Organization{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
