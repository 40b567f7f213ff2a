package database

import (
	"fmt"
	"log"
	"os"

	"eduplatform/internal/domain/billing"
	"eduplatform/internal/domain/materials"
	"eduplatform/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate is shared with the test suites, which run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// identity
		&users.User{},
		&users.ResetToken{},

		// catalog
		&materials.Course{},
		&materials.Lesson{},
		&materials.Subscription{},

		// ledger
		&billing.Payment{},
	)
}
