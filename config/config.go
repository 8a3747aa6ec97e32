package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/taraskarpenko/recipe-app-api/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB = waitForDB(dsn)

	err := DB.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// waitForDB keeps retrying the connection so the API can start before the
// database container is ready.
func waitForDB(dsn string) *gorm.DB {
	log.Println("Waiting for database")
	for attempt := 1; ; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			if sqlDB, pingErr := db.DB(); pingErr == nil && sqlDB.Ping() == nil {
				log.Println("Database available")
				return db
			}
		}
		if attempt >= 60 {
			log.Fatalf("Failed to connect to database after %d attempts", attempt)
		}
		log.Println("Database unavailable, waiting 1 sec")
		time.Sleep(1 * time.Second)
	}
}
