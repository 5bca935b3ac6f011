package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"food-court-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs access tokens — read from env or fallback
var JWTSecret []byte

// JWTTTL is how long an issued token stays valid
var JWTTTL = 24 * time.Hour

// LoadEnv reads .env if present and resolves the JWT settings.
// Plain environment variables win when no .env file exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	JWTSecret = []byte(GetEnv("JWT_SECRET", "food_court_super_secret_2024"))
	if hours, err := strconv.Atoi(GetEnv("JWT_TTL_HOURS", "24")); err == nil && hours > 0 {
		JWTTTL = time.Duration(hours) * time.Hour
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	// foreign_keys pragma so cascade deletes run inside SQLite itself
	dsn := GetEnv("DATABASE_URI", "food_court.db") + "?_pragma=foreign_keys(1)"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates/updates the schema for all eight entities.
// Parents come first so foreign-key constraints resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Cuisine{},
		&models.Outlet{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
}
