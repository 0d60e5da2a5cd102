package database

import (
	"fmt"
	"os"

	"hair-salon/database/seeders"
	"hair-salon/logger"
	bookingModel "hair-salon/models/booking"
	logModel "hair-salon/models/log"
	serviceModel "hair-salon/models/service"
	stylistModel "hair-salon/models/stylist"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the Postgres connection, migrates the schema, creates
// the query indexes and seeds the reference tables.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to migrate database schema", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	seeders.SeedServices(DB)
	seeders.SeedStylists(DB)

	return DB, nil
}

// autoMigrate runs auto migration for all models. Reference tables go
// first so a catalog load right after migration sees them.
func autoMigrate() error {
	models := []interface{}{
		&serviceModel.Service{},
		&stylistModel.Stylist{},
		&bookingModel.Booking{},
		&logModel.Log{},
	}

	for _, model := range models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

// createIndexes creates additional indexes for better performance.
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_date_time ON bookings(date, time)").Error; err != nil {
		return fmt.Errorf("failed to create booking slot index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create booking created_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return DB
}
