package main

import (
	"os"
	"time"

	"hair-salon/catalog"
	"hair-salon/database"
	"hair-salon/logger"
	"hair-salon/routes"
	"hair-salon/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		BodyLimit:    1 * 1024 * 1024,
	})

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file loaded")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	var (
		store storage.BookingStore
		cat   = catalog.Default()
	)
	if os.Getenv("DB_HOST") == "" {
		// Ephemeral mode: bookings live in process memory and are
		// lost on restart.
		logger.Warning("DB_HOST not set; using in-memory booking store")
		store = storage.NewMemoryStore()
		routes.SetupRoutes(app, nil, store, cat)
	} else {
		db, err := database.InitDB()
		if err != nil {
			logger.Error("Failed to connect to the database", err)
			return
		}
		store = storage.NewGormStore(db)

		cat, err = catalog.FromDB(db)
		if err != nil {
			logger.Error("Failed to load catalog from database", err)
			return
		}
		routes.SetupRoutes(app, db, store, cat)
	}

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}

	logger.Success("Server is running on " + appHost + ":" + appPort)
	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Error("Server stopped", err)
	}
}
