package routes

import (
	"hair-salon/catalog"
	adminController "hair-salon/controllers/admin"
	bookingController "hair-salon/controllers/booking"
	"hair-salon/logger"
	"hair-salon/middleware"
	"hair-salon/services/admission"
	"hair-salon/services/stats"
	"hair-salon/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires the services and controllers onto the app. db may
// be nil when running on the in-memory store.
func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.BookingStore, cat *catalog.Catalog) {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	admissionSvc := admission.New(store, cat)
	statsSvc := stats.New(store)

	bookings := bookingController.NewBookingController(admissionSvc, store)
	admin := adminController.NewAdminController(store, statsSvc)

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")

	bookingGroup := api.Group("/booking")
	bookingGroup.Post("/create", bookings.Create)
	bookingGroup.Get("/check", bookings.Check)

	api.Get("/bookings", bookings.Index)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)
	adminGroup.Get("/bookings", middleware.RequireAdmin(), admin.Bookings)
	adminGroup.Get("/stats", middleware.RequireAdmin(), admin.StatsIndex)
}
