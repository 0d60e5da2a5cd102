package admin

import (
	"os"
	"sort"

	"hair-salon/auth"
	"hair-salon/logger"
	bookingModel "hair-salon/models/booking"
	"hair-salon/services/stats"
	"hair-salon/storage"
	"hair-salon/types"
	bookingTypes "hair-salon/types/booking"

	"github.com/gofiber/fiber/v2"
)

// AdminController handles operator login, the admin booking listing
// and the stats dashboard.
type AdminController struct {
	Store        storage.BookingStore
	Stats        *stats.Service
	username     string
	passwordHash string
}

// NewAdminController reads the operator credential from the
// environment: ADMIN_USERNAME (default "admin") and
// ADMIN_PASSWORD_HASH (bcrypt). For local development ADMIN_PASSWORD
// may be set instead; it is hashed once at startup.
func NewAdminController(store storage.BookingStore, statsSvc *stats.Service) *AdminController {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if passwordHash == "" {
		if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
			hashed, err := auth.HashPassword(plain)
			if err != nil {
				logger.Error("Failed to hash ADMIN_PASSWORD", err)
			} else {
				passwordHash = hashed
				logger.Warning("ADMIN_PASSWORD_HASH not set; hashed ADMIN_PASSWORD at startup")
			}
		} else {
			logger.Warning("No admin credential configured; admin login is disabled")
		}
	}

	return &AdminController{
		Store:        store,
		Stats:        statsSvc,
		username:     username,
		passwordHash: passwordHash,
	}
}

// Login handles POST /api/admin/login.
func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse login request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.FailureResponse{
			Success: false,
			Error:   "invalid request body",
		})
	}

	if req.Username != ac.username || auth.ComparePassword(ac.passwordHash, req.Password) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.FailureResponse{
			Success: false,
			Error:   "登入失敗",
		})
	}

	token, err := auth.GenerateAdminToken(req.Username)
	if err != nil {
		logger.Error("Failed to sign admin token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.FailureResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	logger.Success("Admin login: " + req.Username)
	return c.Status(fiber.StatusOK).JSON(types.LoginResponse{
		Success: true,
		Token:   token,
	})
}

// Bookings handles GET /api/admin/bookings?date=..., returning
// bookings most recent first.
func (ac *AdminController) Bookings(c *fiber.Ctx) error {
	var (
		result []bookingModel.Booking
		err    error
	)
	if date := c.Query("date"); date != "" {
		result, err = ac.Store.ListByDate(c.Context(), date)
	} else {
		result, err = ac.Store.ListAll(c.Context())
	}
	if err != nil {
		logger.Error("Failed to list bookings for admin", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if result == nil {
		result = []bookingModel.Booking{}
	}

	return c.Status(fiber.StatusOK).JSON(bookingTypes.AdminBookingsResponse{
		Bookings: result,
		Total:    len(result),
	})
}

// StatsIndex handles GET /api/admin/stats.
func (ac *AdminController) StatsIndex(c *fiber.Ctx) error {
	out, err := ac.Stats.Compute(c.Context())
	if err != nil {
		logger.Error("Failed to compute stats", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
