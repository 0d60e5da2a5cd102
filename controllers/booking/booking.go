package booking

import (
	"errors"

	"hair-salon/logger"
	bookingModel "hair-salon/models/booking"
	"hair-salon/services/admission"
	"hair-salon/storage"
	"hair-salon/types"
	bookingTypes "hair-salon/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles the public booking endpoints.
type BookingController struct {
	Admission *admission.Service
	Store     storage.BookingStore
}

// NewBookingController creates a new booking controller.
func NewBookingController(admissionSvc *admission.Service, store storage.BookingStore) *BookingController {
	return &BookingController{
		Admission: admissionSvc,
		Store:     store,
	}
}

// Create handles POST /api/booking/create.
func (bc *BookingController) Create(c *fiber.Ctx) error {
	var req bookingTypes.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.FailureResponse{
			Success: false,
			Error:   "invalid request body",
		})
	}

	b, err := bc.Admission.Submit(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, admission.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(types.FailureResponse{
				Success: false,
				Error:   "缺少必填項",
			})
		case errors.Is(err, admission.ErrInvalidPhone):
			return c.Status(fiber.StatusBadRequest).JSON(types.FailureResponse{
				Success: false,
				Error:   "電話格式錯誤 (需為8位數字)",
			})
		case errors.Is(err, storage.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(types.FailureResponse{
				Success: false,
				Error:   "該時段已被預約",
			})
		default:
			logger.Error("Failed to admit booking", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.FailureResponse{
				Success: false,
				Error:   err.Error(),
			})
		}
	}

	logger.Success("Booking created: " + b.ID)
	return c.Status(fiber.StatusOK).JSON(bookingTypes.CreateBookingResponse{
		Success:   true,
		BookingID: b.ID,
		Booking:   b,
	})
}

// Check handles GET /api/booking/check?bookingId=...
func (bc *BookingController) Check(c *fiber.Ctx) error {
	id := c.Query("bookingId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{Error: "bookingId is required"})
	}

	b, err := bc.Store.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{Error: "找不到預約"})
		}
		logger.Error("Failed to look up booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(b)
}

// Index handles GET /api/bookings, the public full listing the booking
// widget polls for availability.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	all, err := bc.Store.ListAll(c.Context())
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{Error: err.Error()})
	}
	if all == nil {
		all = []bookingModel.Booking{}
	}
	return c.Status(fiber.StatusOK).JSON(all)
}
