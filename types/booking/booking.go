package booking

import (
	bookingModel "hair-salon/models/booking"
)

// CustomerPayload is the nested customer block of a create request.
type CustomerPayload struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required,hkmobile"`
	Remark string `json:"remark"`
}

// CreateBookingRequest is the public booking submission payload.
// Staff is optional; an empty value means no stylist preference.
type CreateBookingRequest struct {
	Service  string          `json:"service" validate:"required"`
	Staff    string          `json:"staff"`
	Date     string          `json:"date" validate:"required"`
	Time     string          `json:"time" validate:"required"`
	Customer CustomerPayload `json:"customer"`
}

// CreateBookingResponse is returned on successful admission.
type CreateBookingResponse struct {
	Success   bool                  `json:"success"`
	BookingID string                `json:"bookingId"`
	Booking   *bookingModel.Booking `json:"booking"`
}

// AdminBookingsResponse is the admin listing envelope.
type AdminBookingsResponse struct {
	Bookings []bookingModel.Booking `json:"bookings"`
	Total    int                    `json:"total"`
}
