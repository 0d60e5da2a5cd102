// Package admission turns raw booking requests into stored bookings:
// field validation, phone format, slot availability, then derived
// pricing and record construction.
package admission

import (
	"context"
	"errors"
	"time"

	"hair-salon/catalog"
	bookingModel "hair-salon/models/booking"
	"hair-salon/storage"
	bookingTypes "hair-salon/types/booking"
	"hair-salon/validation"

	"github.com/google/uuid"
)

var (
	// ErrMissingFields means a required field was absent or empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidPhone means the customer phone failed the Hong Kong
	// mobile format check.
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Service validates and admits booking requests.
type Service struct {
	store storage.BookingStore
	cat   *catalog.Catalog
	nowFn func() time.Time
}

// New builds an admission service over the given store and catalog.
func New(store storage.BookingStore, cat *catalog.Catalog) *Service {
	return &Service{store: store, cat: cat, nowFn: time.Now}
}

// NewBookingID returns a fresh collision-resistant booking identifier.
func NewBookingID() string {
	return "BK-" + uuid.NewString()
}

// Submit validates req and either appends a new booking to the store
// or returns a rejection. Validation is fail-fast in a fixed order:
// required fields, phone format, slot availability. The store is not
// touched on any rejection path.
func (s *Service) Submit(ctx context.Context, req bookingTypes.CreateBookingRequest) (*bookingModel.Booking, error) {
	if err := validation.Struct(req); err != nil {
		fieldErrs := validation.Errors(err)
		if fieldErrs == nil {
			return nil, err
		}
		// Required-field violations win over format violations
		// regardless of field order.
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return nil, ErrMissingFields
			}
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "hkmobile" {
				return nil, ErrInvalidPhone
			}
		}
		return nil, ErrMissingFields
	}

	staffKey, staffName := s.cat.StaffFor(req.Staff)
	svc := s.cat.ServiceFor(req.Service)

	b := &bookingModel.Booking{
		ID:          NewBookingID(),
		Service:     req.Service,
		ServiceName: svc.Name,
		Staff:       staffKey,
		StaffName:   staffName,
		Date:        req.Date,
		Time:        req.Time,
		Customer: bookingModel.Customer{
			Name:   req.Customer.Name,
			Phone:  req.Customer.Phone,
			Remark: req.Customer.Remark,
		},
		Price:     svc.Price,
		CreatedAt: s.nowFn(),
	}

	// Conflict detection and the append are one atomic store operation;
	// storage.ErrSlotTaken surfaces here on a contended slot.
	if err := s.store.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
