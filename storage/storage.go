// Package storage defines the booking store contract and its two
// backings: Postgres for real deployments and an in-memory slice for
// tests or database-less operation.
package storage

import (
	"context"
	"errors"

	booking "hair-salon/models/booking"
)

var (
	// ErrSlotTaken is returned by Insert when the requested
	// (date, time, staff) claim collides with an existing booking.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrNotFound is returned by FindByID when no booking matches.
	ErrNotFound = errors.New("booking not found")
)

// BookingStore holds the ordered sequence of bookings. Insert is the
// only mutation; conflict detection and the append happen as a single
// atomic step so concurrent writers cannot double-book a slot.
type BookingStore interface {
	Insert(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	ListByDate(ctx context.Context, date string) ([]booking.Booking, error)
	ListAll(ctx context.Context) ([]booking.Booking, error)
	ExistsConflict(ctx context.Context, date, timeOfDay, staff string) (bool, error)
}
