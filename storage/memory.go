package storage

import (
	"context"
	"sync"

	booking "hair-salon/models/booking"
)

// MemoryStore keeps bookings in process memory, in insertion order.
// It allows concurrent readers and serializes writers; contents are
// lost on restart. Used when no database is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []booking.Booking
}

// NewMemoryStore returns an empty in-memory booking store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Insert appends b unless the slot is already claimed. The conflict
// check and the append run under one write lock, so the check cannot
// race with another writer.
func (s *MemoryStore) Insert(_ context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ConflictsWith(b.Date, b.Time, b.Staff) {
			return ErrSlotTaken
		}
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

// FindByID returns the booking with the given id, or ErrNotFound.
func (s *MemoryStore) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			found := s.bookings[i]
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// ListByDate returns bookings for an exact date, preserving insertion order.
func (s *MemoryStore) ListByDate(_ context.Context, date string) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []booking.Booking
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListAll returns a snapshot of every booking in insertion order.
func (s *MemoryStore) ListAll(_ context.Context) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]booking.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

// ExistsConflict reports whether any stored booking blocks the given
// (date, time, staff) claim.
func (s *MemoryStore) ExistsConflict(_ context.Context, date, timeOfDay, staff string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ConflictsWith(date, timeOfDay, staff) {
			return true, nil
		}
	}
	return false, nil
}
