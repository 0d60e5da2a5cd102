package storage

import (
	"context"
	"errors"

	booking "hair-salon/models/booking"

	"gorm.io/gorm"
)

// GormStore is the Postgres-backed booking store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// slotConflictQuery narrows q to rows that block a claim on
// (date, time, staff) under the "any" rules: a stored "any" blocks
// everything on the slot, a candidate "any" is blocked by anything,
// and a named stylist is blocked by the same name or by "any".
func slotConflictQuery(q *gorm.DB, date, timeOfDay, staff string) *gorm.DB {
	q = q.Where("date = ? AND time = ?", date, timeOfDay)
	if staff != booking.StaffAny {
		q = q.Where("staff = ? OR staff = ?", staff, booking.StaffAny)
	}
	return q
}

// Insert runs the conflict check and the insert in one transaction.
// An advisory lock keyed on the slot serializes concurrent writers for
// the same (date, time), closing the check-then-insert race.
func (s *GormStore) Insert(ctx context.Context, b *booking.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(? || '@' || ?))", b.Date, b.Time).Error; err != nil {
			return err
		}

		var n int64
		q := slotConflictQuery(tx.Model(&booking.Booking{}), b.Date, b.Time, b.Staff)
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotTaken
		}

		return tx.Create(b).Error
	})
}

// FindByID returns the booking with the given id, or ErrNotFound.
func (s *GormStore) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	var b booking.Booking
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByDate returns bookings for an exact date in creation order.
func (s *GormStore) ListByDate(ctx context.Context, date string) ([]booking.Booking, error) {
	var out []booking.Booking
	err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// ListAll returns every booking in creation order.
func (s *GormStore) ListAll(ctx context.Context) ([]booking.Booking, error) {
	var out []booking.Booking
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&out).Error
	return out, err
}

// ExistsConflict reports whether any stored booking blocks the given
// (date, time, staff) claim.
func (s *GormStore) ExistsConflict(ctx context.Context, date, timeOfDay, staff string) (bool, error) {
	var n int64
	q := slotConflictQuery(s.db.WithContext(ctx).Model(&booking.Booking{}), date, timeOfDay, staff)
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
