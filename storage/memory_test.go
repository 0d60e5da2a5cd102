package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	booking "hair-salon/models/booking"
)

func newBooking(id, date, timeOfDay, staff string) *booking.Booking {
	return &booking.Booking{
		ID:        id,
		Service:   "cut-basic",
		Staff:     staff,
		Date:      date,
		Time:      timeOfDay,
		CreatedAt: time.Now(),
	}
}

func TestMemoryStore_InsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	b := newBooking("BK-1", "2025-06-01", "14:00", booking.StaffAny)
	if err := s.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := s.FindByID(ctx, "BK-1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ID != "BK-1" || got.Date != "2025-06-01" {
		t.Fatalf("FindByID returned wrong booking: %+v", got)
	}

	if _, err := s.FindByID(ctx, "BK-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ConflictRules(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		existing *booking.Booking
		date     string
		time     string
		staff    string
		want     bool
	}{
		{"any blocks any", newBooking("a", "2025-06-01", "14:00", booking.StaffAny), "2025-06-01", "14:00", booking.StaffAny, true},
		{"any blocks named", newBooking("a", "2025-06-01", "14:00", booking.StaffAny), "2025-06-01", "14:00", "mark", true},
		{"named blocks any", newBooking("a", "2025-06-01", "14:00", "mark"), "2025-06-01", "14:00", booking.StaffAny, true},
		{"named blocks same name", newBooking("a", "2025-06-01", "14:00", "mark"), "2025-06-01", "14:00", "mark", true},
		{"distinct names may share", newBooking("a", "2025-06-01", "14:00", "mark"), "2025-06-01", "14:00", "jack", false},
		{"different time free", newBooking("a", "2025-06-01", "14:00", booking.StaffAny), "2025-06-01", "15:00", booking.StaffAny, false},
		{"different date free", newBooking("a", "2025-06-01", "14:00", booking.StaffAny), "2025-06-02", "14:00", booking.StaffAny, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewMemoryStore()
			if err := s.Insert(ctx, tc.existing); err != nil {
				t.Fatalf("Insert existing: %v", err)
			}

			got, err := s.ExistsConflict(ctx, tc.date, tc.time, tc.staff)
			if err != nil {
				t.Fatalf("ExistsConflict: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ExistsConflict = %v, want %v", got, tc.want)
			}

			err = s.Insert(ctx, newBooking("b", tc.date, tc.time, tc.staff))
			if tc.want && !errors.Is(err, ErrSlotTaken) {
				t.Fatalf("Insert on conflicting slot: got %v, want ErrSlotTaken", err)
			}
			if !tc.want && err != nil {
				t.Fatalf("Insert on free slot: %v", err)
			}
		})
	}
}

func TestMemoryStore_InsertRejectionLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Insert(ctx, newBooking("a", "2025-06-01", "14:00", booking.StaffAny)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(ctx, newBooking("b", "2025-06-01", "14:00", "mark")); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("store length = %d, want 1", len(all))
	}
}

func TestMemoryStore_ListOrderAndDateFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, b := range []*booking.Booking{
		newBooking("a", "2025-06-01", "10:00", "mark"),
		newBooking("b", "2025-06-02", "10:00", "mark"),
		newBooking("c", "2025-06-01", "11:00", "mark"),
	} {
		if err := s.Insert(ctx, b); err != nil {
			t.Fatalf("Insert %s: %v", b.ID, err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 || all[0].ID != "a" || all[1].ID != "b" || all[2].ID != "c" {
		t.Fatalf("ListAll order wrong: %+v", all)
	}

	byDate, err := s.ListByDate(ctx, "2025-06-01")
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(byDate) != 2 || byDate[0].ID != "a" || byDate[1].ID != "c" {
		t.Fatalf("ListByDate wrong: %+v", byDate)
	}
}
