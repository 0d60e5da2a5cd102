// Package stats computes the admin dashboard aggregates over the
// booking store snapshot.
package stats

import (
	"context"
	"time"

	"hair-salon/storage"

	"github.com/jinzhu/now"
)

const dateLayout = "2006-01-02"

// Stats are the dashboard aggregates: today's bookings, the current
// calendar month's bookings and revenue, and the all-time total.
type Stats struct {
	TodayCount   int `json:"todayCount"`
	MonthCount   int `json:"monthCount"`
	TotalRevenue int `json:"totalRevenue"`
	TotalCount   int `json:"totalCount"`
}

// Service computes stats against a booking store.
type Service struct {
	store storage.BookingStore
	nowFn func() time.Time
}

// New builds a stats service using the server-local clock.
func New(store storage.BookingStore) *Service {
	return &Service{store: store, nowFn: time.Now}
}

// Compute folds over the full store snapshot. The month window is
// keyed by year and month, so bookings from the same month of another
// year are excluded. Bookings with unparseable dates count toward the
// total only.
func (s *Service) Compute(ctx context.Context) (Stats, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	current := s.nowFn()
	today := now.With(current).BeginningOfDay().Format(dateLayout)
	monthStart := now.With(current).BeginningOfMonth()
	monthEnd := monthStart.AddDate(0, 1, 0)

	var out Stats
	for _, b := range all {
		out.TotalCount++
		if b.Date == today {
			out.TodayCount++
		}

		d, err := time.ParseInLocation(dateLayout, b.Date, current.Location())
		if err != nil {
			continue
		}
		if !d.Before(monthStart) && d.Before(monthEnd) {
			out.MonthCount++
			out.TotalRevenue += b.Price
		}
	}
	return out, nil
}
