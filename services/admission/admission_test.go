package admission_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hair-salon/catalog"
	bookingModel "hair-salon/models/booking"
	"hair-salon/services/admission"
	"hair-salon/storage"
	bookingTypes "hair-salon/types/booking"
)

func validRequest() bookingTypes.CreateBookingRequest {
	return bookingTypes.CreateBookingRequest{
		Service: "cut-basic",
		Date:    "2025-06-01",
		Time:    "14:00",
		Customer: bookingTypes.CustomerPayload{
			Name:  "Chan",
			Phone: "91234567",
		},
	}
}

func newService(store storage.BookingStore) *admission.Service {
	return admission.New(store, catalog.Default())
}

func TestSubmit_MissingFields(t *testing.T) {
	mutations := map[string]func(*bookingTypes.CreateBookingRequest){
		"service":        func(r *bookingTypes.CreateBookingRequest) { r.Service = "" },
		"date":           func(r *bookingTypes.CreateBookingRequest) { r.Date = "" },
		"time":           func(r *bookingTypes.CreateBookingRequest) { r.Time = "" },
		"customer name":  func(r *bookingTypes.CreateBookingRequest) { r.Customer.Name = "" },
		"customer phone": func(r *bookingTypes.CreateBookingRequest) { r.Customer.Phone = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			req := validRequest()
			mutate(&req)

			_, err := newService(store).Submit(context.Background(), req)
			if !errors.Is(err, admission.ErrMissingFields) {
				t.Fatalf("Submit without %s: got %v, want ErrMissingFields", name, err)
			}

			all, _ := store.ListAll(context.Background())
			if len(all) != 0 {
				t.Fatalf("store mutated on rejection: %d bookings", len(all))
			}
		})
	}
}

func TestSubmit_MissingFieldsWinsOverBadPhone(t *testing.T) {
	store := storage.NewMemoryStore()
	req := validRequest()
	req.Service = ""
	req.Customer.Phone = "12345678"

	_, err := newService(store).Submit(context.Background(), req)
	if !errors.Is(err, admission.ErrMissingFields) {
		t.Fatalf("got %v, want ErrMissingFields first", err)
	}
}

func TestSubmit_InvalidPhone(t *testing.T) {
	for _, phone := range []string{
		"12345678",  // bad leading digit
		"9123456",   // too short
		"912345678", // too long
		"9123456a",  // non-digit
		"+85291234567",
	} {
		t.Run(phone, func(t *testing.T) {
			store := storage.NewMemoryStore()
			req := validRequest()
			req.Customer.Phone = phone

			_, err := newService(store).Submit(context.Background(), req)
			if !errors.Is(err, admission.ErrInvalidPhone) {
				t.Fatalf("phone %q: got %v, want ErrInvalidPhone", phone, err)
			}

			all, _ := store.ListAll(context.Background())
			if len(all) != 0 {
				t.Fatalf("store mutated on rejection")
			}
		})
	}
}

func TestSubmit_SlotConflicts(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newService(store)

	// No preference claims the whole slot.
	if _, err := svc.Submit(ctx, validRequest()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := validRequest()
	second.Staff = "mark"
	second.Customer.Phone = "61234567"
	if _, err := svc.Submit(ctx, second); !errors.Is(err, storage.ErrSlotTaken) {
		t.Fatalf("named staff on any-claimed slot: got %v, want ErrSlotTaken", err)
	}
}

func TestSubmit_DistinctStylistsShareSlot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newService(store)

	first := validRequest()
	first.Staff = "mark"
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("mark: %v", err)
	}

	second := validRequest()
	second.Staff = "jack"
	if _, err := svc.Submit(ctx, second); err != nil {
		t.Fatalf("jack on same slot: %v", err)
	}

	third := validRequest()
	third.Staff = "mark"
	if _, err := svc.Submit(ctx, third); !errors.Is(err, storage.ErrSlotTaken) {
		t.Fatalf("second mark: got %v, want ErrSlotTaken", err)
	}
}

func TestSubmit_BuildsBookingFromCatalog(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	req := validRequest()
	req.Customer.Remark = "first visit"
	b, err := newService(store).Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !strings.HasPrefix(b.ID, "BK-") {
		t.Errorf("ID = %q, want BK- prefix", b.ID)
	}
	if b.ServiceName != "剪髮 (Basic)" || b.Price != 280 {
		t.Errorf("catalog lookup: serviceName=%q price=%d", b.ServiceName, b.Price)
	}
	if b.Staff != bookingModel.StaffAny || b.StaffName != catalog.AnyStylistLabel {
		t.Errorf("staff fallback: staff=%q staffName=%q", b.Staff, b.StaffName)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}

	// Round-trip through the store.
	got, err := store.FindByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if *got != *b {
		t.Errorf("stored booking differs:\n got %+v\nwant %+v", got, b)
	}
}

func TestSubmit_UnknownKeysDegradeGracefully(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	req := validRequest()
	req.Service = "beard-trim"
	req.Staff = "newhire"
	b, err := newService(store).Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if b.ServiceName != "beard-trim" || b.Price != 0 {
		t.Errorf("unknown service: serviceName=%q price=%d", b.ServiceName, b.Price)
	}
	if b.Staff != "newhire" || b.StaffName != "newhire" {
		t.Errorf("unknown staff: staff=%q staffName=%q", b.Staff, b.StaffName)
	}
}

type failingStore struct {
	storage.BookingStore
	err error
}

func (f *failingStore) Insert(ctx context.Context, b *bookingModel.Booking) error {
	return f.err
}

func TestSubmit_StorageFailurePropagates(t *testing.T) {
	boom := errors.New("connection reset")
	store := &failingStore{err: boom}

	_, err := newService(store).Submit(context.Background(), validRequest())
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want storage error", err)
	}
}
