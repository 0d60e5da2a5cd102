package booking

import (
	"time"
)

// StaffAny is the sentinel staff key meaning "no stylist preference".
// A booking holding it claims the whole (date, time) slot.
const StaffAny = "any"

// Customer is the customer block embedded in a booking. Stored as
// customer_* columns, serialized as a nested JSON object.
type Customer struct {
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Phone  string `gorm:"type:varchar(20);not null" json:"phone"`
	Remark string `gorm:"type:text" json:"remark"`
}

// Booking represents a reserved appointment slot. ServiceName and Price
// are denormalized from the service catalog at creation time and never
// re-derived, so later catalog changes do not affect existing bookings.
type Booking struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Service     string    `gorm:"type:varchar(64);not null" json:"service"`
	ServiceName string    `gorm:"type:varchar(255);not null" json:"serviceName"`
	Staff       string    `gorm:"type:varchar(64);not null;default:any;index:idx_bookings_slot" json:"staff"`
	StaffName   string    `gorm:"type:varchar(255);not null" json:"staffName"`
	Date        string    `gorm:"type:varchar(10);not null;index:idx_bookings_slot" json:"date"`
	Time        string    `gorm:"type:varchar(16);not null;index:idx_bookings_slot" json:"time"`
	Customer    Customer  `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Price       int       `gorm:"not null" json:"price"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

// ConflictsWith reports whether an existing booking blocks a candidate
// claim on (date, time, staff). A stored or candidate staff of StaffAny
// conflicts with every other claim on the slot; two distinct named
// stylists may share a slot.
func (b *Booking) ConflictsWith(date, timeOfDay, staff string) bool {
	if b.Date != date || b.Time != timeOfDay {
		return false
	}
	return staff == StaffAny || b.Staff == StaffAny || b.Staff == staff
}
