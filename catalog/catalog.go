// Package catalog holds the static reference data the admission service
// prices bookings against: the service catalog and the staff directory.
// The built-in defaults mirror the salon's published price list; when a
// database is configured the seeded services/stylists tables take over
// so the data can be managed without a redeploy.
package catalog

import (
	booking "hair-salon/models/booking"
	serviceModel "hair-salon/models/service"
	stylistModel "hair-salon/models/stylist"

	"gorm.io/gorm"
)

// AnyStylistLabel is the display name used when a booking carries no
// stylist preference.
const AnyStylistLabel = "任何髮型師"

// Service is one bookable service: display name plus price in HKD.
type Service struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Stylist is one staff directory entry.
type Stylist struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

var defaultServices = []Service{
	{Key: "cut-basic", Name: "剪髮 (Basic)", Price: 280},
	{Key: "cut-senior", Name: "剪髮 (Senior)", Price: 380},
	{Key: "color-single", Name: "染髮 (Single Tone)", Price: 680},
	{Key: "color-gradient", Name: "染髮 (Gradient)", Price: 980},
	{Key: "perm-digital", Name: "燙髮 (Digital Perm)", Price: 880},
	{Key: "perm-straight", Name: "燙髮 (Straight Perm)", Price: 980},
	{Key: "treatment", Name: "護髮療程", Price: 380},
	{Key: "spa", Name: "頭髮 SPA", Price: 580},
}

var defaultStylists = []Stylist{
	{Key: "mark", Name: "Mark"},
	{Key: "sophia", Name: "Sophia"},
	{Key: "jack", Name: "Jack"},
}

// Catalog answers service and stylist lookups. It is read-only after
// construction.
type Catalog struct {
	services map[string]Service
	stylists map[string]string
	ordered  []Service
	staff    []Stylist
}

func build(services []Service, stylists []Stylist) *Catalog {
	c := &Catalog{
		services: make(map[string]Service, len(services)),
		stylists: make(map[string]string, len(stylists)),
		ordered:  services,
		staff:    stylists,
	}
	for _, s := range services {
		c.services[s.Key] = s
	}
	for _, s := range stylists {
		c.stylists[s.Key] = s.Name
	}
	return c
}

// Default returns the catalog built from the compiled-in price list.
func Default() *Catalog {
	return build(defaultServices, defaultStylists)
}

// FromDB loads active services and stylists from the seeded reference
// tables. Either table being empty falls back to the compiled-in
// defaults for that half, so a fresh database still prices correctly.
func FromDB(db *gorm.DB) (*Catalog, error) {
	var svcRows []serviceModel.Service
	if err := db.Where("active = ?", true).Order("id").Find(&svcRows).Error; err != nil {
		return nil, err
	}
	var styRows []stylistModel.Stylist
	if err := db.Where("active = ?", true).Order("id").Find(&styRows).Error; err != nil {
		return nil, err
	}

	services := defaultServices
	if len(svcRows) > 0 {
		services = make([]Service, 0, len(svcRows))
		for _, r := range svcRows {
			services = append(services, Service{Key: r.Key, Name: r.Name, Price: r.Price})
		}
	}
	stylists := defaultStylists
	if len(styRows) > 0 {
		stylists = make([]Stylist, 0, len(styRows))
		for _, r := range styRows {
			stylists = append(stylists, Stylist{Key: r.Key, Name: r.Name})
		}
	}
	return build(services, stylists), nil
}

// ServiceFor resolves a service key. Unknown keys degrade gracefully:
// the raw key becomes the display name and the price is zero, matching
// the admission contract of accepting rather than rejecting them.
func (c *Catalog) ServiceFor(key string) Service {
	if s, ok := c.services[key]; ok {
		return s
	}
	return Service{Key: key, Name: key, Price: 0}
}

// StaffFor resolves a stylist preference to the stored staff key and
// display name. An empty or "any" preference yields the sentinel key
// and the any-stylist label; an unknown key is kept as both key and name.
func (c *Catalog) StaffFor(key string) (string, string) {
	if key == "" || key == booking.StaffAny {
		return booking.StaffAny, AnyStylistLabel
	}
	if name, ok := c.stylists[key]; ok {
		return key, name
	}
	return key, key
}

// Services returns the catalog entries in their configured order.
func (c *Catalog) Services() []Service {
	return c.ordered
}

// Stylists returns the staff directory entries in their configured order.
func (c *Catalog) Stylists() []Stylist {
	return c.staff
}
