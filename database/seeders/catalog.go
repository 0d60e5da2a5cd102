package seeders

import (
	"fmt"

	"hair-salon/catalog"
	"hair-salon/logger"
	serviceModel "hair-salon/models/service"
	stylistModel "hair-salon/models/stylist"

	"gorm.io/gorm"
)

// SeedServices inserts any price-list services missing from the
// services table. Existing rows are left untouched so operator edits
// survive restarts.
func SeedServices(db *gorm.DB) {
	var existingKeys []string
	if err := db.Model(&serviceModel.Service{}).Pluck("key", &existingKeys).Error; err != nil {
		logger.Error("Failed to fetch existing service keys", err)
		return
	}

	existing := make(map[string]bool, len(existingKeys))
	for _, key := range existingKeys {
		existing[key] = true
	}

	var missing []serviceModel.Service
	for _, s := range catalog.Default().Services() {
		if !existing[s.Key] {
			missing = append(missing, serviceModel.Service{
				Key:    s.Key,
				Name:   s.Name,
				Price:  s.Price,
				Active: true,
			})
		}
	}

	if len(missing) == 0 {
		logger.Info("All catalog services already present, no seeding needed")
		return
	}

	if err := db.Create(&missing).Error; err != nil {
		logger.Error("Failed to seed services", err)
		return
	}
	logger.Success(fmt.Sprintf("Seeded %d missing services", len(missing)))
}

// SeedStylists inserts any staff directory entries missing from the
// stylists table.
func SeedStylists(db *gorm.DB) {
	var existingKeys []string
	if err := db.Model(&stylistModel.Stylist{}).Pluck("key", &existingKeys).Error; err != nil {
		logger.Error("Failed to fetch existing stylist keys", err)
		return
	}

	existing := make(map[string]bool, len(existingKeys))
	for _, key := range existingKeys {
		existing[key] = true
	}

	var missing []stylistModel.Stylist
	for _, s := range catalog.Default().Stylists() {
		if !existing[s.Key] {
			missing = append(missing, stylistModel.Stylist{
				Key:    s.Key,
				Name:   s.Name,
				Active: true,
			})
		}
	}

	if len(missing) == 0 {
		logger.Info("All catalog stylists already present, no seeding needed")
		return
	}

	if err := db.Create(&missing).Error; err != nil {
		logger.Error("Failed to seed stylists", err)
		return
	}
	logger.Success(fmt.Sprintf("Seeded %d missing stylists", len(missing)))
}
