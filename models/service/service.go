package service

import (
	"time"
)

// Service is a bookable salon service row. The key is what booking
// requests reference; name and price feed the catalog.
type Service struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(64);not null;unique" json:"key"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     int       `gorm:"not null" json:"price"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
