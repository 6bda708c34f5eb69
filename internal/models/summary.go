package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailySummary holds one day of counter-desk activity for the hotel.
// Grain: calendar date, enforced unique. Resubmitting a date overwrites
// the row in place; there is no history of prior values.
type DailySummary struct {
	ID   string    `gorm:"primaryKey;size:36"`
	Date time.Time `gorm:"type:date;uniqueIndex;not null"`

	// room statistics
	RoomsTotal     int `gorm:"not null"`
	RoomsOccupied  int `gorm:"not null"`
	RoomsAvailable int `gorm:"not null"`

	// collections and expenses, in local currency
	CashCollected   float64 `gorm:"not null;default:0"`
	MomoCollected   float64 `gorm:"not null;default:0"`
	TotalCollected  float64 `gorm:"not null;default:0"`
	ExpectedBalance float64 `gorm:"not null;default:0"`
	ExpensesLogged  float64 `gorm:"not null;default:0"`

	LastUpdated time.Time `gorm:"autoUpdateTime"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

// BeforeCreate assigns the uuid primary key.
func (s *DailySummary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
