package models

import (
	"time"

	"gorm.io/gorm"
)

// Measurements are body circumferences in cm.
type Measurements struct {
	Waist  *float64 `json:"waist,omitempty"`
	Chest  *float64 `json:"chest,omitempty"`
	Arms   *float64 `json:"arms,omitempty"`
	Thighs *float64 `json:"thighs,omitempty"`
}

type ProgressRecord struct {
	ID                string       `gorm:"primaryKey;size:36" json:"id"`
	UserID            string       `gorm:"size:36;index;not null" json:"userId"`
	Date              time.Time    `gorm:"index" json:"date"`
	Weight            *float64     `json:"weight,omitempty"`
	BodyFatPercentage *float64     `json:"bodyFatPercentage,omitempty"`
	MuscleMass        *float64     `json:"muscleMass,omitempty"`
	Measurements      Measurements `gorm:"embedded;embeddedPrefix:measurement_" json:"measurements"`
	Notes             string       `gorm:"type:text" json:"notes,omitempty"`
}

func (ProgressRecord) TableName() string { return "progress" }

func (p *ProgressRecord) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}
