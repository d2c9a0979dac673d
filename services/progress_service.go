package services

import (
	"context"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type ProgressInput struct {
	Date              *time.Time          `json:"date"`
	Weight            *float64            `json:"weight"`
	BodyFatPercentage *float64            `json:"bodyFatPercentage"`
	MuscleMass        *float64            `json:"muscleMass"`
	Measurements      models.Measurements `json:"measurements"`
	Notes             string              `json:"notes"`
}

// Record stores a body measurement entry. A missing date means now.
func (s *ProgressService) Record(ctx context.Context, userID string, in ProgressInput) (*models.ProgressRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, missingFields("userId")
	}
	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	rec := &models.ProgressRecord{
		UserID:            userID,
		Date:              date,
		Weight:            in.Weight,
		BodyFatPercentage: in.BodyFatPercentage,
		MuscleMass:        in.MuscleMass,
		Measurements:      in.Measurements,
		Notes:             in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, upstream("create progress", err)
	}
	return rec, nil
}

// List returns a user's progress entries, latest date first.
func (s *ProgressService) List(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var recs []models.ProgressRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&recs).Error
	if err != nil {
		return nil, upstream("list progress", err)
	}
	return recs, nil
}
