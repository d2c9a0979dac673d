package models

import (
	"time"

	"gorm.io/gorm"
)

type GoalType string

const (
	GoalWeightLoss        GoalType = "weight_loss"
	GoalWeightGain        GoalType = "weight_gain"
	GoalMaintenance       GoalType = "maintenance"
	GoalMuscleGain        GoalType = "muscle_gain"
	GoalHealthImprovement GoalType = "health_improvement"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalWeightLoss, GoalWeightGain, GoalMaintenance, GoalMuscleGain, GoalHealthImprovement:
		return true
	}
	return false
}

// NutritionGoal holds a user's daily targets. At most one goal per user is
// active; the goal service keeps that true on every write.
type NutritionGoal struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"id"`
	UserID             string     `gorm:"size:36;index;not null" json:"userId"`
	Type               GoalType   `gorm:"size:32" json:"type"`
	TargetWeight       *float64   `json:"targetWeight,omitempty"`
	TargetDate         *time.Time `json:"targetDate,omitempty"`
	DailyCalorieTarget float64    `json:"dailyCalorieTarget"`
	ProteinTarget      float64    `json:"proteinTarget"`
	CarbTarget         float64    `json:"carbTarget"`
	FatTarget          float64    `json:"fatTarget"`
	IsActive           bool       `gorm:"index" json:"isActive"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (NutritionGoal) TableName() string { return "goals" }

func (g *NutritionGoal) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}
