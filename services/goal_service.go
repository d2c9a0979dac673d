package services

import (
	"context"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalInput struct {
	Type               models.GoalType `json:"type"`
	TargetWeight       *float64        `json:"targetWeight"`
	TargetDate         *time.Time      `json:"targetDate"`
	DailyCalorieTarget float64         `json:"dailyCalorieTarget"`
	ProteinTarget      float64         `json:"proteinTarget"`
	CarbTarget         float64         `json:"carbTarget"`
	FatTarget          float64         `json:"fatTarget"`
	IsActive           bool            `json:"isActive"`
}

type GoalPatch struct {
	Type               *models.GoalType `json:"type"`
	TargetWeight       *float64         `json:"targetWeight"`
	TargetDate         *time.Time       `json:"targetDate"`
	DailyCalorieTarget *float64         `json:"dailyCalorieTarget"`
	ProteinTarget      *float64         `json:"proteinTarget"`
	CarbTarget         *float64         `json:"carbTarget"`
	FatTarget          *float64         `json:"fatTarget"`
	IsActive           *bool            `json:"isActive"`
}

// deactivateOthers clears the active flag on every other goal of the user so
// that at most one stays active.
func deactivateOthers(tx *gorm.DB, userID, keepID string) error {
	return tx.Model(&models.NutritionGoal{}).
		Where("user_id = ? AND id <> ? AND is_active = ?", userID, keepID, true).
		Update("is_active", false).Error
}

func (s *GoalService) Create(ctx context.Context, userID string, in GoalInput) (*models.NutritionGoal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, missingFields("userId")
	}
	if in.Type == "" {
		return nil, missingFields("type")
	}
	if !in.Type.Valid() {
		return nil, invalidField("type", "Invalid goal type: %s", in.Type)
	}

	goal := &models.NutritionGoal{
		UserID:             userID,
		Type:               in.Type,
		TargetWeight:       in.TargetWeight,
		TargetDate:         in.TargetDate,
		DailyCalorieTarget: in.DailyCalorieTarget,
		ProteinTarget:      in.ProteinTarget,
		CarbTarget:         in.CarbTarget,
		FatTarget:          in.FatTarget,
		IsActive:           in.IsActive,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		if goal.IsActive {
			return deactivateOthers(tx, userID, goal.ID)
		}
		return nil
	})
	if err != nil {
		return nil, upstream("create goal", err)
	}
	return goal, nil
}

// List returns all goals of a user, newest first.
func (s *GoalService) List(ctx context.Context, userID string) ([]models.NutritionGoal, error) {
	var goals []models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, upstream("list goals", err)
	}
	return goals, nil
}

// Active returns the user's active goal, or nil without error when there is
// none.
func (s *GoalService) Active(ctx context.Context, userID string) (*models.NutritionGoal, error) {
	var goals []models.NutritionGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Limit(1).
		Find(&goals).Error
	if err != nil {
		return nil, upstream("active goal", err)
	}
	if len(goals) == 0 {
		return nil, nil
	}
	return &goals[0], nil
}

func (s *GoalService) Update(ctx context.Context, id string, patch GoalPatch) (*models.NutritionGoal, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missingFields("goalId")
	}

	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&goal, "id = ?", id).Error; err != nil {
			return err
		}
		if patch.Type != nil {
			goal.Type = *patch.Type
		}
		if patch.TargetWeight != nil {
			goal.TargetWeight = patch.TargetWeight
		}
		if patch.TargetDate != nil {
			goal.TargetDate = patch.TargetDate
		}
		if patch.DailyCalorieTarget != nil {
			goal.DailyCalorieTarget = *patch.DailyCalorieTarget
		}
		if patch.ProteinTarget != nil {
			goal.ProteinTarget = *patch.ProteinTarget
		}
		if patch.CarbTarget != nil {
			goal.CarbTarget = *patch.CarbTarget
		}
		if patch.FatTarget != nil {
			goal.FatTarget = *patch.FatTarget
		}
		if patch.IsActive != nil {
			goal.IsActive = *patch.IsActive
		}
		if err := tx.Save(&goal).Error; err != nil {
			return err
		}
		if goal.IsActive {
			return deactivateOthers(tx, goal.UserID, goal.ID)
		}
		return nil
	})
	if err != nil {
		return nil, dbError("update goal", err)
	}
	return &goal, nil
}
