// services/meal_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"github.com/atenaxx1412/nutrition-ai-gpTs/nutrition"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"
	"gorm.io/gorm"
)

const (
	DefaultMealListLimit = 50
	textMealConfidence   = 0.7
)

type MealService struct {
	db         *gorm.DB
	recognizer Recognizer
	images     utils.ImageStore
	logger     *slog.Logger
}

// NewMealService wires the meal store. images may be nil, in which case
// photos are analyzed but not kept.
func NewMealService(db *gorm.DB, recognizer Recognizer, images utils.ImageStore, logger *slog.Logger) *MealService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MealService{db: db, recognizer: recognizer, images: images, logger: logger}
}

type ImageMealInput struct {
	UserID   string
	MealType string
	Notes    string
	Image    []byte
}

type TextMealInput struct {
	UserID          string `json:"userId"`
	MealType        string `json:"mealType"`
	FoodDescription string `json:"foodDescription"`
	Notes           string `json:"notes"`
}

// MealPatch overwrites whichever fields are set. Replacing FoodItems
// recomputes TotalNutrition unless a total is supplied as well.
type MealPatch struct {
	MealType       *models.MealType         `json:"mealType"`
	FoodItems      *[]models.FoodItem       `json:"foodItems"`
	TotalNutrition *models.NutritionProfile `json:"totalNutrition"`
	ImageURL       *string                  `json:"imageUrl"`
	Notes          *string                  `json:"notes"`
	Timestamp      *time.Time               `json:"timestamp"`
	Confidence     *float64                 `json:"confidence"`
}

func parseMealType(s string) (models.MealType, error) {
	if strings.TrimSpace(s) == "" {
		return models.MealGeneric, nil
	}
	t := models.MealType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", invalidField("mealType", "Invalid mealType: %s", s)
	}
	return t, nil
}

// AnalyzeImage recognizes the foods in a photo and stores them as one meal.
func (s *MealService) AnalyzeImage(ctx context.Context, in ImageMealInput) (*models.MealRecord, *models.ImageAnalysisResult, error) {
	var missing []string
	if len(in.Image) == 0 {
		missing = append(missing, "image")
	}
	if strings.TrimSpace(in.UserID) == "" {
		missing = append(missing, "userId")
	}
	if len(missing) > 0 {
		return nil, nil, missingFields(missing...)
	}
	mealType, err := parseMealType(in.MealType)
	if err != nil {
		return nil, nil, err
	}

	analysis, err := s.recognizer.Analyze(ctx, in.Image)
	if err != nil {
		var ue *UpstreamError
		if !errors.As(err, &ue) {
			err = upstream("recognize image", err)
		}
		return nil, nil, err
	}

	items := make([]models.FoodItem, 0, len(analysis.DetectedFoods))
	for _, f := range analysis.DetectedFoods {
		items = append(items, models.FoodItem{
			Name:      f.Name,
			Quantity:  f.EstimatedQuantity,
			Unit:      f.Unit,
			Nutrition: f.Nutrition,
			Category:  "detected",
		})
	}

	meal := &models.MealRecord{
		UserID:         in.UserID,
		MealType:       mealType,
		FoodItems:      items,
		TotalNutrition: nutrition.Aggregate(items),
		Notes:          in.Notes,
		Timestamp:      time.Now().UTC(),
		Confidence:     analysis.Confidence,
		AnalysisMethod: models.AnalysisImage,
	}

	if s.images != nil {
		url, err := s.images.Upload(ctx, in.UserID, in.Image)
		if err != nil {
			s.logger.Warn("meal image upload failed, saving meal without image", "user_id", in.UserID, "error", err)
		} else {
			meal.ImageURL = url
		}
	}

	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, nil, upstream("create meal", err)
	}
	return meal, analysis, nil
}

// LogText stores a meal described in free text.
func (s *MealService) LogText(ctx context.Context, in TextMealInput) (*models.MealRecord, error) {
	var missing []string
	if strings.TrimSpace(in.UserID) == "" {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(in.FoodDescription) == "" {
		missing = append(missing, "foodDescription")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}
	mealType, err := parseMealType(in.MealType)
	if err != nil {
		return nil, err
	}

	items := nutrition.ParseDescription(in.FoodDescription)
	notes := in.Notes
	if notes == "" {
		notes = in.FoodDescription
	}

	meal := &models.MealRecord{
		UserID:         in.UserID,
		MealType:       mealType,
		FoodItems:      items,
		TotalNutrition: nutrition.Aggregate(items),
		Notes:          notes,
		Timestamp:      time.Now().UTC(),
		Confidence:     textMealConfidence,
		AnalysisMethod: models.AnalysisManual,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, upstream("create meal", err)
	}
	return meal, nil
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Preload("FoodItems", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

func (s *MealService) Get(ctx context.Context, id string) (*models.MealRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missingFields("mealId")
	}
	var meal models.MealRecord
	err := preloadItems(s.db.WithContext(ctx)).First(&meal, "id = ?", id).Error
	if err != nil {
		return nil, dbError("get meal", err)
	}
	return &meal, nil
}

// ListRecent returns a user's newest meals first.
func (s *MealService) ListRecent(ctx context.Context, userID string, limit int) ([]models.MealRecord, error) {
	if limit <= 0 {
		limit = DefaultMealListLimit
	}
	var meals []models.MealRecord
	err := preloadItems(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, upstream("list meals", err)
	}
	return meals, nil
}

// ListByDateRange returns meals with from <= timestamp <= to, newest first.
func (s *MealService) ListByDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.MealRecord, error) {
	if to.Before(from) {
		return nil, invalidField("to", "to must not be before from")
	}
	var meals []models.MealRecord
	err := preloadItems(s.db.WithContext(ctx)).
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, from.UTC(), to.UTC()).
		Order("timestamp DESC").
		Find(&meals).Error
	if err != nil {
		return nil, upstream("list meals by date", err)
	}
	return meals, nil
}

func (s *MealService) Update(ctx context.Context, id string, patch MealPatch) (*models.MealRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missingFields("mealId")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.MealRecord
		if err := tx.First(&meal, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if patch.MealType != nil {
			updates["meal_type"] = *patch.MealType
		}
		if patch.ImageURL != nil {
			updates["image_url"] = *patch.ImageURL
		}
		if patch.Notes != nil {
			updates["notes"] = *patch.Notes
		}
		if patch.Timestamp != nil {
			updates["timestamp"] = patch.Timestamp.UTC()
		}
		if patch.Confidence != nil {
			updates["confidence"] = *patch.Confidence
		}

		total := patch.TotalNutrition
		if patch.FoodItems != nil {
			items := make([]models.FoodItem, len(*patch.FoodItems))
			for i, it := range *patch.FoodItems {
				it.ID = ""
				it.MealID = id
				it.Position = i
				items[i] = it
			}
			if err := tx.Where("meal_id = ?", id).Delete(&models.FoodItem{}).Error; err != nil {
				return err
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
			if total == nil {
				agg := nutrition.Aggregate(items)
				total = &agg
			}
		}
		if total != nil {
			for k, v := range totalColumns(*total) {
				updates[k] = v
			}
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&meal).Updates(updates).Error
	})
	if err != nil {
		return nil, dbError("update meal", err)
	}
	return s.Get(ctx, id)
}

func totalColumns(p models.NutritionProfile) map[string]any {
	return map[string]any{
		"total_calories":      p.Calories,
		"total_protein":       p.Protein,
		"total_carbohydrates": p.Carbohydrates,
		"total_fat":           p.Fat,
		"total_fiber":         p.Fiber,
		"total_sugar":         p.Sugar,
		"total_sodium":        p.Sodium,
		"total_cholesterol":   p.Cholesterol,
		"total_vitamin_c":     p.VitaminC,
		"total_calcium":       p.Calcium,
		"total_iron":          p.Iron,
	}
}

func (s *MealService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return missingFields("mealId")
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.MealRecord{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("meal_id = ?", id).Delete(&models.FoodItem{}).Error
	})
	if err != nil {
		return dbError(fmt.Sprintf("delete meal %s", id), err)
	}
	return nil
}
