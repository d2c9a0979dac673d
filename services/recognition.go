package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"github.com/atenaxx1412/nutrition-ai-gpTs/nutrition"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"
	"github.com/google/uuid"
)

// Recognizer turns a meal photo into detected foods with nutrient estimates.
type Recognizer interface {
	Analyze(ctx context.Context, image []byte) (*models.ImageAnalysisResult, error)
}

const (
	defaultFoodName        = "Unknown Food"
	defaultFoodConfidence  = 0.8
	defaultEstimatedWeight = 100
	defaultOverallConf     = 0.8
)

// FallbackRecognizer asks Primary first and only consults Secondary when
// Primary fails or finds nothing.
type FallbackRecognizer struct {
	Primary   Recognizer
	Secondary Recognizer
	Logger    *slog.Logger
}

func (f *FallbackRecognizer) Analyze(ctx context.Context, image []byte) (*models.ImageAnalysisResult, error) {
	res, err := f.Primary.Analyze(ctx, image)
	if err == nil && len(res.DetectedFoods) > 0 {
		return res, nil
	}
	if err != nil {
		f.logger().Warn("primary recognizer failed, trying fallback", "error", err)
	} else {
		f.logger().Info("primary recognizer found no foods, trying fallback")
	}

	res2, err2 := f.Secondary.Analyze(ctx, image)
	if err2 != nil {
		if err == nil {
			// primary answered, just with nothing in it
			return res, nil
		}
		return nil, err2
	}
	return res2, nil
}

func (f *FallbackRecognizer) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// ParseAnalysisText locates the JSON object in a model reply and normalizes
// it. A reply with no JSON object at all is an error; missing or malformed
// fields inside the object fall back to defaults.
func ParseAnalysisText(text string, now time.Time) (*models.ImageAnalysisResult, error) {
	raw, err := utils.ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode analysis json: %w", err)
	}
	return normalizeAnalysis(doc, now), nil
}

func normalizeAnalysis(doc map[string]any, now time.Time) *models.ImageAnalysisResult {
	rawFoods, _ := doc["detected_foods"].([]any)

	foods := make([]models.DetectedFood, 0, len(rawFoods))
	for _, rf := range rawFoods {
		m, _ := rf.(map[string]any)
		foods = append(foods, normalizeFood(m))
	}

	aggregated := nutrition.AggregateDetected(foods)
	total := aggregated
	if t, ok := doc["total_nutrition"].(map[string]any); ok {
		total = profileWithDefaults(t, aggregated)
	}

	res := &models.ImageAnalysisResult{
		DetectedFoods:  foods,
		TotalNutrition: total,
		Confidence:     numberOr(doc, "overall_confidence", defaultOverallConf),
		AnalysisTime:   now,
	}
	if notes, ok := doc["analysis_notes"].(string); ok {
		res.AnalysisNotes = notes
	}
	return res
}

func normalizeFood(m map[string]any) models.DetectedFood {
	food := models.DetectedFood{
		ID:                uuid.NewString(),
		Name:              stringOr(m, "name", defaultFoodName),
		Confidence:        numberOr(m, "confidence", defaultFoodConfidence),
		EstimatedQuantity: numberOr(m, "estimated_weight", defaultEstimatedWeight),
		Unit:              stringOr(m, "unit", "g"),
		Category:          stringOr(m, "category", nutrition.Unknown),
	}
	n, _ := m["nutrition"].(map[string]any)
	food.Nutrition = profileWithDefaults(n, nutrition.DefaultProfile())
	return food
}

// profileWithDefaults reads the eight nutrient fields from m, taking each
// missing one from def.
func profileWithDefaults(m map[string]any, def models.NutritionProfile) models.NutritionProfile {
	return models.NutritionProfile{
		Calories:      numberOr(m, "calories", def.Calories),
		Protein:       numberOr(m, "protein", def.Protein),
		Carbohydrates: numberOr(m, "carbohydrates", def.Carbohydrates),
		Fat:           numberOr(m, "fat", def.Fat),
		Fiber:         numberOr(m, "fiber", def.Fiber),
		Sugar:         numberOr(m, "sugar", def.Sugar),
		Sodium:        numberOr(m, "sodium", def.Sodium),
		Cholesterol:   numberOr(m, "cholesterol", def.Cholesterol),
	}
}

// numberOr accepts JSON numbers and numeric strings.
func numberOr(m map[string]any, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func stringOr(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}
