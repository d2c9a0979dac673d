package models

import "time"

// BoundingBox is in normalized image coordinates (0..1).
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedFood is one food reported by the recognition service, already
// normalized so every numeric field is populated.
type DetectedFood struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Confidence        float64          `json:"confidence"`
	BoundingBox       *BoundingBox     `json:"boundingBox,omitempty"`
	EstimatedQuantity float64          `json:"estimatedQuantity"`
	Unit              string           `json:"unit"`
	Nutrition         NutritionProfile `json:"nutrition"`
	Category          string           `json:"category"`
}

type ImageAnalysisResult struct {
	DetectedFoods  []DetectedFood   `json:"detectedFoods"`
	TotalNutrition NutritionProfile `json:"totalNutrition"`
	Confidence     float64          `json:"confidence"`
	AnalysisTime   time.Time        `json:"analysisTime"`
	AnalysisNotes  string           `json:"analysisNotes,omitempty"`
}
