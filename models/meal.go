package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealGeneric   MealType = "meal"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealGeneric:
		return true
	}
	return false
}

type AnalysisMethod string

const (
	AnalysisImage   AnalysisMethod = "image"
	AnalysisManual  AnalysisMethod = "manual"
	AnalysisBarcode AnalysisMethod = "barcode"
)

// MealRecord is one logged meal with its items and the summed nutrition.
type MealRecord struct {
	ID             string           `gorm:"primaryKey;size:36" json:"id"`
	UserID         string           `gorm:"size:36;index;not null" json:"userId"`
	MealType       MealType         `gorm:"size:16" json:"mealType"`
	FoodItems      []FoodItem       `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"foodItems"`
	TotalNutrition NutritionProfile `gorm:"embedded;embeddedPrefix:total_" json:"totalNutrition"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	Notes          string           `gorm:"type:text" json:"notes,omitempty"`
	Timestamp      time.Time        `gorm:"index" json:"timestamp"`
	Confidence     float64          `json:"confidence"`
	AnalysisMethod AnalysisMethod   `gorm:"size:16" json:"analysisMethod"`
}

func (m *MealRecord) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	for i := range m.FoodItems {
		m.FoodItems[i].Position = i
	}
	return nil
}

// FoodItem is a single food inside a meal. Position keeps the submitted order.
type FoodItem struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	MealID    string           `gorm:"size:36;index" json:"-"`
	Position  int              `json:"-"`
	Name      string           `json:"name"`
	Quantity  float64          `json:"quantity"`
	Unit      string           `gorm:"size:16" json:"unit"`
	Nutrition NutritionProfile `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	Category  string           `json:"category"`
	Brand     string           `json:"brand,omitempty"`
}

func (FoodItem) TableName() string { return "meal_food_items" }

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	return nil
}
