package nutrition

import (
	"math"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
)

// Portion is a per-100 profile eaten in some quantity.
type Portion struct {
	Profile  models.NutritionProfile
	Quantity float64
}

// Sum scales every portion by quantity/100, adds the eight required fields and
// rounds each to one decimal. Micronutrients are not summed. Quantities are
// not validated: zero or negative values flow straight into the total.
func Sum(portions []Portion) models.NutritionProfile {
	var total models.NutritionProfile
	for _, p := range portions {
		s := p.Profile.Scale(p.Quantity / 100)
		total.Calories += s.Calories
		total.Protein += s.Protein
		total.Carbohydrates += s.Carbohydrates
		total.Fat += s.Fat
		total.Fiber += s.Fiber
		total.Sugar += s.Sugar
		total.Sodium += s.Sodium
		total.Cholesterol += s.Cholesterol
	}
	return models.NutritionProfile{
		Calories:      Round1(total.Calories),
		Protein:       Round1(total.Protein),
		Carbohydrates: Round1(total.Carbohydrates),
		Fat:           Round1(total.Fat),
		Fiber:         Round1(total.Fiber),
		Sugar:         Round1(total.Sugar),
		Sodium:        Round1(total.Sodium),
		Cholesterol:   Round1(total.Cholesterol),
	}
}

// Aggregate totals the nutrition of a meal's food items.
func Aggregate(items []models.FoodItem) models.NutritionProfile {
	portions := make([]Portion, 0, len(items))
	for _, it := range items {
		portions = append(portions, Portion{Profile: it.Nutrition, Quantity: it.Quantity})
	}
	return Sum(portions)
}

// AggregateDetected totals recognition output the same way.
func AggregateDetected(foods []models.DetectedFood) models.NutritionProfile {
	portions := make([]Portion, 0, len(foods))
	for _, f := range foods {
		portions = append(portions, Portion{Profile: f.Nutrition, Quantity: f.EstimatedQuantity})
	}
	return Sum(portions)
}

// Round1 rounds half away from zero to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
