package models

// NutritionProfile holds nutrient amounts. Table entries are per 100 units of
// the food's unit (grams by convention).
type NutritionProfile struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`       // g
	Carbohydrates float64 `json:"carbohydrates"` // g
	Fat           float64 `json:"fat"`           // g
	Fiber         float64 `json:"fiber"`         // g
	Sugar         float64 `json:"sugar"`         // g
	Sodium        float64 `json:"sodium"`        // mg
	Cholesterol   float64 `json:"cholesterol"`   // mg

	VitaminC *float64 `json:"vitaminC,omitempty"` // mg
	Calcium  *float64 `json:"calcium,omitempty"`  // mg
	Iron     *float64 `json:"iron,omitempty"`     // mg
}

// Scale returns a copy with the eight required fields multiplied by factor.
// Micronutrients are carried over unscaled.
func (p NutritionProfile) Scale(factor float64) NutritionProfile {
	out := p
	out.Calories *= factor
	out.Protein *= factor
	out.Carbohydrates *= factor
	out.Fat *= factor
	out.Fiber *= factor
	out.Sugar *= factor
	out.Sodium *= factor
	out.Cholesterol *= factor
	return out
}
