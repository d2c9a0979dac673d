package nutrition

import (
	"strings"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
)

type macros struct {
	calories, protein, carbohydrates, fat float64
}

// Foods recognized in typed descriptions, in emission order.
var commonFoods = []struct {
	name string
	m    macros
}{
	{"rice", macros{130, 2.7, 28, 0.3}},
	{"chicken", macros{165, 31, 0, 3.6}},
	{"broccoli", macros{34, 2.8, 7, 0.4}},
	{"salmon", macros{208, 22, 0, 12}},
	{"apple", macros{52, 0.3, 14, 0.2}},
}

const (
	MixedMealName     = "Mixed meal"
	defaultQuantity   = 100
	mixedMealQuantity = 200
)

func mixedMealProfile() models.NutritionProfile {
	return models.NutritionProfile{
		Calories:      300,
		Protein:       15,
		Carbohydrates: 30,
		Fat:           10,
		Fiber:         5,
		Sugar:         8,
		Sodium:        100,
		Cholesterol:   20,
	}
}

// ParseDescription turns a free-text meal description into food items. A
// known food matches when any whitespace-separated token contains its name.
// There is no quantity parsing, negation or multi-word matching. When nothing
// matches a single generic "Mixed meal" item is returned, so the result is
// never empty.
func ParseDescription(description string) []models.FoodItem {
	words := strings.Fields(strings.ToLower(description))

	var items []models.FoodItem
	for _, f := range commonFoods {
		if !anyContains(words, f.name) {
			continue
		}
		items = append(items, models.FoodItem{
			Name:     f.name,
			Quantity: defaultQuantity,
			Unit:     "g",
			Nutrition: models.NutritionProfile{
				Calories:      f.m.calories,
				Protein:       f.m.protein,
				Carbohydrates: f.m.carbohydrates,
				Fat:           f.m.fat,
				Fiber:         2,
				Sugar:         5,
				Sodium:        50,
				Cholesterol:   10,
			},
			Category: "manual",
		})
	}

	if len(items) == 0 {
		items = append(items, models.FoodItem{
			Name:      MixedMealName,
			Quantity:  mixedMealQuantity,
			Unit:      "g",
			Nutrition: mixedMealProfile(),
			Category:  "estimated",
		})
	}
	return items
}

func anyContains(words []string, s string) bool {
	for _, w := range words {
		if strings.Contains(w, s) {
			return true
		}
	}
	return false
}
