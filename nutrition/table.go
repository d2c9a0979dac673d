// Package nutrition holds the static food tables and the arithmetic that turns
// food labels and quantities into nutrient totals.
package nutrition

import "github.com/atenaxx1412/nutrition-ai-gpTs/models"

// Unknown is returned by Resolve when a label maps to no table entry.
const Unknown = "unknown"

// Per 100 g.
var table = map[string]models.NutritionProfile{
	"rice": {
		Calories: 130, Protein: 2.7, Carbohydrates: 28, Fat: 0.3,
		Fiber: 0.4, Sugar: 0.1, Sodium: 5, Cholesterol: 0,
	},
	"chicken": {
		Calories: 165, Protein: 31, Carbohydrates: 0, Fat: 3.6,
		Fiber: 0, Sugar: 0, Sodium: 74, Cholesterol: 85,
	},
	"broccoli": {
		Calories: 34, Protein: 2.8, Carbohydrates: 7, Fat: 0.4,
		Fiber: 2.6, Sugar: 1.5, Sodium: 33, Cholesterol: 0,
	},
	"salmon": {
		Calories: 208, Protein: 22, Carbohydrates: 0, Fat: 12,
		Fiber: 0, Sugar: 0, Sodium: 59, Cholesterol: 59,
	},
	"apple": {
		Calories: 52, Protein: 0.3, Carbohydrates: 14, Fat: 0.2,
		Fiber: 2.4, Sugar: 10, Sodium: 1, Cholesterol: 0,
	},
}

type category struct {
	name  string
	foods []string
}

// Order matters: the resolver returns the first hit.
var categories = []category{
	{"dish", []string{"rice", "pasta", "noodles", "curry", "stir fry"}},
	{"meat", []string{"chicken", "beef", "pork", "fish", "salmon", "tuna"}},
	{"vegetable", []string{"broccoli", "carrot", "spinach", "tomato", "onion"}},
	{"fruit", []string{"apple", "banana", "orange", "strawberry", "grape"}},
	{"grain", []string{"bread", "rice", "quinoa", "oats", "wheat"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "butter"}},
}

// Common generic labels from image annotation services.
var aliases = []struct{ label, food string }{
	{"staple food", "rice"},
	{"produce", "broccoli"},
	{"animal product", "chicken"},
	{"seafood", "salmon"},
	{"poultry", "chicken"},
	{"citrus", "apple"},
	{"plant", "broccoli"},
}

var foodKeywords = []string{
	"food", "dish", "meal", "cuisine", "ingredient", "vegetable", "fruit",
	"meat", "fish", "chicken", "beef", "pork", "rice", "bread", "pasta",
	"salad", "soup", "dessert", "drink", "beverage", "dairy", "grain",
	"protein", "carbohydrate", "produce", "seafood", "poultry",
}

// Lookup returns the per-100 profile for a canonical food name. The returned
// value is a copy.
func Lookup(name string) (models.NutritionProfile, bool) {
	p, ok := table[name]
	return p, ok
}

// DefaultProfile is used for recognized foods that carry no nutrient data.
func DefaultProfile() models.NutritionProfile {
	return models.NutritionProfile{
		Calories:      100,
		Protein:       5,
		Carbohydrates: 15,
		Fat:           3,
		Fiber:         2,
		Sugar:         5,
		Sodium:        50,
		Cholesterol:   10,
	}
}
