package models

import "github.com/google/uuid"

// newID fills an empty string primary key before insert. The store, not the
// caller, owns identifier assignment.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// AllModels lists every table for AutoMigrate.
func AllModels() []any {
	return []any{
		&UserProfile{},
		&MealRecord{},
		&FoodItem{},
		&NutritionGoal{},
		&ProgressRecord{},
		&Family{},
		&FamilyMember{},
	}
}
