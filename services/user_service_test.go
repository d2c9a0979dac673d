package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
)

func newUserService(t *testing.T) (*UserService, *MealService, *GoalService) {
	t.Helper()
	db := newTestDB(t)
	meals := NewMealService(db, nil, nil, nil)
	goals := NewGoalService(db)
	return NewUserService(db, meals, goals), meals, goals
}

func validProfile() ProfileInput {
	return ProfileInput{
		Name:          "Aki",
		Age:           34,
		Gender:        "female",
		Height:        162,
		Weight:        55,
		ActivityLevel: "moderate",
		Allergies:     []string{"peanut"},
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	svc, _, _ := newUserService(t)

	in := validProfile()
	in.Weight = 0
	in.ActivityLevel = ""
	_, err := svc.Create(context.Background(), in)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(ve.Fields, []string{"weight", "activityLevel"}) {
		t.Errorf("fields = %v", ve.Fields)
	}
	if ve.Message != "Missing required fields: weight, activityLevel" {
		t.Errorf("message = %q", ve.Message)
	}
}

func TestCreateUser_InvalidEnum(t *testing.T) {
	svc, _, _ := newUserService(t)
	in := validProfile()
	in.Gender = "robot"
	_, err := svc.Create(context.Background(), in)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Fields[0] != "gender" {
		t.Fatalf("expected gender ValidationError, got %v", err)
	}
}

func TestCreateGetUpdateUser(t *testing.T) {
	svc, _, _ := newUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validProfile())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("id/timestamps not assigned: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Aki" || len(got.Allergies) != 1 || got.Allergies[0] != "peanut" {
		t.Errorf("unexpected profile: %+v", got)
	}
	if got.DietaryRestrictions == nil || len(got.DietaryRestrictions) != 0 {
		t.Errorf("dietary restrictions should be an empty list, got %#v", got.DietaryRestrictions)
	}

	weight := 53.5
	restrictions := []string{"vegetarian"}
	updated, err := svc.Update(ctx, created.ID, ProfilePatch{Weight: &weight, DietaryRestrictions: &restrictions})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Weight != 53.5 || updated.Name != "Aki" || updated.DietaryRestrictions[0] != "vegetarian" {
		t.Errorf("patch not applied: %+v", updated)
	}

	if _, err := svc.Update(ctx, "nope", ProfilePatch{Weight: &weight}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserOverview(t *testing.T) {
	svc, meals, goals := newUserService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, validProfile())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	seedMeal(t, meals, user.ID, now.Add(-1*time.Minute), 500)
	seedMeal(t, meals, user.ID, now.Add(-2*time.Minute), 301)
	seedMeal(t, meals, user.ID, now.Add(-30*24*time.Hour), 9999)

	if _, err := goals.Create(ctx, user.ID, GoalInput{Type: models.GoalMaintenance, DailyCalorieTarget: 2000, IsActive: true}); err != nil {
		t.Fatalf("goal: %v", err)
	}

	ov, err := svc.Overview(ctx, user.ID)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if ov.Profile.ID != user.ID {
		t.Errorf("wrong profile")
	}
	if ov.Stats.TotalMeals != 2 || len(ov.RecentMeals) != 2 {
		t.Errorf("expected 2 recent meals, got %d", ov.Stats.TotalMeals)
	}
	if ov.ActiveGoal == nil || ov.ActiveGoal.DailyCalorieTarget != 2000 {
		t.Errorf("active goal missing: %+v", ov.ActiveGoal)
	}
	// both meals may straddle midnight; either way the average is sane
	if ov.Stats.AverageDailyCalories != 801 && ov.Stats.AverageDailyCalories != 401 {
		t.Errorf("averageDailyCalories = %v", ov.Stats.AverageDailyCalories)
	}

	if _, err := svc.Overview(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAverageDailyCalories(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC)
	meals := []models.MealRecord{
		{Timestamp: day1, TotalNutrition: models.NutritionProfile{Calories: 400}},
		{Timestamp: day1.Add(4 * time.Hour), TotalNutrition: models.NutritionProfile{Calories: 601}},
		{Timestamp: day2, TotalNutrition: models.NutritionProfile{Calories: 800}},
	}
	// (1001 + 800) / 2 = 900.5
	if got := AverageDailyCalories(meals); got != 901 {
		t.Errorf("AverageDailyCalories = %v, want 901", got)
	}
	if got := AverageDailyCalories(nil); got != 0 {
		t.Errorf("empty = %v, want 0", got)
	}
}
