package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
)

type stubImageStore struct {
	url   string
	err   error
	calls int
}

func (s *stubImageStore) Upload(ctx context.Context, keyPrefix string, data []byte) (string, error) {
	s.calls++
	return s.url, s.err
}

func TestAnalyzeImage_Validation(t *testing.T) {
	rec := &stubRecognizer{res: resultWith("rice")}
	svc := NewMealService(newTestDB(t), rec, nil, nil)

	tests := []struct {
		name       string
		in         ImageMealInput
		wantFields []string
	}{
		{"both missing", ImageMealInput{}, []string{"image", "userId"}},
		{"no image", ImageMealInput{UserID: "u1"}, []string{"image"}},
		{"no user", ImageMealInput{Image: []byte{1}}, []string{"userId"}},
		{"bad meal type", ImageMealInput{UserID: "u1", Image: []byte{1}, MealType: "brunch"}, []string{"mealType"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.AnalyzeImage(context.Background(), tt.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(ve.Fields, tt.wantFields) {
				t.Errorf("fields = %v, want %v", ve.Fields, tt.wantFields)
			}
		})
	}
	if rec.calls != 0 {
		t.Errorf("recognizer called %d times on invalid input", rec.calls)
	}
}

func TestAnalyzeImage_StoresMeal(t *testing.T) {
	db := newTestDB(t)
	analysis := resultWith("rice", "chicken")
	analysis.Confidence = 0.93
	store := &stubImageStore{url: "https://cdn.example.com/meal.jpg"}
	svc := NewMealService(db, &stubRecognizer{res: analysis}, store, nil)

	meal, got, err := svc.AnalyzeImage(context.Background(), ImageMealInput{
		UserID: "u1", Image: []byte{0xFF, 0xD8, 0xFF}, Notes: "lunch at work",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != analysis {
		t.Error("analysis result not passed through")
	}
	if meal.ID == "" {
		t.Fatal("meal id not assigned")
	}
	if meal.MealType != models.MealGeneric || meal.AnalysisMethod != models.AnalysisImage {
		t.Errorf("unexpected type/method: %s/%s", meal.MealType, meal.AnalysisMethod)
	}
	if meal.Confidence != 0.93 {
		t.Errorf("confidence = %v, want 0.93", meal.Confidence)
	}
	if meal.ImageURL != store.url {
		t.Errorf("image url = %q", meal.ImageURL)
	}
	if meal.TotalNutrition.Calories != 295 {
		t.Errorf("total calories = %v, want 295", meal.TotalNutrition.Calories)
	}

	stored, err := svc.Get(context.Background(), meal.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.FoodItems) != 2 || stored.FoodItems[0].Name != "rice" || stored.FoodItems[1].Name != "chicken" {
		t.Errorf("stored items wrong: %+v", stored.FoodItems)
	}
	for _, it := range stored.FoodItems {
		if it.Category != "detected" {
			t.Errorf("item %s category = %q, want detected", it.Name, it.Category)
		}
	}
}

func TestAnalyzeImage_UploadFailureStillSaves(t *testing.T) {
	db := newTestDB(t)
	store := &stubImageStore{err: errors.New("denied")}
	svc := NewMealService(db, &stubRecognizer{res: resultWith("apple")}, store, nil)

	meal, _, err := svc.AnalyzeImage(context.Background(), ImageMealInput{UserID: "u1", Image: []byte{1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.calls != 1 || meal.ImageURL != "" {
		t.Errorf("expected one failed upload and empty url, got calls=%d url=%q", store.calls, meal.ImageURL)
	}
}

func TestAnalyzeImage_RecognizerFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db, &stubRecognizer{err: errors.New("timeout")}, nil, nil)

	_, _, err := svc.AnalyzeImage(context.Background(), ImageMealInput{UserID: "u1", Image: []byte{1}})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	var count int64
	db.Model(&models.MealRecord{}).Count(&count)
	if count != 0 {
		t.Errorf("no meal should be stored on failure, found %d", count)
	}
}

func TestLogText(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)

	meal, err := svc.LogText(context.Background(), TextMealInput{
		UserID: "u1", MealType: "Dinner", FoodDescription: "rice and chicken",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal.MealType != models.MealDinner {
		t.Errorf("meal type = %q", meal.MealType)
	}
	if meal.Confidence != 0.7 || meal.AnalysisMethod != models.AnalysisManual {
		t.Errorf("unexpected confidence/method: %v/%s", meal.Confidence, meal.AnalysisMethod)
	}
	if meal.Notes != "rice and chicken" {
		t.Errorf("notes should default to the description, got %q", meal.Notes)
	}
	if meal.TotalNutrition.Calories != 295 {
		t.Errorf("total calories = %v, want 295", meal.TotalNutrition.Calories)
	}
}

func TestLogText_Validation(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)
	_, err := svc.LogText(context.Background(), TextMealInput{FoodDescription: "  "})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(ve.Fields, []string{"userId", "foodDescription"}) {
		t.Errorf("fields = %v", ve.Fields)
	}
}

func TestMealRoundTrip(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)

	created, err := svc.LogText(context.Background(), TextMealInput{UserID: "u1", FoodDescription: "salmon with broccoli and an apple"})
	if err != nil {
		t.Fatalf("LogText: %v", err)
	}
	read, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if !reflect.DeepEqual(read.FoodItems, created.FoodItems) {
		t.Errorf("food items differ:\n got  %+v\n want %+v", read.FoodItems, created.FoodItems)
	}
	if read.TotalNutrition != created.TotalNutrition {
		t.Errorf("totals differ: %+v vs %+v", read.TotalNutrition, created.TotalNutrition)
	}
	if !read.Timestamp.Equal(created.Timestamp) {
		t.Errorf("timestamp differs: %v vs %v", read.Timestamp, created.Timestamp)
	}
}

func TestGetMeal_NotFound(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func seedMeal(t *testing.T, svc *MealService, userID string, ts time.Time, calories float64) *models.MealRecord {
	t.Helper()
	meal := &models.MealRecord{
		UserID:         userID,
		MealType:       models.MealGeneric,
		TotalNutrition: models.NutritionProfile{Calories: calories},
		Timestamp:      ts.UTC(),
		AnalysisMethod: models.AnalysisManual,
	}
	if err := svc.db.Create(meal).Error; err != nil {
		t.Fatalf("seed meal: %v", err)
	}
	return meal
}

func TestListRecentAndRange(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedMeal(t, svc, "u1", base.AddDate(0, 0, i), float64(100*(i+1)))
	}
	seedMeal(t, svc, "u2", base, 999)

	recent, err := svc.ListRecent(context.Background(), "u1", 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(recent))
	}
	if recent[0].TotalNutrition.Calories != 500 || recent[2].TotalNutrition.Calories != 300 {
		t.Errorf("not newest first: %v, %v", recent[0].TotalNutrition.Calories, recent[2].TotalNutrition.Calories)
	}

	all, err := svc.ListRecent(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 meals, got %d", len(all))
	}

	ranged, err := svc.ListByDateRange(context.Background(), "u1", base.AddDate(0, 0, 1).Add(-time.Hour), base.AddDate(0, 0, 3).Add(time.Hour))
	if err != nil {
		t.Fatalf("ListByDateRange: %v", err)
	}
	if len(ranged) != 3 || ranged[0].TotalNutrition.Calories != 400 {
		t.Errorf("unexpected range result: %d meals", len(ranged))
	}

	if _, err := svc.ListByDateRange(context.Background(), "u1", base, base.AddDate(0, 0, -1)); err == nil {
		t.Error("expected validation error for inverted range")
	}
}

func TestUpdateMeal(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)
	ctx := context.Background()
	meal, err := svc.LogText(ctx, TextMealInput{UserID: "u1", FoodDescription: "rice"})
	if err != nil {
		t.Fatalf("LogText: %v", err)
	}

	notes := "extra large"
	snack := models.MealSnack
	items := []models.FoodItem{
		{Name: "chicken", Quantity: 200, Unit: "g", Nutrition: models.NutritionProfile{Calories: 165, Protein: 31}},
	}
	updated, err := svc.Update(ctx, meal.ID, MealPatch{Notes: &notes, MealType: &snack, FoodItems: &items})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Notes != notes || updated.MealType != models.MealSnack {
		t.Errorf("fields not patched: %+v", updated)
	}
	if len(updated.FoodItems) != 1 || updated.FoodItems[0].Name != "chicken" {
		t.Errorf("items not replaced: %+v", updated.FoodItems)
	}
	if updated.TotalNutrition.Calories != 330 || updated.TotalNutrition.Protein != 62 {
		t.Errorf("total not recomputed: %+v", updated.TotalNutrition)
	}
	if updated.Confidence != 0.7 {
		t.Errorf("untouched field changed: confidence %v", updated.Confidence)
	}

	if _, err := svc.Update(ctx, "missing", MealPatch{Notes: &notes}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMeal(t *testing.T) {
	svc := NewMealService(newTestDB(t), nil, nil, nil)
	ctx := context.Background()
	meal, err := svc.LogText(ctx, TextMealInput{UserID: "u1", FoodDescription: "apple"})
	if err != nil {
		t.Fatalf("LogText: %v", err)
	}

	if err := svc.Delete(ctx, meal.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	var items int64
	svc.db.Model(&models.FoodItem{}).Where("meal_id = ?", meal.ID).Count(&items)
	if items != 0 {
		t.Errorf("food items left behind: %d", items)
	}
	if err := svc.Delete(ctx, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
