package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const recentMealsWindow = 7 * 24 * time.Hour

type UserService struct {
	db    *gorm.DB
	meals *MealService
	goals *GoalService
}

func NewUserService(db *gorm.DB, meals *MealService, goals *GoalService) *UserService {
	return &UserService{db: db, meals: meals, goals: goals}
}

// ProfileInput is the body of a user creation request. Zero values count as
// missing, so an age of 0 is rejected like an absent one.
type ProfileInput struct {
	Name                string   `json:"name"`
	Email               string   `json:"email"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Height              float64  `json:"height"`
	Weight              float64  `json:"weight"`
	ActivityLevel       string   `json:"activityLevel"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
}

// ProfilePatch overwrites whichever fields are present. Values are stored as
// given without range checks.
type ProfilePatch struct {
	Name                *string               `json:"name"`
	Email               *string               `json:"email"`
	Age                 *int                  `json:"age"`
	Gender              *models.Gender        `json:"gender"`
	Height              *float64              `json:"height"`
	Weight              *float64              `json:"weight"`
	ActivityLevel       *models.ActivityLevel `json:"activityLevel"`
	DietaryRestrictions *[]string             `json:"dietaryRestrictions"`
	Allergies           *[]string             `json:"allergies"`
}

type UserStats struct {
	TotalMeals           int     `json:"totalMeals"`
	AverageDailyCalories float64 `json:"averageDailyCalories"`
}

type UserOverview struct {
	Profile     *models.UserProfile   `json:"profile"`
	RecentMeals []models.MealRecord   `json:"recentMeals"`
	ActiveGoal  *models.NutritionGoal `json:"activeGoal"`
	Stats       UserStats             `json:"stats"`
}

func (in ProfileInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Age == 0 {
		missing = append(missing, "age")
	}
	if in.Gender == "" {
		missing = append(missing, "gender")
	}
	if in.Height == 0 {
		missing = append(missing, "height")
	}
	if in.Weight == 0 {
		missing = append(missing, "weight")
	}
	if in.ActivityLevel == "" {
		missing = append(missing, "activityLevel")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}

	if !models.Gender(in.Gender).Valid() {
		return invalidField("gender", "Invalid gender: %s", in.Gender)
	}
	if !models.ActivityLevel(in.ActivityLevel).Valid() {
		return invalidField("activityLevel", "Invalid activityLevel: %s", in.ActivityLevel)
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, in ProfileInput) (*models.UserProfile, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	user := &models.UserProfile{
		Name:                in.Name,
		Email:               in.Email,
		Age:                 in.Age,
		Gender:              models.Gender(in.Gender),
		Height:              in.Height,
		Weight:              in.Weight,
		ActivityLevel:       models.ActivityLevel(in.ActivityLevel),
		DietaryRestrictions: datatypes.JSONSlice[string](in.DietaryRestrictions),
		Allergies:           datatypes.JSONSlice[string](in.Allergies),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, upstream("create user", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.UserProfile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missingFields("userId")
	}
	var user models.UserProfile
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, dbError("get user", err)
	}
	return &user, nil
}

func (s *UserService) Update(ctx context.Context, id string, patch ProfilePatch) (*models.UserProfile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Age != nil {
		user.Age = *patch.Age
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Height != nil {
		user.Height = *patch.Height
	}
	if patch.Weight != nil {
		user.Weight = *patch.Weight
	}
	if patch.ActivityLevel != nil {
		user.ActivityLevel = *patch.ActivityLevel
	}
	if patch.DietaryRestrictions != nil {
		user.DietaryRestrictions = datatypes.JSONSlice[string](*patch.DietaryRestrictions)
	}
	if patch.Allergies != nil {
		user.Allergies = datatypes.JSONSlice[string](*patch.Allergies)
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, upstream("update user", err)
	}
	return user, nil
}

// Overview bundles the profile with the last seven days of meals and the
// active goal.
func (s *UserService) Overview(ctx context.Context, id string) (*UserOverview, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meals, err := s.meals.ListByDateRange(ctx, id, now.Add(-recentMealsWindow), now)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.Active(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserOverview{
		Profile:     user,
		RecentMeals: meals,
		ActiveGoal:  goal,
		Stats: UserStats{
			TotalMeals:           len(meals),
			AverageDailyCalories: AverageDailyCalories(meals),
		},
	}, nil
}

// AverageDailyCalories sums meal calories per UTC calendar day and averages
// over the days that have at least one meal, rounded to a whole number.
func AverageDailyCalories(meals []models.MealRecord) float64 {
	if len(meals) == 0 {
		return 0
	}
	byDay := map[string]float64{}
	for _, m := range meals {
		byDay[m.Timestamp.UTC().Format("2006-01-02")] += m.TotalNutrition.Calories
	}
	var total float64
	for _, c := range byDay {
		total += c
	}
	return math.Round(total / float64(len(byDay)))
}
