package services

import (
	"context"
	"math"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
)

// AnalyticsService compares logged intake against the active goal.
type AnalyticsService struct {
	meals *MealService
	goals *GoalService
}

func NewAnalyticsService(meals *MealService, goals *GoalService) *AnalyticsService {
	return &AnalyticsService{meals: meals, goals: goals}
}

type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type DayOverview struct {
	Date    string            `json:"date"`
	Meals   int               `json:"meals"`
	Metrics map[string]Metric `json:"metrics"`
}

type WeeklyOverview struct {
	WeekStart string        `json:"weekStart"`
	GoalID    string        `json:"goalId,omitempty"`
	Days      []DayOverview `json:"days"`
}

// WeeklyOverview reports seven UTC days starting at weekStart. Targets come
// from the goal active now; without one every target and percent is zero.
func (s *AnalyticsService) WeeklyOverview(ctx context.Context, userID string, weekStart time.Time) (*WeeklyOverview, error) {
	from := dayStart(weekStart.UTC())
	to := dayEnd(from.AddDate(0, 0, 6))

	meals, err := s.meals.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	var target models.NutritionGoal
	if goal != nil {
		target = *goal
	}

	type dayTotal struct {
		meals int
		sum   models.NutritionProfile
	}
	idx := map[string]*dayTotal{}
	for _, m := range meals {
		key := m.Timestamp.UTC().Format("2006-01-02")
		d, ok := idx[key]
		if !ok {
			d = &dayTotal{}
			idx[key] = d
		}
		d.meals++
		d.sum.Calories += m.TotalNutrition.Calories
		d.sum.Protein += m.TotalNutrition.Protein
		d.sum.Carbohydrates += m.TotalNutrition.Carbohydrates
		d.sum.Fat += m.TotalNutrition.Fat
	}

	out := &WeeklyOverview{WeekStart: from.Format("2006-01-02")}
	if goal != nil {
		out.GoalID = goal.ID
	}
	for i := 0; i < 7; i++ {
		key := from.AddDate(0, 0, i).Format("2006-01-02")
		d := idx[key]
		if d == nil {
			d = &dayTotal{}
		}
		out.Days = append(out.Days, DayOverview{
			Date:  key,
			Meals: d.meals,
			Metrics: map[string]Metric{
				"calories":      metric(d.sum.Calories, target.DailyCalorieTarget),
				"protein":       metric(d.sum.Protein, target.ProteinTarget),
				"carbohydrates": metric(d.sum.Carbohydrates, target.CarbTarget),
				"fat":           metric(d.sum.Fat, target.FatTarget),
			},
		})
	}
	return out, nil
}

func metric(actual, target float64) Metric {
	return Metric{Actual: round2(actual), Target: round2(target), Percent: pct(actual, target)}
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return round2((actual / goal) * 100.0)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
