package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FamilyRole string

const (
	RoleAdmin  FamilyRole = "admin"
	RoleMember FamilyRole = "member"
)

type Family struct {
	ID          string                          `gorm:"primaryKey;size:36" json:"id"`
	Name        string                          `gorm:"not null" json:"name"`
	AdminUserID string                          `gorm:"size:36;index" json:"adminUserId"`
	Members     []FamilyMember                  `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE" json:"members"`
	SharedGoals datatypes.JSONSlice[SharedGoal] `json:"sharedGoals"`
	MealPlans   datatypes.JSONSlice[MealPlan]   `json:"mealPlans"`
	CreatedAt   time.Time                       `json:"createdAt"`
	UpdatedAt   time.Time                       `json:"updatedAt"`
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	if f.SharedGoals == nil {
		f.SharedGoals = datatypes.JSONSlice[SharedGoal]{}
	}
	if f.MealPlans == nil {
		f.MealPlans = datatypes.JSONSlice[MealPlan]{}
	}
	return nil
}

// FamilyMember is stored in its own table so families can be looked up by
// member.
type FamilyMember struct {
	FamilyID string     `gorm:"primaryKey;size:36" json:"-"`
	UserID   string     `gorm:"primaryKey;size:36;index" json:"userId"`
	Role     FamilyRole `gorm:"size:16" json:"role"`
	Nickname string     `json:"nickname"`
	JoinedAt time.Time  `json:"joinedAt"`
}

type SharedGoal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetDate   time.Time `json:"targetDate"`
	Participants []string  `json:"participants"`
	Progress     float64   `json:"progress"` // 0-100
	CreatedAt    time.Time `json:"createdAt"`
}

type MealPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Duration    int           `json:"duration"` // days
	Meals       []PlannedMeal `json:"meals"`
	TargetUsers []string      `json:"targetUsers"`
	CreatedBy   string        `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type PlannedMeal struct {
	Day          int        `json:"day"`
	MealType     MealType   `json:"mealType"`
	FoodItems    []FoodItem `json:"foodItems"`
	Instructions string     `json:"instructions,omitempty"`
}
