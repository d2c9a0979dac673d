package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

type UserProfile struct {
	ID                  string                      `gorm:"primaryKey;size:36" json:"id"`
	Name                string                      `gorm:"not null" json:"name"`
	Email               string                      `gorm:"index" json:"email,omitempty"`
	Age                 int                         `json:"age"`
	Gender              Gender                      `gorm:"size:16" json:"gender"`
	Height              float64                     `json:"height"` // cm
	Weight              float64                     `json:"weight"` // kg
	ActivityLevel       ActivityLevel               `gorm:"size:16" json:"activityLevel"`
	DietaryRestrictions datatypes.JSONSlice[string] `json:"dietaryRestrictions"`
	Allergies           datatypes.JSONSlice[string] `json:"allergies"`
	CreatedAt           time.Time                   `json:"createdAt"`
	UpdatedAt           time.Time                   `json:"updatedAt"`
}

func (UserProfile) TableName() string { return "users" }

func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	if u.DietaryRestrictions == nil {
		u.DietaryRestrictions = datatypes.JSONSlice[string]{}
	}
	if u.Allergies == nil {
		u.Allergies = datatypes.JSONSlice[string]{}
	}
	return nil
}
