package services

import (
	"context"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FamilyService struct {
	db *gorm.DB
}

func NewFamilyService(db *gorm.DB) *FamilyService {
	return &FamilyService{db: db}
}

type FamilyMemberInput struct {
	UserID   string            `json:"userId"`
	Role     models.FamilyRole `json:"role"`
	Nickname string            `json:"nickname"`
}

type FamilyInput struct {
	Name        string              `json:"name"`
	AdminUserID string              `json:"adminUserId"`
	Members     []FamilyMemberInput `json:"members"`
	SharedGoals []models.SharedGoal `json:"sharedGoals"`
	MealPlans   []models.MealPlan   `json:"mealPlans"`
}

// Create stores a family. The admin is always a member with the admin role,
// even when the request leaves them out of the member list.
func (s *FamilyService) Create(ctx context.Context, in FamilyInput) (*models.Family, error) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.AdminUserID) == "" {
		missing = append(missing, "adminUserId")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing...)
	}

	now := time.Now().UTC()
	admin := models.FamilyMember{UserID: in.AdminUserID, Role: models.RoleAdmin, JoinedAt: now}
	members := []models.FamilyMember{admin}
	seen := map[string]bool{in.AdminUserID: true}
	for _, m := range in.Members {
		if m.UserID == in.AdminUserID {
			members[0].Nickname = m.Nickname
			continue
		}
		if m.UserID == "" || seen[m.UserID] {
			continue
		}
		seen[m.UserID] = true
		role := m.Role
		if role != models.RoleAdmin {
			role = models.RoleMember
		}
		members = append(members, models.FamilyMember{
			UserID:   m.UserID,
			Role:     role,
			Nickname: m.Nickname,
			JoinedAt: now,
		})
	}

	family := &models.Family{
		Name:        in.Name,
		AdminUserID: in.AdminUserID,
		Members:     members,
		SharedGoals: datatypes.JSONSlice[models.SharedGoal](in.SharedGoals),
		MealPlans:   datatypes.JSONSlice[models.MealPlan](in.MealPlans),
	}
	if err := s.db.WithContext(ctx).Create(family).Error; err != nil {
		return nil, upstream("create family", err)
	}
	return family, nil
}

func (s *FamilyService) Get(ctx context.Context, id string) (*models.Family, error) {
	if strings.TrimSpace(id) == "" {
		return nil, missingFields("familyId")
	}
	var family models.Family
	err := s.db.WithContext(ctx).Preload("Members").First(&family, "id = ?", id).Error
	if err != nil {
		return nil, dbError("get family", err)
	}
	return &family, nil
}

// ListForUser returns every family the user belongs to.
func (s *FamilyService) ListForUser(ctx context.Context, userID string) ([]models.Family, error) {
	var families []models.Family
	err := s.db.WithContext(ctx).
		Preload("Members").
		Where("id IN (?)", s.db.Model(&models.FamilyMember{}).Select("family_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&families).Error
	if err != nil {
		return nil, upstream("list families", err)
	}
	return families, nil
}
