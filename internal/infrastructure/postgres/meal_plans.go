package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mealmaster/backend/internal/domain"
)

// CreateMealPlan inserts a meal plan entry.
func (s *Store) CreateMealPlan(ctx context.Context, plan *domain.MealPlan) error {
	return s.db.WithContext(ctx).Create(plan).Error
}

// GetMealPlan returns a user's meal plan by id with its recipe preloaded,
// or ErrMealPlanNotFound.
func (s *Store) GetMealPlan(ctx context.Context, userID, id uint) (*domain.MealPlan, error) {
	var plan domain.MealPlan
	err := s.db.WithContext(ctx).
		Preload("SavedRecipe", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListMealPlans returns a user's meal plans within [start, end], with
// recipes preloaded. Soft-deleted recipes still resolve so existing plans
// keep their titles.
func (s *Store) ListMealPlans(ctx context.Context, userID uint, start, end time.Time) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	err := s.db.WithContext(ctx).
		Preload("SavedRecipe", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// UpdateMealPlan persists field changes on a meal plan.
func (s *Store) UpdateMealPlan(ctx context.Context, plan *domain.MealPlan) error {
	return s.db.WithContext(ctx).Omit("SavedRecipe").Save(plan).Error
}

// DeleteMealPlan removes a user's meal plan.
func (s *Store) DeleteMealPlan(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.MealPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMealPlanNotFound
	}
	return nil
}
