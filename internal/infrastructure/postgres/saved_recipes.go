package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mealmaster/backend/internal/domain"
)

// CreateSavedRecipe inserts a saved recipe.
func (s *Store) CreateSavedRecipe(ctx context.Context, recipe *domain.SavedRecipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

// GetSavedRecipe returns a user's saved recipe by id, or ErrSavedRecipeNotFound.
func (s *Store) GetSavedRecipe(ctx context.Context, userID, id uint) (*domain.SavedRecipe, error) {
	var recipe domain.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSavedRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// GetSavedRecipeByExternalID returns a user's live saved recipe for an
// external recipe id, or ErrSavedRecipeNotFound.
func (s *Store) GetSavedRecipeByExternalID(ctx context.Context, userID uint, externalID int64) (*domain.SavedRecipe, error) {
	var recipe domain.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND external_id = ?", userID, externalID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSavedRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListSavedRecipes returns a user's saved recipes, newest first.
func (s *Store) ListSavedRecipes(ctx context.Context, userID uint) ([]domain.SavedRecipe, error) {
	var recipes []domain.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// ListSavedRecipeTitles returns up to limit titles of a user's saved recipes.
func (s *Store) ListSavedRecipeTitles(ctx context.Context, userID uint, limit int) ([]string, error) {
	var titles []string
	err := s.db.WithContext(ctx).
		Model(&domain.SavedRecipe{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// UpdateSavedRecipe persists field changes on a saved recipe.
func (s *Store) UpdateSavedRecipe(ctx context.Context, recipe *domain.SavedRecipe) error {
	return s.db.WithContext(ctx).Save(recipe).Error
}

// DeleteSavedRecipe soft deletes a user's saved recipe.
func (s *Store) DeleteSavedRecipe(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.SavedRecipe{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSavedRecipeNotFound
	}
	return nil
}
