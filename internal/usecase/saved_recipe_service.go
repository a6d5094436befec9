package usecase

import (
	"context"
	"errors"

	"github.com/mealmaster/backend/internal/domain"
)

// SaveRecipeRequest is the payload for adding a recipe to a collection.
type SaveRecipeRequest struct {
	ExternalID     int64          `json:"external_id" binding:"required"`
	Title          string         `json:"title" binding:"required"`
	ImageURL       string         `json:"image_url"`
	ReadyInMinutes *int           `json:"ready_in_minutes"`
	Servings       *int           `json:"servings"`
	SourceURL      string         `json:"source_url"`
	Summary        string         `json:"summary"`
	Ingredients    map[string]any `json:"ingredients"`
	Instructions   map[string]any `json:"instructions"`
	Nutrition      map[string]any `json:"nutrition"`
}

// SavedRecipeService manages per-user recipe collections.
type SavedRecipeService struct {
	store domain.SavedRecipeStore
}

// NewSavedRecipeService creates the saved recipe service.
func NewSavedRecipeService(store domain.SavedRecipeStore) *SavedRecipeService {
	return &SavedRecipeService{store: store}
}

// Save adds a recipe to the user's collection. Saving the same external id
// twice is rejected; a soft-deleted save does not block re-saving.
func (s *SavedRecipeService) Save(ctx context.Context, userID uint, req *SaveRecipeRequest) (*domain.SavedRecipe, error) {
	_, err := s.store.GetSavedRecipeByExternalID(ctx, userID, req.ExternalID)
	if err == nil {
		return nil, domain.ErrRecipeAlreadySaved
	}
	if !errors.Is(err, domain.ErrSavedRecipeNotFound) {
		return nil, err
	}

	recipe := &domain.SavedRecipe{
		UserID:         userID,
		ExternalID:     req.ExternalID,
		Title:          req.Title,
		ImageURL:       req.ImageURL,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		SourceURL:      req.SourceURL,
		Summary:        req.Summary,
		Ingredients:    req.Ingredients,
		Instructions:   req.Instructions,
		Nutrition:      req.Nutrition,
	}
	if err := s.store.CreateSavedRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List returns the user's saved recipes, newest first.
func (s *SavedRecipeService) List(ctx context.Context, userID uint) ([]domain.SavedRecipe, error) {
	return s.store.ListSavedRecipes(ctx, userID)
}

// Delete soft deletes a saved recipe.
func (s *SavedRecipeService) Delete(ctx context.Context, userID, id uint) error {
	return s.store.DeleteSavedRecipe(ctx, userID, id)
}

// ToggleFavorite flips the favorite flag and returns the updated row.
func (s *SavedRecipeService) ToggleFavorite(ctx context.Context, userID, id uint) (*domain.SavedRecipe, error) {
	recipe, err := s.store.GetSavedRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	if err := s.store.UpdateSavedRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}
