package usecase

import (
	"context"
	"time"

	"github.com/mealmaster/backend/internal/domain"
)

// MealPlanCreateRequest is the payload for scheduling a recipe.
type MealPlanCreateRequest struct {
	SavedRecipeID uint   `json:"saved_recipe_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	MealType      string `json:"meal_type" binding:"required"`
	Servings      int    `json:"servings"`
	Notes         string `json:"notes"`
}

// MealPlanUpdateRequest carries optional field updates.
type MealPlanUpdateRequest struct {
	Servings *int    `json:"servings"`
	Notes    *string `json:"notes"`
}

// MealPlanEntry is a meal plan row with its recipe display fields resolved.
type MealPlanEntry struct {
	ID            uint   `json:"id"`
	SavedRecipeID uint   `json:"saved_recipe_id"`
	Date          string `json:"date"`
	MealType      string `json:"meal_type"`
	Servings      int    `json:"servings"`
	Notes         string `json:"notes,omitempty"`
	RecipeTitle   string `json:"recipe_title"`
	RecipeImage   string `json:"recipe_image"`
}

// MealPlanService manages weekly meal plans.
type MealPlanService struct {
	store domain.MealPlanStore
	saved domain.SavedRecipeStore
}

// NewMealPlanService creates the meal plan service.
func NewMealPlanService(store domain.MealPlanStore, saved domain.SavedRecipeStore) *MealPlanService {
	return &MealPlanService{store: store, saved: saved}
}

// Create schedules a saved recipe for a date and meal type.
func (s *MealPlanService) Create(ctx context.Context, userID uint, req *MealPlanCreateRequest) (*MealPlanEntry, error) {
	if !domain.ValidMealType(req.MealType) {
		return nil, domain.ErrInvalidMealType
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.ErrInvalidRequest
	}

	recipe, err := s.saved.GetSavedRecipe(ctx, userID, req.SavedRecipeID)
	if err != nil {
		return nil, err
	}

	servings := req.Servings
	if servings < 1 {
		servings = 1
	}

	plan := &domain.MealPlan{
		UserID:        userID,
		SavedRecipeID: req.SavedRecipeID,
		Date:          date,
		MealType:      req.MealType,
		Servings:      servings,
		Notes:         req.Notes,
	}
	if err := s.store.CreateMealPlan(ctx, plan); err != nil {
		return nil, err
	}

	plan.SavedRecipe = *recipe
	return toEntry(plan), nil
}

// ListRange returns the user's plans within [start, end].
func (s *MealPlanService) ListRange(ctx context.Context, userID uint, start, end time.Time) ([]MealPlanEntry, error) {
	plans, err := s.store.ListMealPlans(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]MealPlanEntry, 0, len(plans))
	for i := range plans {
		entries = append(entries, *toEntry(&plans[i]))
	}
	return entries, nil
}

// ListCurrentWeek returns the user's plans for the current Monday-Sunday week.
func (s *MealPlanService) ListCurrentWeek(ctx context.Context, userID uint) ([]MealPlanEntry, error) {
	start, end := currentWeek(time.Now())
	return s.ListRange(ctx, userID, start, end)
}

// Update applies servings/notes changes to a plan.
func (s *MealPlanService) Update(ctx context.Context, userID, id uint, req *MealPlanUpdateRequest) (*MealPlanEntry, error) {
	plan, err := s.store.GetMealPlan(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Servings != nil {
		plan.Servings = *req.Servings
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}

	if err := s.store.UpdateMealPlan(ctx, plan); err != nil {
		return nil, err
	}
	return toEntry(plan), nil
}

// Delete removes a plan entry.
func (s *MealPlanService) Delete(ctx context.Context, userID, id uint) error {
	return s.store.DeleteMealPlan(ctx, userID, id)
}

// currentWeek returns the Monday and Sunday of the week containing now.
func currentWeek(now time.Time) (time.Time, time.Time) {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	start := date.AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}

func toEntry(plan *domain.MealPlan) *MealPlanEntry {
	return &MealPlanEntry{
		ID:            plan.ID,
		SavedRecipeID: plan.SavedRecipeID,
		Date:          plan.Date.Format("2006-01-02"),
		MealType:      plan.MealType,
		Servings:      plan.Servings,
		Notes:         plan.Notes,
		RecipeTitle:   plan.SavedRecipe.Title,
		RecipeImage:   plan.SavedRecipe.ImageURL,
	}
}
