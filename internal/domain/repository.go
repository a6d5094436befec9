package domain

import (
	"context"
	"time"
)

// RecipeCacheStore is the persistent cache behind the recipe proxy.
type RecipeCacheStore interface {
	// GetSearch returns the cached search row for a query hash, or ErrCacheMiss.
	GetSearch(ctx context.Context, queryHash string) (*CachedSearch, error)
	// PutSearch upserts a search row keyed by its query hash.
	PutSearch(ctx context.Context, search *CachedSearch) error
	// GetRecipe returns the cached recipe row for an external id, or ErrCacheMiss.
	GetRecipe(ctx context.Context, externalID int64) (*CachedRecipe, error)
	// PutRecipe upserts a recipe row keyed by its external id.
	PutRecipe(ctx context.Context, recipe *CachedRecipe) error
	// GetRecipesBatch returns the cached recipe rows present for the given ids.
	GetRecipesBatch(ctx context.Context, externalIDs []int64) (map[int64]*CachedRecipe, error)
	// PutSearchResults fills the cache after a search miss: all recipe
	// upserts plus the search upsert commit in one transaction.
	PutSearchResults(ctx context.Context, search *CachedSearch, recipes []*CachedRecipe) error
	// DeleteExpiredSearches removes search rows expired strictly before now
	// and returns how many were removed.
	DeleteExpiredSearches(ctx context.Context, now time.Time) (int64, error)
}

// RecipeProvider is the upstream recipe API.
type RecipeProvider interface {
	Search(ctx context.Context, query string, number int) (*ProviderSearchResult, error)
	GetRecipe(ctx context.Context, externalID int64) (RecipeData, error)
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
}

// SavedRecipeStore persists per-user recipe collections.
type SavedRecipeStore interface {
	CreateSavedRecipe(ctx context.Context, recipe *SavedRecipe) error
	GetSavedRecipe(ctx context.Context, userID, id uint) (*SavedRecipe, error)
	GetSavedRecipeByExternalID(ctx context.Context, userID uint, externalID int64) (*SavedRecipe, error)
	ListSavedRecipes(ctx context.Context, userID uint) ([]SavedRecipe, error)
	ListSavedRecipeTitles(ctx context.Context, userID uint, limit int) ([]string, error)
	UpdateSavedRecipe(ctx context.Context, recipe *SavedRecipe) error
	DeleteSavedRecipe(ctx context.Context, userID, id uint) error
}

// MealPlanStore persists weekly meal plans.
type MealPlanStore interface {
	CreateMealPlan(ctx context.Context, plan *MealPlan) error
	GetMealPlan(ctx context.Context, userID, id uint) (*MealPlan, error)
	ListMealPlans(ctx context.Context, userID uint, start, end time.Time) ([]MealPlan, error)
	UpdateMealPlan(ctx context.Context, plan *MealPlan) error
	DeleteMealPlan(ctx context.Context, userID, id uint) error
}

// AssistantClient is the upstream LLM used by the chat endpoint.
type AssistantClient interface {
	Complete(ctx context.Context, system string, messages []ChatMessage) (string, error)
}
