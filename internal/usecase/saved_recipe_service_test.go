package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmaster/backend/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestSaveAndList(t *testing.T) {
	service := NewSavedRecipeService(newCacheStore(t))
	ctx := context.Background()

	saved, err := service.Save(ctx, 1, &SaveRecipeRequest{
		ExternalID:     101,
		Title:          "Pasta Carbonara",
		ImageURL:       "https://img.example/101.jpg",
		ReadyInMinutes: intPtr(30),
		Servings:       intPtr(4),
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Pasta Carbonara", saved.Title)

	recipes, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, int64(101), recipes[0].ExternalID)

	// Other users see their own collections only
	other, err := service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSave_DuplicateRejected(t *testing.T) {
	service := NewSavedRecipeService(newCacheStore(t))
	ctx := context.Background()

	_, err := service.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Dish"})
	require.NoError(t, err)

	_, err = service.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Dish Again"})
	assert.ErrorIs(t, err, domain.ErrRecipeAlreadySaved)

	// A different user may save the same external recipe
	_, err = service.Save(ctx, 2, &SaveRecipeRequest{ExternalID: 101, Title: "Dish"})
	assert.NoError(t, err)
}

func TestSave_AfterDeleteAllowed(t *testing.T) {
	service := NewSavedRecipeService(newCacheStore(t))
	ctx := context.Background()

	first, err := service.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Dish"})
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, 1, first.ID))

	second, err := service.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Dish"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDelete_NotFound(t *testing.T) {
	service := NewSavedRecipeService(newCacheStore(t))

	err := service.Delete(context.Background(), 1, 12345)
	assert.ErrorIs(t, err, domain.ErrSavedRecipeNotFound)
}

func TestToggleFavorite(t *testing.T) {
	service := NewSavedRecipeService(newCacheStore(t))
	ctx := context.Background()

	saved, err := service.Save(ctx, 1, &SaveRecipeRequest{ExternalID: 101, Title: "Dish"})
	require.NoError(t, err)
	require.False(t, saved.IsFavorite)

	toggled, err := service.ToggleFavorite(ctx, 1, saved.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	toggled, err = service.ToggleFavorite(ctx, 1, saved.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsFavorite)

	_, err = service.ToggleFavorite(ctx, 2, saved.ID)
	assert.ErrorIs(t, err, domain.ErrSavedRecipeNotFound)
}
