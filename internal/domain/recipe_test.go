package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeDataAccessors(t *testing.T) {
	var data RecipeData
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 101,
		"title": "Pasta Carbonara",
		"image": "https://img.example/101.jpg",
		"readyInMinutes": 30,
		"servings": 4,
		"dishTypes": ["lunch", "main course", 42]
	}`), &data))

	assert.Equal(t, int64(101), data.ID())
	assert.Equal(t, "Pasta Carbonara", data.Title())
	assert.Equal(t, "https://img.example/101.jpg", data.Image())
	require.NotNil(t, data.ReadyInMinutes())
	assert.Equal(t, 30, *data.ReadyInMinutes())
	require.NotNil(t, data.Servings())
	assert.Equal(t, 4, *data.Servings())
	// Non-string entries are dropped
	assert.Equal(t, []string{"lunch", "main course"}, data.DishTypes())
	assert.False(t, data.HasNutrition())
}

func TestRecipeDataAccessors_MissingFields(t *testing.T) {
	data := RecipeData{}

	assert.Zero(t, data.ID())
	assert.Empty(t, data.Title())
	assert.Empty(t, data.Image())
	assert.Nil(t, data.ReadyInMinutes())
	assert.Nil(t, data.Servings())
	assert.Nil(t, data.DishTypes())
	assert.False(t, data.HasNutrition())
}

func TestHasNutrition(t *testing.T) {
	shallow := RecipeData{"id": float64(1), "title": "Dish"}
	assert.False(t, shallow.HasNutrition())

	full := RecipeData{"id": float64(1), "nutrition": map[string]any{"nutrients": []any{}}}
	assert.True(t, full.HasNutrition())

	// A null value still counts as shallow and triggers a refetch
	withNull := RecipeData{"nutrition": nil}
	assert.False(t, withNull.HasNutrition())

	var decoded RecipeData
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "nutrition": null}`), &decoded))
	assert.False(t, decoded.HasNutrition())
}

func TestSummary(t *testing.T) {
	data := RecipeData{
		"id":    float64(101),
		"title": "Pasta Carbonara",
		"image": "https://img.example/101.jpg",
	}

	summary := data.Summary()
	assert.Equal(t, int64(101), summary.ID)
	assert.Equal(t, "Pasta Carbonara", summary.Title)
	assert.Nil(t, summary.ReadyInMinutes)

	// Optional fields stay out of the serialized shape
	payload, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "readyInMinutes")
	assert.NotContains(t, string(payload), "servings")
}

func TestValidMealType(t *testing.T) {
	for _, valid := range []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack} {
		assert.True(t, ValidMealType(valid), valid)
	}
	for _, invalid := range []string{"brunch", "supper", "", "Dinner"} {
		assert.False(t, ValidMealType(invalid), invalid)
	}
}
