package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the Spoonacular API key is missing
	ErrNotConfigured = errors.New("spoonacular API key not configured")

	// ErrUpstreamUnavailable is returned when the recipe provider cannot be reached
	ErrUpstreamUnavailable = errors.New("unable to connect to recipe API")

	// ErrRecipeNotFound is returned when a recipe id does not exist upstream
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrCacheMiss is returned when a cache row is absent
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmailTaken is returned on registration with an already registered email
	ErrEmailTaken = errors.New("email already registered")

	// ErrPasswordTooLong is returned when a password exceeds the bcrypt 72 byte limit
	ErrPasswordTooLong = errors.New("password must be 72 bytes or less")

	// ErrInvalidCredentials is returned on login with a wrong email or password
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserNotFound is returned when a token references a missing user
	ErrUserNotFound = errors.New("user not found")

	// ErrRecipeAlreadySaved is returned when a user saves the same recipe twice
	ErrRecipeAlreadySaved = errors.New("recipe already saved")

	// ErrSavedRecipeNotFound is returned when a saved recipe is absent or owned by another user
	ErrSavedRecipeNotFound = errors.New("saved recipe not found")

	// ErrInvalidMealType is returned when a meal plan uses an unknown meal type
	ErrInvalidMealType = errors.New("invalid meal type")

	// ErrMealPlanNotFound is returned when a meal plan is absent or owned by another user
	ErrMealPlanNotFound = errors.New("meal plan not found")

	// ErrAssistantNotConfigured is returned when the Anthropic API key is missing
	ErrAssistantNotConfigured = errors.New("AI service not configured")

	// ErrAssistantTimeout is returned when the Anthropic API does not answer in time
	ErrAssistantTimeout = errors.New("AI service timeout")
)

// StatusError reports a non-2xx response from the recipe provider upstream.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("external API error: status %d", e.Code)
}
