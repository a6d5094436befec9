package domain

import "time"

// Meal types accepted by the planner.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// ValidMealType reports whether t is one of the accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealPlan schedules one saved recipe on one date for a user.
// DB: meal_plans
type MealPlan struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	SavedRecipeID uint      `gorm:"not null" json:"saved_recipe_id"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	MealType      string    `gorm:"size:20;not null" json:"meal_type"`
	Servings      int       `gorm:"not null;default:1" json:"servings"`
	Notes         string    `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	SavedRecipe SavedRecipe `gorm:"foreignKey:SavedRecipeID" json:"-"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}
