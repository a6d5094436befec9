package domain

import (
	"time"

	"gorm.io/gorm"
)

// SavedRecipe is a recipe a user added to their collection. Deletion is a
// soft delete so meal plans referencing the row keep resolving.
// DB: saved_recipes
type SavedRecipe struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	ExternalID     int64          `gorm:"not null;index" json:"external_id"`
	Title          string         `gorm:"size:500;not null" json:"title"`
	ImageURL       string         `gorm:"size:1000" json:"image_url"`
	ReadyInMinutes *int           `json:"ready_in_minutes,omitempty"`
	Servings       *int           `json:"servings,omitempty"`
	SourceURL      string         `gorm:"size:1000" json:"source_url,omitempty"`
	Summary        string         `gorm:"type:text" json:"summary,omitempty"`
	Ingredients    map[string]any `gorm:"serializer:json;type:text" json:"ingredients,omitempty"`
	Instructions   map[string]any `gorm:"serializer:json;type:text" json:"instructions,omitempty"`
	Nutrition      map[string]any `gorm:"serializer:json;type:text" json:"nutrition,omitempty"`
	IsFavorite     bool           `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}
