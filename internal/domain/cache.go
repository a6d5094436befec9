package domain

import "time"

// CachedSearch is one cached search query with its ordered result ids.
// Rows are keyed by QueryHash (one row per hash, upsert on collision) and
// expire ExpiresAt; expired rows are removed only by the cleanup operation.
type CachedSearch struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Query        string    `gorm:"size:500;not null;index" json:"query"`
	QueryHash    string    `gorm:"size:64;not null;uniqueIndex" json:"query_hash"`
	ResultIDs    []int64   `gorm:"serializer:json;type:text;not null" json:"result_ids"`
	TotalResults int       `gorm:"not null;default:0" json:"total_results"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expires_at"`
}

func (CachedSearch) TableName() string {
	return "cached_search_queries"
}

// CachedRecipe is the cached payload for one external recipe id. Search
// fills create shallow rows; a detail fetch overwrites them with the full
// payload. Rows are never deleted.
type CachedRecipe struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ExternalID int64      `gorm:"not null;uniqueIndex" json:"external_id"`
	Title      string     `gorm:"size:500;not null" json:"title"`
	Image      string     `gorm:"size:1000" json:"image"`
	Data       RecipeData `gorm:"serializer:json;type:text;not null" json:"data"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (CachedRecipe) TableName() string {
	return "cached_recipes"
}
