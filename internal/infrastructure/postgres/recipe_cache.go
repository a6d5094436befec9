package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mealmaster/backend/internal/domain"
)

// Expirations are normalized to UTC here, on both write and read, so the
// orchestrator never has to reason about zones at comparison time.

// GetSearch returns the cached search row for a query hash, or ErrCacheMiss.
func (s *Store) GetSearch(ctx context.Context, queryHash string) (*domain.CachedSearch, error) {
	var search domain.CachedSearch
	err := s.db.WithContext(ctx).Where("query_hash = ?", queryHash).First(&search).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	search.ExpiresAt = search.ExpiresAt.UTC()
	search.CreatedAt = search.CreatedAt.UTC()
	return &search, nil
}

// PutSearch upserts a search row keyed by query hash, overwriting the result
// ids, total count, expiration, and creation timestamp.
func (s *Store) PutSearch(ctx context.Context, search *domain.CachedSearch) error {
	normalizeSearch(search)
	return s.db.WithContext(ctx).Clauses(searchConflict()).Create(search).Error
}

// GetRecipe returns the cached recipe row for an external id, or ErrCacheMiss.
func (s *Store) GetRecipe(ctx context.Context, externalID int64) (*domain.CachedRecipe, error) {
	var recipe domain.CachedRecipe
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}
	return &recipe, nil
}

// PutRecipe upserts a recipe row keyed by external id, overwriting the
// title, image, payload, and updated timestamp.
func (s *Store) PutRecipe(ctx context.Context, recipe *domain.CachedRecipe) error {
	recipe.UpdatedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Clauses(recipeConflict()).Create(recipe).Error
}

// GetRecipesBatch returns the cached recipe rows present for the given ids.
// Missing ids are simply absent from the result map.
func (s *Store) GetRecipesBatch(ctx context.Context, externalIDs []int64) (map[int64]*domain.CachedRecipe, error) {
	result := make(map[int64]*domain.CachedRecipe, len(externalIDs))
	if len(externalIDs) == 0 {
		return result, nil
	}

	var recipes []domain.CachedRecipe
	err := s.db.WithContext(ctx).Where("external_id IN ?", externalIDs).Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	for i := range recipes {
		result[recipes[i].ExternalID] = &recipes[i]
	}
	return result, nil
}

// PutSearchResults fills the cache after a search miss. The per-recipe
// upserts and the search upsert commit in one transaction so a persistence
// failure rolls the partial fill back.
func (s *Store) PutSearchResults(ctx context.Context, search *domain.CachedSearch, recipes []*domain.CachedRecipe) error {
	normalizeSearch(search)
	now := time.Now().UTC()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, recipe := range recipes {
			recipe.UpdatedAt = now
			if err := tx.Clauses(recipeConflict()).Create(recipe).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(searchConflict()).Create(search).Error
	})
}

// DeleteExpiredSearches removes search rows whose expiration is strictly
// before now and returns the count removed. Recipe rows are never pruned.
func (s *Store) DeleteExpiredSearches(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ?", now.UTC()).
		Delete(&domain.CachedSearch{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func normalizeSearch(search *domain.CachedSearch) {
	search.ExpiresAt = search.ExpiresAt.UTC()
	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now()
	}
	search.CreatedAt = search.CreatedAt.UTC()
}

func searchConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "query_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"query", "result_ids", "total_results", "expires_at", "created_at",
		}),
	}
}

func recipeConflict() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "image", "data", "updated_at",
		}),
	}
}
