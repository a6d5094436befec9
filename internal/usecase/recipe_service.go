package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mealmaster/backend/internal/domain"
	"github.com/mealmaster/backend/internal/logger"
)

// RecipeServiceConfig holds configuration for the recipe cache orchestrator.
type RecipeServiceConfig struct {
	// SearchTTL is how long a cached search stays valid.
	SearchTTL time.Duration
	// MaxCacheFill caps how many results a miss requests from upstream.
	MaxCacheFill int
}

// RecipeService is the cached proxy over the recipe provider: search
// results are cached per normalized query for SearchTTL, recipe details
// indefinitely once fully populated.
type RecipeService struct {
	store        domain.RecipeCacheStore
	provider     domain.RecipeProvider
	searchTTL    time.Duration
	maxCacheFill int
	log          *zap.SugaredLogger
}

// NewRecipeService creates the orchestrator with its dependencies.
func NewRecipeService(store domain.RecipeCacheStore, provider domain.RecipeProvider, config RecipeServiceConfig) *RecipeService {
	searchTTL := config.SearchTTL
	if searchTTL == 0 {
		searchTTL = 24 * time.Hour
	}
	maxCacheFill := config.MaxCacheFill
	if maxCacheFill == 0 {
		maxCacheFill = 50
	}

	return &RecipeService{
		store:        store,
		provider:     provider,
		searchTTL:    searchTTL,
		maxCacheFill: maxCacheFill,
		log:          logger.GetLogger("recipes"),
	}
}

// Search returns up to number results for a query, serving from cache when
// a live entry exists and refilling the cache from upstream otherwise.
//
// Two concurrent misses for the same query may both call upstream and both
// upsert; the later write wins on the unique key. That race is accepted,
// there is no single-flight.
func (s *RecipeService) Search(ctx context.Context, query string, number int) (*domain.SearchResponse, error) {
	if query == "" || number < 1 || number > 100 {
		return nil, domain.ErrInvalidRequest
	}

	normalized := NormalizeQuery(query)
	hash := QueryHash(normalized)

	cached, err := s.store.GetSearch(ctx, hash)
	if err == nil && cached.ExpiresAt.After(time.Now().UTC()) {
		return s.serveFromCache(ctx, cached, number)
	}
	if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		return nil, fmt.Errorf("search cache lookup: %w", err)
	}

	// Miss or expired entry
	return s.fillFromUpstream(ctx, normalized, hash, number)
}

// serveFromCache re-emits cached results in the order recorded at fill
// time. Ids whose recipe row went missing are skipped: the cache is
// self-healing on the next expiration.
func (s *RecipeService) serveFromCache(ctx context.Context, cached *domain.CachedSearch, number int) (*domain.SearchResponse, error) {
	ids := cached.ResultIDs
	if len(ids) > number {
		ids = ids[:number]
	}

	recipes, err := s.store.GetRecipesBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("recipe batch lookup: %w", err)
	}

	results := make([]domain.RecipeSummary, 0, len(ids))
	for _, id := range ids {
		recipe, ok := recipes[id]
		if !ok {
			continue
		}
		results = append(results, summarize(recipe))
	}

	s.log.Infow("search served from cache", "query", cached.Query, "results", len(results))

	return &domain.SearchResponse{
		Results: results,
		Total:   cached.TotalResults,
		Cached:  true,
	}, nil
}

// fillFromUpstream performs the miss path: fetch a larger page than asked
// for, persist everything transactionally, answer with the requested slice.
func (s *RecipeService) fillFromUpstream(ctx context.Context, normalized, hash string, number int) (*domain.SearchResponse, error) {
	fill := number
	if fill < s.maxCacheFill {
		fill = s.maxCacheFill
	}

	provided, err := s.provider.Search(ctx, normalized, fill)
	if err != nil {
		return nil, err
	}

	resultIDs := make([]int64, 0, len(provided.Results))
	recipes := make([]*domain.CachedRecipe, 0, len(provided.Results))
	for _, data := range provided.Results {
		id := data.ID()
		if id == 0 {
			continue
		}
		resultIDs = append(resultIDs, id)
		recipes = append(recipes, &domain.CachedRecipe{
			ExternalID: id,
			Title:      data.Title(),
			Image:      data.Image(),
			Data:       data,
		})
	}

	now := time.Now().UTC()
	search := &domain.CachedSearch{
		Query:        normalized,
		QueryHash:    hash,
		ResultIDs:    resultIDs,
		TotalResults: provided.Total,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.searchTTL),
	}

	if err := s.store.PutSearchResults(ctx, search, recipes); err != nil {
		// The transaction rolled the partial fill back; the upstream call
		// is not repeated.
		return nil, fmt.Errorf("search cache fill: %w", err)
	}

	s.log.Infow("search cache filled", "query", normalized, "cached", len(resultIDs), "total", provided.Total)

	count := number
	if count > len(provided.Results) {
		count = len(provided.Results)
	}
	results := make([]domain.RecipeSummary, 0, count)
	for _, data := range provided.Results[:count] {
		results = append(results, data.Summary())
	}

	return &domain.SearchResponse{
		Results: results,
		Total:   provided.Total,
		Cached:  false,
	}, nil
}

// GetRecipe returns the full payload for one recipe. A cached payload that
// already carries nutrition data is final; shallow search fills are
// refreshed from upstream. When upstream is unreachable, any cached row is
// served stale rather than failing.
func (s *RecipeService) GetRecipe(ctx context.Context, externalID int64) (domain.RecipeData, error) {
	cached, err := s.store.GetRecipe(ctx, externalID)
	if err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		return nil, fmt.Errorf("recipe cache lookup: %w", err)
	}

	if cached != nil && cached.Data.HasNutrition() {
		return cached.Data, nil
	}

	data, err := s.provider.GetRecipe(ctx, externalID)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) && cached != nil {
			s.log.Warnw("upstream unavailable, serving stale recipe", "id", externalID)
			return cached.Data, nil
		}
		return nil, err
	}

	recipe := &domain.CachedRecipe{
		ExternalID: externalID,
		Title:      data.Title(),
		Image:      data.Image(),
		Data:       data,
	}
	if err := s.store.PutRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("recipe cache write: %w", err)
	}

	return data, nil
}

// CleanupExpired removes expired search cache entries. It is a one-shot
// batch delete, triggered externally (cron or admin call).
func (s *RecipeService) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteExpiredSearches(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expired search cleanup: %w", err)
	}
	if deleted > 0 {
		s.log.Infow("expired search entries removed", "count", deleted)
	}
	return deleted, nil
}

// summarize prefers fields from the stored payload and falls back to the
// row's own columns.
func summarize(recipe *domain.CachedRecipe) domain.RecipeSummary {
	summary := recipe.Data.Summary()
	summary.ID = recipe.ExternalID
	if summary.Title == "" {
		summary.Title = recipe.Title
	}
	if summary.Image == "" {
		summary.Image = recipe.Image
	}
	return summary
}
