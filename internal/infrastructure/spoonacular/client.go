// Package spoonacular implements the upstream recipe provider client.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mealmaster/backend/internal/domain"
	"github.com/mealmaster/backend/internal/logger"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// Client handles communication with the Spoonacular API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	log         *zap.SugaredLogger
}

// NewClient creates a new Spoonacular API client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	// Free tier quotas are tight; 5 req/s with a small burst keeps a busy
	// instance from burning the daily allowance on one hot query.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		timeout:     timeout,
		rateLimiter: limiter,
		log:         logger.GetLogger("spoonacular"),
	}
}

// searchResponse is the complexSearch envelope. Result payloads stay opaque.
type searchResponse struct {
	Results      []domain.RecipeData `json:"results"`
	TotalResults int                 `json:"totalResults"`
}

// Search queries complexSearch and returns payloads in provider rank order.
func (c *Client) Search(ctx context.Context, query string, number int) (*domain.ProviderSearchResult, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}

	params := url.Values{}
	params.Add("apiKey", c.apiKey)
	params.Add("query", query)
	params.Add("number", strconv.Itoa(number))
	params.Add("addRecipeInformation", "true")
	params.Add("fillIngredients", "true")

	reqURL := fmt.Sprintf("%s/recipes/complexSearch?%s", c.baseURL, params.Encode())

	body, err := c.doRequest(ctx, reqURL, false)
	if err != nil {
		return nil, err
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Infow("search completed", "query", query, "results", len(searchResp.Results), "total", searchResp.TotalResults)

	return &domain.ProviderSearchResult{
		Results: searchResp.Results,
		Total:   searchResp.TotalResults,
	}, nil
}

// GetRecipe fetches the full information payload for one recipe id,
// including nutrition data.
func (c *Client) GetRecipe(ctx context.Context, externalID int64) (domain.RecipeData, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNotConfigured
	}

	params := url.Values{}
	params.Add("apiKey", c.apiKey)
	params.Add("includeNutrition", "true")

	reqURL := fmt.Sprintf("%s/recipes/%d/information?%s", c.baseURL, externalID, params.Encode())

	body, err := c.doRequest(ctx, reqURL, true)
	if err != nil {
		return nil, err
	}

	var data domain.RecipeData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return data, nil
}

// doRequest executes one GET with the per-call timeout. There is no retry:
// the caller's resilience strategy is serving cached data instead.
func (c *Client) doRequest(ctx context.Context, reqURL string, isDetail bool) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MealMaster/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection failures and timeouts both count as unavailable
		c.log.Warnw("upstream unreachable", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound && isDetail {
		return nil, domain.ErrRecipeNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnw("upstream error", "status", resp.StatusCode)
		return nil, &domain.StatusError{Code: resp.StatusCode}
	}

	return body, nil
}
