package domain

// RecipeData is the opaque recipe payload as returned by the Spoonacular API.
// It is stored and re-emitted without reinterpretation; the accessors below
// only read the handful of fields the backend itself needs.
type RecipeData map[string]any

// ID returns the external recipe id, or 0 when absent.
func (d RecipeData) ID() int64 {
	// JSON numbers decode as float64
	if v, ok := d["id"].(float64); ok {
		return int64(v)
	}
	return 0
}

// Title returns the recipe title, or "" when absent.
func (d RecipeData) Title() string {
	v, _ := d["title"].(string)
	return v
}

// Image returns the recipe image URL, or "" when absent.
func (d RecipeData) Image() string {
	v, _ := d["image"].(string)
	return v
}

// ReadyInMinutes returns the preparation time when the payload carries one.
func (d RecipeData) ReadyInMinutes() *int {
	if v, ok := d["readyInMinutes"].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

// Servings returns the serving count when the payload carries one.
func (d RecipeData) Servings() *int {
	if v, ok := d["servings"].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

// DishTypes returns the dish type tags when the payload carries them.
func (d RecipeData) DishTypes() []string {
	raw, ok := d["dishTypes"].([]any)
	if !ok {
		return nil
	}
	types := make([]string, 0, len(raw))
	for _, t := range raw {
		if s, ok := t.(string); ok {
			types = append(types, s)
		}
	}
	return types
}

// HasNutrition reports whether the payload came from a full detail fetch.
// Search fills never include nutrition data, so a non-null value is the
// signal that the entry does not need a refresh.
func (d RecipeData) HasNutrition() bool {
	return d["nutrition"] != nil
}

// Summary projects the payload onto the search result shape.
func (d RecipeData) Summary() RecipeSummary {
	return RecipeSummary{
		ID:             d.ID(),
		Title:          d.Title(),
		Image:          d.Image(),
		ReadyInMinutes: d.ReadyInMinutes(),
		Servings:       d.Servings(),
		DishTypes:      d.DishTypes(),
	}
}

// RecipeSummary is a single entry in a search response.
type RecipeSummary struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	ReadyInMinutes *int     `json:"readyInMinutes,omitempty"`
	Servings       *int     `json:"servings,omitempty"`
	DishTypes      []string `json:"dishTypes,omitempty"`
}

// SearchResponse is the uniform search result shape, cached or not.
type SearchResponse struct {
	Results []RecipeSummary `json:"results"`
	Total   int             `json:"total"`
	Cached  bool            `json:"cached"`
}

// ProviderSearchResult is what the upstream client returns for one search
// call: payloads in provider rank order plus the provider's total count.
type ProviderSearchResult struct {
	Results []RecipeData
	Total   int
}
