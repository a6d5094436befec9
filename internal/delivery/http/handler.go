package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealmaster/backend/internal/domain"
	"github.com/mealmaster/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes   *usecase.RecipeService
	auth      *usecase.AuthService
	saved     *usecase.SavedRecipeService
	plans     *usecase.MealPlanService
	assistant *usecase.AssistantService

	recipesConfigured   bool
	assistantConfigured bool
}

// NewHandler creates a new HTTP handler
func NewHandler(
	recipes *usecase.RecipeService,
	auth *usecase.AuthService,
	saved *usecase.SavedRecipeService,
	plans *usecase.MealPlanService,
	assistant *usecase.AssistantService,
	recipesConfigured, assistantConfigured bool,
) *Handler {
	return &Handler{
		recipes:             recipes,
		auth:                auth,
		saved:               saved,
		plans:               plans,
		assistant:           assistant,
		recipesConfigured:   recipesConfigured,
		assistantConfigured: assistantConfigured,
	}
}

// Root returns the service banner.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to MealMaster API",
		"status":  "running",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mealmaster-backend",
	})
}

// SearchRecipes handles GET /recipes?query=...&number=...
func (h *Handler) SearchRecipes(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	number := 10
	if raw := c.Query("number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "number must be between 1 and 100"})
			return
		}
		number = n
	}

	resp, err := h.recipes.Search(c.Request.Context(), query, number)
	if err != nil {
		h.recipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecipe handles GET /recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	data, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		h.recipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// CleanupExpiredCache handles DELETE /cache/expired
func (h *Handler) CleanupExpiredCache(c *gin.Context) {
	deleted, err := h.recipes.CleanupExpired(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_entries": deleted})
}

// recipeError maps the recipe error taxonomy onto HTTP statuses.
func (h *Handler) recipeError(c *gin.Context, err error) {
	var statusErr *domain.StatusError

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
	case errors.Is(err, domain.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to connect to recipe API"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
	case errors.As(err, &statusErr):
		c.JSON(statusErr.Code, gin.H{"error": "External API error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// registerRequest is the register payload.
type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginRequest is the login payload.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMe handles GET /auth/me
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.auth.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// SaveRecipe handles POST /saved-recipes
func (h *Handler) SaveRecipe(c *gin.Context) {
	var req usecase.SaveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.saved.Save(c.Request.Context(), userID(c), &req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeAlreadySaved) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// ListSavedRecipes handles GET /saved-recipes
func (h *Handler) ListSavedRecipes(c *gin.Context) {
	recipes, err := h.saved.List(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// DeleteSavedRecipe handles DELETE /saved-recipes/:id
func (h *Handler) DeleteSavedRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.saved.Delete(c.Request.Context(), userID(c), uint(id)); err != nil {
		if errors.Is(err, domain.ErrSavedRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleFavorite handles POST /saved-recipes/:id/favorite
func (h *Handler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	recipe, err := h.saved.ToggleFavorite(c.Request.Context(), userID(c), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrSavedRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateMealPlan handles POST /meal-plans
func (h *Handler) CreateMealPlan(c *gin.Context) {
	var req usecase.MealPlanCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.plans.Create(c.Request.Context(), userID(c), &req)
	if err != nil {
		h.mealPlanError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListMealPlans handles GET /meal-plans. Without a date range it returns
// the current Monday-Sunday week.
func (h *Handler) ListMealPlans(c *gin.Context) {
	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")

	var (
		entries []usecase.MealPlanEntry
		err     error
	)
	if startRaw == "" && endRaw == "" {
		entries, err = h.plans.ListCurrentWeek(c.Request.Context(), userID(c))
	} else {
		var start, end time.Time
		start, err = time.Parse("2006-01-02", startRaw)
		if err == nil {
			end, err = time.Parse("2006-01-02", endRaw)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date must be YYYY-MM-DD"})
			return
		}
		entries, err = h.plans.ListRange(c.Request.Context(), userID(c), start, end)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateMealPlan handles PUT /meal-plans/:id
func (h *Handler) UpdateMealPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req usecase.MealPlanUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.plans.Update(c.Request.Context(), userID(c), uint(id), &req)
	if err != nil {
		h.mealPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteMealPlan handles DELETE /meal-plans/:id
func (h *Handler) DeleteMealPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.plans.Delete(c.Request.Context(), userID(c), uint(id)); err != nil {
		h.mealPlanError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) mealPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMealType), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMealPlanNotFound), errors.Is(err, domain.ErrSavedRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Chat handles POST /ai/chat
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.assistant.Chat(c.Request.Context(), userID(c), &req)
	if err != nil {
		var statusErr *domain.StatusError
		switch {
		case errors.Is(err, domain.ErrAssistantNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrAssistantTimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "AI service timeout. Please try again."})
		case errors.As(err, &statusErr):
			c.JSON(statusErr.Code, gin.H{"error": "AI service error"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssistantHealth handles GET /ai/health
func (h *Handler) AssistantHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ai_configured":      h.assistantConfigured,
		"recipes_configured": h.recipesConfigured,
		"service":            "Claude AI + Spoonacular",
	})
}

// userID returns the authenticated user id set by the auth middleware.
func userID(c *gin.Context) uint {
	v, _ := c.Get(contextUserIDKey)
	id, _ := v.(uint)
	return id
}
