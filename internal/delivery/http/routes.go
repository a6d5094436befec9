package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mealmaster/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", handler.Register)
			authRoutes.POST("/login", handler.Login)
			authRoutes.GET("/me", AuthRequired(cfg.Auth.SecretKey), handler.GetMe)
		}

		// Search is the collection GET; detail is the param route.
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", handler.SearchRecipes)
			recipes.GET("/:id", handler.GetRecipe)
		}

		v1.DELETE("/cache/expired", handler.CleanupExpiredCache)

		saved := v1.Group("/saved-recipes", AuthRequired(cfg.Auth.SecretKey))
		{
			saved.POST("", handler.SaveRecipe)
			saved.GET("", handler.ListSavedRecipes)
			saved.DELETE("/:id", handler.DeleteSavedRecipe)
			saved.POST("/:id/favorite", handler.ToggleFavorite)
		}

		plans := v1.Group("/meal-plans", AuthRequired(cfg.Auth.SecretKey))
		{
			plans.POST("", handler.CreateMealPlan)
			plans.GET("", handler.ListMealPlans)
			plans.PUT("/:id", handler.UpdateMealPlan)
			plans.DELETE("/:id", handler.DeleteMealPlan)
		}

		ai := v1.Group("/ai")
		{
			ai.POST("/chat", AuthRequired(cfg.Auth.SecretKey), handler.Chat)
			ai.GET("/health", handler.AssistantHealth)
		}
	}

	return router
}
