package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/mealmaster/backend/config"
	httpDelivery "github.com/mealmaster/backend/internal/delivery/http"
	"github.com/mealmaster/backend/internal/infrastructure/anthropic"
	"github.com/mealmaster/backend/internal/infrastructure/postgres"
	"github.com/mealmaster/backend/internal/infrastructure/spoonacular"
	"github.com/mealmaster/backend/internal/logger"
	"github.com/mealmaster/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger("main")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Infof("Starting MealMaster Backend")
	log.Infof("Environment: %s", cfg.Server.Environment)
	log.Infof("Port: %s", cfg.Server.Port)

	// Database
	store, err := postgres.Connect(cfg.Database.URL, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Upstream clients
	spoonacularClient := spoonacular.NewClient(
		cfg.Spoonacular.APIKey,
		cfg.Spoonacular.BaseURL,
		cfg.Spoonacular.Timeout,
	)
	if cfg.Spoonacular.APIKey == "" {
		log.Warnf("Spoonacular API key not configured - recipe routes will fail")
	}

	anthropicClient := anthropic.NewClient(
		cfg.Anthropic.APIKey,
		cfg.Anthropic.BaseURL,
		cfg.Anthropic.Model,
		cfg.Anthropic.MaxTokens,
		cfg.Anthropic.Timeout,
	)
	if cfg.Anthropic.APIKey == "" {
		log.Warnf("Anthropic API key not configured - AI chat will be unavailable")
	}

	// Usecase layer
	recipeService := usecase.NewRecipeService(store, spoonacularClient, usecase.RecipeServiceConfig{
		SearchTTL:    cfg.Spoonacular.SearchTTL,
		MaxCacheFill: cfg.Spoonacular.MaxCacheFill,
	})
	authService := usecase.NewAuthService(store, usecase.AuthServiceConfig{
		SecretKey:   cfg.Auth.SecretKey,
		TokenExpire: cfg.Auth.TokenExpire,
	})
	savedService := usecase.NewSavedRecipeService(store)
	planService := usecase.NewMealPlanService(store, store)
	assistantService := usecase.NewAssistantService(anthropicClient, recipeService, store)

	// HTTP delivery
	handler := httpDelivery.NewHandler(
		recipeService,
		authService,
		savedService,
		planService,
		assistantService,
		cfg.Spoonacular.APIKey != "",
		anthropicClient.Configured(),
	)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
