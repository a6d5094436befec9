package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Spoonacular SpoonacularConfig
	Anthropic   AnthropicConfig
	Auth        AuthConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// SpoonacularConfig holds recipe provider configuration
type SpoonacularConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SearchTTL    time.Duration `mapstructure:"search_ttl"`
	MaxCacheFill int           `mapstructure:"max_cache_fill"`
}

// AnthropicConfig holds AI assistant configuration
type AnthropicConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// AuthConfig holds JWT configuration
type AuthConfig struct {
	SecretKey   string        `mapstructure:"secret_key"`
	TokenExpire time.Duration `mapstructure:"token_expire"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mealmaster/")

	// Environment variable settings
	v.SetEnvPrefix("MEALMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:3000",
	})

	// Database defaults
	v.SetDefault("database.url", "")

	// Spoonacular defaults
	v.SetDefault("spoonacular.api_key", "")
	v.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	v.SetDefault("spoonacular.timeout", "15s")
	v.SetDefault("spoonacular.search_ttl", "24h")
	v.SetDefault("spoonacular.max_cache_fill", 50)

	// Anthropic defaults
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.timeout", "60s")

	// Auth defaults
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.token_expire", "168h") // 7 days
}

// validate validates the configuration.
// API keys are deliberately not required here: a missing key degrades the
// affected routes at request time instead of blocking startup.
func validate(config *Config) error {
	if config.Database.URL == "" {
		return fmt.Errorf("database URL is required (set MEALMASTER_DATABASE_URL)")
	}

	if config.Auth.SecretKey == "" {
		return fmt.Errorf("JWT secret key is required (set MEALMASTER_AUTH_SECRET_KEY)")
	}

	if config.Spoonacular.SearchTTL <= 0 {
		return fmt.Errorf("spoonacular search TTL must be positive, got: %s", config.Spoonacular.SearchTTL)
	}

	if config.Spoonacular.MaxCacheFill < 1 || config.Spoonacular.MaxCacheFill > 100 {
		return fmt.Errorf("spoonacular max cache fill must be in 1..100, got: %d", config.Spoonacular.MaxCacheFill)
	}

	return nil
}
