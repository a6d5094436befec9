// Package postgres implements the persistent stores on GORM.
package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mealmaster/backend/internal/domain"
)

// Store implements the domain store interfaces on one GORM connection.
type Store struct {
	db *gorm.DB
}

// Connect opens a Postgres connection and configures its pool.
func Connect(databaseURL, environment string) (*Store, error) {
	logLevel := gormlogger.Silent
	if environment == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an existing GORM connection (used by tests with sqlite).
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate runs AutoMigrate for all models.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&domain.User{},
		&domain.SavedRecipe{},
		&domain.MealPlan{},
		&domain.CachedRecipe{},
		&domain.CachedSearch{},
	)
}
