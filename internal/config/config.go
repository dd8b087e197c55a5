package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is not set
var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable not set")

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Stage       string
	Database    DatabaseConfig
	Logging     LoggingConfig
	Catalog     CatalogConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// CatalogConfig holds options of the catalog dispatcher
type CatalogConfig struct {
	// TableFallback maps unknown X-Table-Name values to materials instead of rejecting them
	TableFallback bool
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STAGE", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("CATALOG_TABLE_FALLBACK", false)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Stage:       v.GetString("STAGE"),
		Database: DatabaseConfig{
			URL:             strings.TrimSpace(v.GetString("DATABASE_URL")),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Catalog: CatalogConfig{
			TableFallback: v.GetBool("CATALOG_TABLE_FALLBACK"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// IsProduction returns true when running in the production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

