// Package config reads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Default values.
const (
	defaultPort       = "8080"
	defaultOrigin     = "*"
	defaultAPIURL     = "https://api.weatherapi.com/v1"
	defaultAPITimeout = 10 * time.Second
	defaultSQLitePath = "dashboard.db"
	defaultLogLevel   = "info"
)

// ErrUnknownBackend is returned for unsupported STORAGE_BACKEND values.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config contains service settings.
type Config struct {
	Port           string
	Origin         string
	WeatherAPIURL  string
	WeatherAPIKey  string
	APITimeout     time.Duration
	StorageBackend string
	SQLitePath     string
	MongoURI       string
	MongoDB        string
	LogLevel       string

	// Warnings collects values that were rejected in favour of defaults.
	Warnings []string
}

// Load builds Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		Origin:         getEnv("ORIGIN", defaultOrigin),
		WeatherAPIURL:  getEnv("WEATHER_API_URL", defaultAPIURL),
		WeatherAPIKey:  os.Getenv("WEATHER_API_KEY"),
		APITimeout:     defaultAPITimeout,
		StorageBackend: getEnv("STORAGE_BACKEND", BackendSQLite),
		SQLitePath:     getEnv("SQLITE_PATH", defaultSQLitePath),
		MongoURI:       os.Getenv("DB_CONN_STRING"),
		MongoDB:        os.Getenv("DB_NAME"),
		LogLevel:       getEnv("LOG_LEVEL", defaultLogLevel),
	}

	if v := os.Getenv("WEATHER_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid WEATHER_API_TIMEOUT %q, using %s", v, defaultAPITimeout))
		} else {
			cfg.APITimeout = d
		}
	}

	switch cfg.StorageBackend {
	case BackendSQLite:
	case BackendMongo:
		if cfg.MongoURI == "" || cfg.MongoDB == "" {
			return nil, errors.New("DB_CONN_STRING and DB_NAME are required for mongo storage")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StorageBackend)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
