// Package repository provides the durable key/value storage behind the dashboard
// client state (search history, theme preference).
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/katiamach/weather-dashboard-api/internal/config"
)

// Storage keys.
const (
	SearchHistoryKey = "searchHistory"
	ThemeKey         = "theme"
)

// DB errors.
var (
	ErrKeyNotFound = errors.New("no value stored for the given key")
)

// Store is a string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open opens the store selected by cfg.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		store, err := NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMongo:
		store, err := NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.StorageBackend)
	}
}
