// Package preference persists the dashboard theme.
package preference

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/repository"
)

// Stored theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

//go:generate mockgen -source=preference.go -destination=mock/mock.go Storage

// Storage provides necessary storage methods.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Theme holds the dark/light preference, light by default.
type Theme struct {
	mu      sync.Mutex
	storage Storage
	dark    bool
}

// NewTheme creates new Theme store.
func NewTheme(storage Storage) *Theme {
	return &Theme{storage: storage}
}

// Load restores the stored preference. Unknown values fall back to light.
func (t *Theme) Load(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dark = false

	v, err := t.storage.Get(ctx, repository.ThemeKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return t.dark
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to read theme: %w", err))
		return t.dark
	}

	switch v {
	case ThemeDark:
		t.dark = true
	case ThemeLight:
	default:
		logger.Warn(fmt.Errorf("ignoring unknown theme %q", v))
	}

	return t.dark
}

// IsDark reports the current preference.
func (t *Theme) IsDark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.dark
}

// Set stores the preference.
func (t *Theme) Set(ctx context.Context, dark bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.apply(ctx, dark)
}

// Toggle flips the preference and returns the new value.
func (t *Theme) Toggle(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	err := t.apply(ctx, !t.dark)
	return t.dark, err
}

func (t *Theme) apply(ctx context.Context, dark bool) error {
	value := ThemeLight
	if dark {
		value = ThemeDark
	}

	err := t.storage.Set(ctx, repository.ThemeKey, value)
	if err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}

	t.dark = dark
	return nil
}
