package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/katiamach/weather-dashboard-api/internal/config"
	"github.com/tj/assert"
)

func newTestSQLite(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dashboard.db")
	s, err := NewSQLite(context.Background(), path)
	assert.Nil(t, err)

	return s, path
}

func TestSQLiteGetSet(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSQLite(t)
	defer s.Close()

	_, err := s.Get(ctx, ThemeKey)
	assert.True(t, errors.Is(err, ErrKeyNotFound))

	assert.Nil(t, s.Set(ctx, ThemeKey, "dark"))
	assert.Nil(t, s.Set(ctx, ThemeKey, "light"))

	v, err := s.Get(ctx, ThemeKey)
	assert.Nil(t, err)
	assert.Equal(t, "light", v)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := newTestSQLite(t)

	assert.Nil(t, s.Set(ctx, SearchHistoryKey, `[{"city":"Paris","timestamp":1}]`))
	assert.Nil(t, s.Close())

	reopened, err := NewSQLite(ctx, path)
	assert.Nil(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, SearchHistoryKey)
	assert.Nil(t, err)
	assert.Equal(t, `[{"city":"Paris","timestamp":1}]`, v)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{StorageBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "open.db")}
	s, err := Open(ctx, cfg)
	assert.Nil(t, err)
	assert.Nil(t, s.Close())

	_, err = Open(ctx, &config.Config{StorageBackend: "etcd"})
	assert.True(t, errors.Is(err, config.ErrUnknownBackend))
}
