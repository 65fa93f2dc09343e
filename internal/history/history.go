// Package history keeps the recent searches of the dashboard.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/repository"
)

// MaxEntries is the history capacity.
const MaxEntries = 5

//go:generate mockgen -source=history.go -destination=mock/mock.go Storage

// Storage provides necessary storage methods.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store is a bounded, newest first list of searched cities, unique by
// case-insensitive name. Every mutation is persisted before it returns.
type Store struct {
	mu      sync.Mutex
	storage Storage
	entries []model.SearchHistoryEntry
}

// New creates new Store. Call Load to restore persisted entries.
func New(storage Storage) *Store {
	return &Store{
		storage: storage,
		entries: []model.SearchHistoryEntry{},
	}
}

// Load restores entries from storage. Missing or unreadable history gives an empty list.
func (s *Store) Load(ctx context.Context) []model.SearchHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []model.SearchHistoryEntry{}

	raw, err := s.storage.Get(ctx, repository.SearchHistoryKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return s.copyEntries()
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to read search history: %w", err))
		return s.copyEntries()
	}

	var stored []model.SearchHistoryEntry
	err = json.Unmarshal([]byte(raw), &stored)
	if err != nil {
		logger.Warn(fmt.Errorf("discarding unparseable search history: %w", err))
		return s.copyEntries()
	}

	s.entries = sanitize(stored)

	return s.copyEntries()
}

// Record moves city to the front of the history with the given time and persists it.
func (s *Store) Record(ctx context.Context, city string, at time.Time) ([]model.SearchHistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.SearchHistoryEntry{City: city, Timestamp: at.UnixMilli()}
	s.entries = upsert(s.entries, entry)

	err := s.persist(ctx)
	if err != nil {
		return s.copyEntries(), err
	}

	return s.copyEntries(), nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []model.SearchHistoryEntry{}

	return s.persist(ctx)
}

// Entries returns the current entries, newest first.
func (s *Store) Entries() []model.SearchHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyEntries()
}

func (s *Store) persist(ctx context.Context) error {
	body, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal search history: %w", err)
	}

	err = s.storage.Set(ctx, repository.SearchHistoryKey, string(body))
	if err != nil {
		return fmt.Errorf("failed to persist search history: %w", err)
	}

	return nil
}

func (s *Store) copyEntries() []model.SearchHistoryEntry {
	out := make([]model.SearchHistoryEntry, len(s.entries))
	copy(out, s.entries)

	return out
}

// upsert drops any entry for the same city, prepends entry and caps the list.
func upsert(entries []model.SearchHistoryEntry, entry model.SearchHistoryEntry) []model.SearchHistoryEntry {
	out := make([]model.SearchHistoryEntry, 0, MaxEntries)
	out = append(out, entry)

	for _, e := range entries {
		if len(out) == MaxEntries {
			break
		}
		if strings.EqualFold(e.City, entry.City) {
			continue
		}

		out = append(out, e)
	}

	return out
}

// sanitize enforces uniqueness and capacity on a restored list, keeping order.
func sanitize(entries []model.SearchHistoryEntry) []model.SearchHistoryEntry {
	out := make([]model.SearchHistoryEntry, 0, MaxEntries)

	for _, e := range entries {
		if len(out) == MaxEntries {
			break
		}
		if strings.TrimSpace(e.City) == "" || contains(out, e.City) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func contains(entries []model.SearchHistoryEntry, city string) bool {
	for _, e := range entries {
		if strings.EqualFold(e.City, city) {
			return true
		}
	}

	return false
}
