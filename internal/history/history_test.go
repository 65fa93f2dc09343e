package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/repository"
	"github.com/tj/assert"

	mock "github.com/katiamach/weather-dashboard-api/internal/history/mock"
)

var errTest = errors.New("test error")

func cities(entries []model.SearchHistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.City)
	}

	return out
}

// recordingStorage expects any number of history writes and keeps the last one.
func recordingStorage(t *testing.T) (*mock.MockStorage, *string) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)

	saved := new(string)
	storage.EXPECT().
		Set(gomock.Any(), repository.SearchHistoryKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value string) error {
			*saved = value
			return nil
		}).
		AnyTimes()

	return storage, saved
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name           string
		stored         string
		storageErr     error
		expectedCities []string
	}{
		{
			name:           "nothing stored",
			storageErr:     repository.ErrKeyNotFound,
			expectedCities: []string{},
		},
		{
			name:           "storage failure",
			storageErr:     errTest,
			expectedCities: []string{},
		},
		{
			name:           "unparseable",
			stored:         "{not a list",
			expectedCities: []string{},
		},
		{
			name:           "valid",
			stored:         `[{"city":"Tokyo","timestamp":2},{"city":"Paris","timestamp":1}]`,
			expectedCities: []string{"Tokyo", "Paris"},
		},
		{
			name: "duplicates and overflow are dropped",
			stored: `[{"city":"Tokyo","timestamp":7},{"city":"tokyo","timestamp":6},{"city":"","timestamp":5},
				{"city":"Paris","timestamp":4},{"city":"Oslo","timestamp":3},{"city":"Rome","timestamp":2},
				{"city":"Lima","timestamp":1},{"city":"Cairo","timestamp":0}]`,
			expectedCities: []string{"Tokyo", "Paris", "Oslo", "Rome", "Lima"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockStorage(ctrl)

			storage.EXPECT().
				Get(ctx, repository.SearchHistoryKey).
				Return(tc.stored, tc.storageErr)

			s := New(storage)
			loaded := s.Load(ctx)

			assert.Equal(t, tc.expectedCities, cities(loaded))
			assert.Equal(t, tc.expectedCities, cities(s.Entries()))
		})
	}
}

func TestRecordNewestFirst(t *testing.T) {
	ctx := context.Background()
	storage, saved := recordingStorage(t)
	s := New(storage)

	now := time.UnixMilli(1_700_000_000_000)
	_, err := s.Record(ctx, "Paris", now)
	assert.Nil(t, err)
	entries, err := s.Record(ctx, "Tokyo", now.Add(time.Minute))
	assert.Nil(t, err)

	assert.Equal(t, []string{"Tokyo", "Paris"}, cities(entries))

	var persisted []model.SearchHistoryEntry
	assert.Nil(t, json.Unmarshal([]byte(*saved), &persisted))
	assert.Equal(t, entries, persisted)
}

func TestRecordDeduplicates(t *testing.T) {
	ctx := context.Background()
	storage, _ := recordingStorage(t)
	s := New(storage)

	first := time.UnixMilli(1000)
	second := time.UnixMilli(5000)

	_, err := s.Record(ctx, "Paris", first)
	assert.Nil(t, err)
	_, err = s.Record(ctx, "Oslo", first)
	assert.Nil(t, err)
	entries, err := s.Record(ctx, "PARIS", second)
	assert.Nil(t, err)

	assert.Equal(t, []string{"PARIS", "Oslo"}, cities(entries))
	assert.Equal(t, int64(5000), entries[0].Timestamp)
}

func TestRecordEvictsOldest(t *testing.T) {
	ctx := context.Background()
	storage, _ := recordingStorage(t)
	s := New(storage)

	for i, c := range []string{"Lima", "Rome", "Oslo", "Paris", "Tokyo", "Cairo"} {
		_, err := s.Record(ctx, c, time.UnixMilli(int64(i)))
		assert.Nil(t, err)
	}

	entries := s.Entries()
	assert.Len(t, entries, MaxEntries)
	assert.Equal(t, []string{"Cairo", "Tokyo", "Paris", "Oslo", "Rome"}, cities(entries))
}

func TestRecordPersistFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorage(ctrl)

	storage.EXPECT().
		Set(ctx, repository.SearchHistoryKey, gomock.Any()).
		Return(errTest)

	s := New(storage)
	entries, err := s.Record(ctx, "Paris", time.Now())

	assert.True(t, errors.Is(err, errTest))
	assert.Equal(t, []string{"Paris"}, cities(entries))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	storage, saved := recordingStorage(t)
	s := New(storage)

	_, err := s.Record(ctx, "Paris", time.Now())
	assert.Nil(t, err)

	assert.Nil(t, s.Clear(ctx))
	assert.Empty(t, s.Entries())
	assert.Equal(t, "[]", *saved)
}

func TestEntriesReturnsCopy(t *testing.T) {
	ctx := context.Background()
	storage, _ := recordingStorage(t)
	s := New(storage)

	_, err := s.Record(ctx, "Paris", time.Now())
	assert.Nil(t, err)

	entries := s.Entries()
	entries[0].City = "Changed"

	assert.Equal(t, "Paris", s.Entries()[0].City)
}
