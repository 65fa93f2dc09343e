package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/katiamach/weather-dashboard-api/internal/gateway"
	"github.com/katiamach/weather-dashboard-api/internal/history"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/navigation"
	"github.com/katiamach/weather-dashboard-api/internal/repository"
	"github.com/katiamach/weather-dashboard-api/internal/state"
	"github.com/tj/assert"

	mock "github.com/katiamach/weather-dashboard-api/internal/service/mock"
)

var errTest = errors.New("test error")

// memStorage is an in memory history storage.
type memStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// pageRecorder collects navigation signals.
type pageRecorder struct {
	mu    sync.Mutex
	pages []navigation.Page
}

func (p *pageRecorder) navigate(page navigation.Page) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pages = append(p.pages, page)
}

func (p *pageRecorder) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.pages)
}

// fakeClock returns the queued times in order.
type fakeClock struct {
	mu    sync.Mutex
	times []time.Time
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := f.times[0]
	if len(f.times) > 1 {
		f.times = f.times[1:]
	}
	return t
}

func currentBundle(name, country string) *model.CurrentBundle {
	return &model.CurrentBundle{
		Location: model.Location{Name: name, Country: country},
		Current: model.CurrentConditions{
			TempC:     12,
			Condition: model.Condition{Text: "Partly cloudy", Icon: "//cdn/116.png"},
			Humidity:  70,
			WindKph:   11,
		},
	}
}

func forecastBundle(name, country string) *model.ForecastBundle {
	b := &model.ForecastBundle{Location: model.Location{Name: name, Country: country}}
	for i := 0; i < model.ForecastDays; i++ {
		day := model.ForecastDay{Date: fmt.Sprintf("2024-05-0%d", i+1)}
		for h := 0; h < 24; h++ {
			day.Hour = append(day.Hour, model.HourlyConditions{Time: fmt.Sprintf("%s %02d:00", day.Date, h)})
		}
		b.Forecast.ForecastDay = append(b.Forecast.ForecastDay, day)
	}

	return b
}

// expectCity makes gw answer for the normalized city.
func expectCity(gw *mock.MockGateway, query, name, country string) {
	gw.EXPECT().FetchCurrent(gomock.Any(), query).Return(currentBundle(name, country), nil)
	gw.EXPECT().FetchForecast(gomock.Any(), query).Return(forecastBundle(name, country), nil)
}

func newController(t *testing.T, opts ...Option) (*WeatherController, *mock.MockGateway, *history.Store, *pageRecorder) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	hist := history.New(&memStorage{})
	pages := &pageRecorder{}

	c := New(gw, hist, state.NewHolder(), pages.navigate, opts...)

	return c, gw, hist, pages
}

func historyCities(entries []model.SearchHistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.City)
	}

	return out
}

func TestSearchEndToEnd(t *testing.T) {
	c, gw, hist, pages := newController(t)
	expectCity(gw, "London", "London", "United Kingdom")

	err := c.Search(context.Background(), "london")
	assert.Nil(t, err)

	st := c.State()
	assert.Equal(t, "London", st.Location.Name)
	assert.Equal(t, "United Kingdom", st.Location.Country)
	assert.Equal(t, 12.0, st.Current.TempC)
	assert.Len(t, st.Forecast, 5)
	assert.Nil(t, st.Error)
	assert.False(t, st.IsLoading)
	assert.Equal(t, 1, pages.count())
	assert.Equal(t, []navigation.Page{navigation.PageForecast}, pages.pages)
	assert.Equal(t, []string{"London"}, historyCities(hist.Entries()))
}

func TestSearchNormalizesInput(t *testing.T) {
	c, gw, _, _ := newController(t)
	expectCity(gw, "New York", "New York", "United States of America")

	assert.Nil(t, c.Search(context.Background(), "  new   york  "))
	assert.Equal(t, "New York", c.State().Location.Name)
}

func TestSearchEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", "?!"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			c, _, hist, pages := newController(t)

			err := c.Search(context.Background(), input)
			assert.Equal(t, ErrEmptyCity, err)

			st := c.State()
			assert.False(t, st.IsLoading)
			assert.NotNil(t, st.Error)
			assert.Equal(t, "please enter a city name", strings.ToLower(*st.Error))
			assert.Empty(t, hist.Entries())
			assert.Equal(t, 0, pages.count())
		})
	}
}

func TestSearchNotFound(t *testing.T) {
	c, gw, hist, pages := newController(t)
	expectCity(gw, "Paris", "Paris", "France")
	assert.Nil(t, c.Search(context.Background(), "paris"))

	notFound := &gateway.Error{Kind: gateway.KindNotFound, City: "Atlantis", Status: 400}
	gw.EXPECT().FetchCurrent(gomock.Any(), "Atlantis").Return(nil, notFound)
	gw.EXPECT().FetchForecast(gomock.Any(), "Atlantis").Return(nil, notFound).AnyTimes()

	err := c.Search(context.Background(), "atlantis")
	assert.True(t, gateway.IsKind(err, gateway.KindNotFound))

	st := c.State()
	assert.False(t, st.IsLoading)
	assert.NotNil(t, st.Error)
	assert.Contains(t, *st.Error, "not found")
	assert.Contains(t, *st.Error, "Atlantis")
	assert.Nil(t, st.Location)
	assert.Nil(t, st.Current)
	assert.Nil(t, st.Forecast)

	assert.Equal(t, []string{"Paris"}, historyCities(hist.Entries()))
	assert.Equal(t, 1, pages.count())
}

func TestSearchFailureLeavesHistoryAndNavigationUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	recorder := mock.NewMockHistoryRecorder(ctrl)
	pages := &pageRecorder{}

	c := New(gw, recorder, state.NewHolder(), pages.navigate)

	authErr := &gateway.Error{Kind: gateway.KindAuth, Status: 401}
	gw.EXPECT().FetchCurrent(gomock.Any(), "Paris").Return(currentBundle("Paris", "France"), nil).AnyTimes()
	gw.EXPECT().FetchForecast(gomock.Any(), "Paris").Return(nil, authErr)

	err := c.Search(context.Background(), "Paris")
	assert.True(t, gateway.IsKind(err, gateway.KindAuth))
	assert.Equal(t, "API key error. Please check your API key.", *c.State().Error)
	assert.Equal(t, 0, pages.count())
}

func TestSearchUnknownError(t *testing.T) {
	c, gw, _, _ := newController(t)
	gw.EXPECT().FetchCurrent(gomock.Any(), "Paris").Return(nil, errTest)
	gw.EXPECT().FetchForecast(gomock.Any(), "Paris").Return(forecastBundle("Paris", "France"), nil).AnyTimes()

	err := c.Search(context.Background(), "Paris")
	assert.Equal(t, errTest, err)
	assert.Equal(t, "Failed to fetch weather data. Please try again.", *c.State().Error)
}

func TestSearchFailsFast(t *testing.T) {
	c, gw, _, _ := newController(t)

	networkErr := &gateway.Error{Kind: gateway.KindNetwork, City: "Paris"}
	gw.EXPECT().FetchCurrent(gomock.Any(), "Paris").Return(nil, networkErr)
	gw.EXPECT().FetchForecast(gomock.Any(), "Paris").
		DoAndReturn(func(ctx context.Context, _ string) (*model.ForecastBundle, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).
		AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- c.Search(context.Background(), "Paris")
	}()

	select {
	case err := <-done:
		assert.Equal(t, networkErr, err)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not settle after the first failure")
	}
}

func TestSearchHistoryOrder(t *testing.T) {
	c, gw, hist, _ := newController(t)
	expectCity(gw, "Paris", "Paris", "France")
	expectCity(gw, "Tokyo", "Tokyo", "Japan")

	assert.Nil(t, c.Search(context.Background(), "Paris"))
	assert.Nil(t, c.Search(context.Background(), "Tokyo"))

	assert.Equal(t, []string{"Tokyo", "Paris"}, historyCities(hist.Entries()))
}

func TestSearchSameCityTwice(t *testing.T) {
	first := time.UnixMilli(1_700_000_000_000)
	second := first.Add(time.Hour)
	clock := &fakeClock{times: []time.Time{first, second}}

	c, gw, hist, pages := newController(t, WithClock(clock.now))
	expectCity(gw, "Paris", "Paris", "France")
	expectCity(gw, "Paris", "Paris", "France")

	assert.Nil(t, c.Search(context.Background(), "Paris"))
	assert.Nil(t, c.Search(context.Background(), "paris "))

	entries := hist.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Paris", entries[0].City)
	assert.Equal(t, second.UnixMilli(), entries[0].Timestamp)
	assert.Equal(t, 2, pages.count())
}

func TestSearchIsLoadingWhileInFlight(t *testing.T) {
	c, gw, _, _ := newController(t)

	var loading []bool
	var mu sync.Mutex
	observe := func() {
		mu.Lock()
		defer mu.Unlock()
		loading = append(loading, c.State().IsLoading)
	}

	gw.EXPECT().FetchCurrent(gomock.Any(), "Oslo").
		DoAndReturn(func(context.Context, string) (*model.CurrentBundle, error) {
			observe()
			return currentBundle("Oslo", "Norway"), nil
		})
	gw.EXPECT().FetchForecast(gomock.Any(), "Oslo").
		DoAndReturn(func(context.Context, string) (*model.ForecastBundle, error) {
			observe()
			return forecastBundle("Oslo", "Norway"), nil
		})

	assert.Nil(t, c.Search(context.Background(), "oslo"))

	assert.Equal(t, []bool{true, true}, loading)
	assert.False(t, c.State().IsLoading)
}

func TestSearchDiscardsStaleResult(t *testing.T) {
	c, gw, hist, pages := newController(t)

	started := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().FetchCurrent(gomock.Any(), "Paris").
		DoAndReturn(func(context.Context, string) (*model.CurrentBundle, error) {
			close(started)
			<-release
			return currentBundle("Paris", "France"), nil
		})
	gw.EXPECT().FetchForecast(gomock.Any(), "Paris").Return(forecastBundle("Paris", "France"), nil)
	expectCity(gw, "Tokyo", "Tokyo", "Japan")

	slow := make(chan error, 1)
	go func() {
		slow <- c.Search(context.Background(), "Paris")
	}()

	<-started
	assert.Nil(t, c.Search(context.Background(), "Tokyo"))
	close(release)

	assert.Equal(t, ErrSuperseded, <-slow)

	st := c.State()
	assert.Equal(t, "Tokyo", st.Location.Name)
	assert.False(t, st.IsLoading)
	assert.Equal(t, []string{"Tokyo"}, historyCities(hist.Entries()))
	assert.Equal(t, 1, pages.count())
}

func TestSearchHistoryFailureDoesNotFailSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	recorder := mock.NewMockHistoryRecorder(ctrl)
	pages := &pageRecorder{}

	c := New(gw, recorder, state.NewHolder(), pages.navigate)
	expectCity(gw, "Paris", "Paris", "France")
	recorder.EXPECT().Record(gomock.Any(), "Paris", gomock.Any()).Return(nil, errTest)

	assert.Nil(t, c.Search(context.Background(), "Paris"))
	assert.Nil(t, c.State().Error)
	assert.Equal(t, 1, pages.count())
}

func TestRefresh(t *testing.T) {
	t.Run("without location", func(t *testing.T) {
		c, _, _, pages := newController(t)

		assert.Nil(t, c.Refresh(context.Background()))
		assert.Equal(t, 0, pages.count())
		assert.False(t, c.State().IsLoading)
	})

	t.Run("with location", func(t *testing.T) {
		c, gw, hist, pages := newController(t)
		expectCity(gw, "Sao Paulo", "Sao Paulo", "Brazil")
		expectCity(gw, "Sao Paulo", "Sao Paulo", "Brazil")

		assert.Nil(t, c.Search(context.Background(), "sao paulo"))
		assert.Nil(t, c.Refresh(context.Background()))

		assert.Equal(t, "Sao Paulo", c.State().Location.Name)
		assert.Len(t, hist.Entries(), 1)
		assert.Equal(t, 2, pages.count())
	})
}

func TestSearchWithoutNavigator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	c := New(gw, history.New(&memStorage{}), state.NewHolder(), nil)
	expectCity(gw, "Rome", "Rome", "Italy")

	assert.Nil(t, c.Search(context.Background(), "rome"))
}
