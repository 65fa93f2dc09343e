// Package service implements the weather search flow of the dashboard.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katiamach/weather-dashboard-api/internal/city"
	"github.com/katiamach/weather-dashboard-api/internal/gateway"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/navigation"
	"github.com/katiamach/weather-dashboard-api/internal/state"
	"golang.org/x/sync/errgroup"
)

// Messages put into the weather state.
const (
	emptyCityMessage = "Please enter a city name"
	unknownMessage   = "Failed to fetch weather data. Please try again."
)

var (
	ErrEmptyCity  = errors.New("city name is empty")
	ErrSuperseded = errors.New("search was superseded by a newer one")
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Gateway HistoryRecorder

// Gateway provides weather API methods.
type Gateway interface {
	FetchCurrent(ctx context.Context, city string) (*model.CurrentBundle, error)
	FetchForecast(ctx context.Context, city string) (*model.ForecastBundle, error)
}

// HistoryRecorder stores successful searches.
type HistoryRecorder interface {
	Record(ctx context.Context, city string, at time.Time) ([]model.SearchHistoryEntry, error)
}

// NavigateFunc is called with the page to show after a successful search.
type NavigateFunc func(page navigation.Page)

// Option configures WeatherController.
type Option func(*WeatherController)

// WithClock replaces the clock used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *WeatherController) {
		c.now = now
	}
}

// WeatherController runs searches and owns the weather state.
type WeatherController struct {
	gateway  Gateway
	history  HistoryRecorder
	state    *state.Holder
	navigate NavigateFunc
	now      func() time.Time

	// mu orders dispatches and settles; seq is the latest dispatched search.
	mu  sync.Mutex
	seq uint64
}

// New creates new WeatherController.
func New(gw Gateway, history HistoryRecorder, holder *state.Holder, navigate NavigateFunc, opts ...Option) *WeatherController {
	c := &WeatherController{
		gateway:  gw,
		history:  history,
		state:    holder,
		navigate: navigate,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a snapshot of the weather state.
func (c *WeatherController) State() model.WeatherState {
	return c.state.Snapshot()
}

// Search fetches current conditions and forecast for input.
// It returns ErrEmptyCity without any request when input normalizes to nothing,
// and ErrSuperseded when a newer search was started before this one settled.
func (c *WeatherController) Search(ctx context.Context, input string) error {
	query := city.Normalize(input)

	if query == "" {
		c.mu.Lock()
		c.seq++
		c.state.Update(func(s *model.WeatherState) {
			s.IsLoading = false
			s.Error = message(emptyCityMessage)
		})
		c.mu.Unlock()

		return ErrEmptyCity
	}

	seq := c.dispatch()
	log := logger.WithFields(logger.Fields{"city": query, "seq": seq})

	current, forecast, err := c.fetch(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		log.Debug("discarding stale search result")
		return ErrSuperseded
	}

	if err != nil {
		log.WithError(err).Info("weather search failed")
		c.state.Update(func(s *model.WeatherState) {
			s.Location = nil
			s.Current = nil
			s.Forecast = nil
			s.IsLoading = false
			s.Error = message(userMessage(err))
		})

		return err
	}

	location := current.Location
	conditions := current.Current
	c.state.Update(func(s *model.WeatherState) {
		s.Location = &location
		s.Current = &conditions
		s.Forecast = forecast.Forecast.ForecastDay
		s.IsLoading = false
		s.Error = nil
	})

	_, err = c.history.Record(ctx, query, c.now())
	if err != nil {
		logger.Error(fmt.Errorf("failed to record search history: %w", err))
	}

	log.WithField("location", location.Name).Info("weather search succeeded")

	if c.navigate != nil {
		c.navigate(navigation.PageForecast)
	}

	return nil
}

// Refresh repeats the search for the held location. Without one it does nothing.
func (c *WeatherController) Refresh(ctx context.Context) error {
	s := c.state.Snapshot()
	if s.Location == nil {
		return nil
	}

	return c.Search(ctx, s.Location.Name)
}

func (c *WeatherController) dispatch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state.Update(func(s *model.WeatherState) {
		s.IsLoading = true
		s.Error = nil
	})

	return c.seq
}

// fetch runs both calls together; the first failure cancels the other one.
func (c *WeatherController) fetch(ctx context.Context, query string) (*model.CurrentBundle, *model.ForecastBundle, error) {
	var (
		current  *model.CurrentBundle
		forecast *model.ForecastBundle
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b, err := c.gateway.FetchCurrent(gctx, query)
		if err != nil {
			return err
		}

		current = b
		return nil
	})

	g.Go(func() error {
		b, err := c.gateway.FetchForecast(gctx, query)
		if err != nil {
			return err
		}

		forecast = b
		return nil
	})

	err := g.Wait()
	if err != nil {
		return nil, nil, err
	}

	return current, forecast, nil
}

func userMessage(err error) string {
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		return gerr.Error()
	}

	return unknownMessage
}

func message(msg string) *string {
	return &msg
}
