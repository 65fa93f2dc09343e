package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katiamach/weather-dashboard-api/internal/gateway"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/model"
	"github.com/katiamach/weather-dashboard-api/internal/navigation"
	"github.com/katiamach/weather-dashboard-api/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherController HistoryStore ThemeStore Navigator

// WeatherController provides weather search methods.
type WeatherController interface {
	Search(ctx context.Context, input string) error
	Refresh(ctx context.Context) error
	State() model.WeatherState
}

// HistoryStore provides search history methods.
type HistoryStore interface {
	Entries() []model.SearchHistoryEntry
	Clear(ctx context.Context) error
}

// ThemeStore provides theme preference methods.
type ThemeStore interface {
	IsDark() bool
	Set(ctx context.Context, dark bool) error
	Toggle(ctx context.Context) (bool, error)
}

// Navigator provides current page methods.
type Navigator interface {
	Current() navigation.Page
	Go(p navigation.Page) error
}

// WeatherServer is a server for the weather dashboard.
type WeatherServer struct {
	weather WeatherController
	history HistoryStore
	theme   ThemeStore
	nav     Navigator
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(weather WeatherController, history HistoryStore, theme ThemeStore, nav Navigator) *WeatherServer {
	return &WeatherServer{
		weather: weather,
		history: history,
		theme:   theme,
		nav:     nav,
	}
}

// Register adds the dashboard routes to r.
func (s *WeatherServer) Register(r *mux.Router) {
	r.HandleFunc("/health", s.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/weather/search", s.SearchHandler).Methods(http.MethodGet)
	r.HandleFunc("/weather/refresh", s.RefreshHandler).Methods(http.MethodPost)
	r.HandleFunc("/weather/state", s.StateHandler).Methods(http.MethodGet)

	r.HandleFunc("/history", s.HistoryHandler).Methods(http.MethodGet)
	r.HandleFunc("/history", s.ClearHistoryHandler).Methods(http.MethodDelete)

	r.HandleFunc("/preferences/theme", s.ThemeHandler).Methods(http.MethodGet)
	r.HandleFunc("/preferences/theme", s.SetThemeHandler).Methods(http.MethodPut)
	r.HandleFunc("/preferences/theme/toggle", s.ToggleThemeHandler).Methods(http.MethodPost)

	r.HandleFunc("/navigation", s.NavigationHandler).Methods(http.MethodGet)
	r.HandleFunc("/navigation", s.SetNavigationHandler).Methods(http.MethodPut)

	r.HandleFunc("/analysis", s.MetricsHandler).Methods(http.MethodGet)
	r.HandleFunc("/analysis/{metric}", s.AnalysisHandler).Methods(http.MethodGet)
	r.HandleFunc("/pages/{name}", s.PageHandler).Methods(http.MethodGet)
}

// HealthHandler reports that the server is up.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SearchHandler handles Search request. The body is the resulting state.
func (s *WeatherServer) SearchHandler(w http.ResponseWriter, r *http.Request) {
	err := s.weather.Search(r.Context(), r.URL.Query().Get("city"))
	s.respondState(w, err)
}

// RefreshHandler handles Refresh request.
func (s *WeatherServer) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	err := s.weather.Refresh(r.Context())
	s.respondState(w, err)
}

// StateHandler returns the current weather state.
func (s *WeatherServer) StateHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.weather.State())
}

func (s *WeatherServer) respondState(w http.ResponseWriter, err error) {
	code := searchStatus(err)
	if code >= http.StatusInternalServerError {
		logger.Error(fmt.Errorf("failed to get weather: %v", err))
	}

	respond(w, code, s.weather.State())
}

func searchStatus(err error) int {
	var gerr *gateway.Error

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrEmptyCity):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSuperseded):
		return http.StatusConflict
	case errors.As(err, &gerr):
		switch gerr.Kind {
		case gateway.KindNotFound:
			return http.StatusNotFound
		case gateway.KindRequestSetup:
			return http.StatusInternalServerError
		default:
			return http.StatusBadGateway
		}
	default:
		return http.StatusInternalServerError
	}
}
