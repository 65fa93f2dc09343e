package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/navigation"
)

type themeBody struct {
	Dark *bool `json:"dark"`
}

type themeResponse struct {
	Dark bool `json:"dark"`
}

type pageBody struct {
	Page navigation.Page `json:"page"`
}

// HistoryHandler returns recent searches, newest first.
func (s *WeatherServer) HistoryHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.history.Entries())
}

// ClearHistoryHandler removes every recent search.
func (s *WeatherServer) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	err := s.history.Clear(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to clear history: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, s.history.Entries())
}

// ThemeHandler returns the theme preference.
func (s *WeatherServer) ThemeHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, themeResponse{Dark: s.theme.IsDark()})
}

// SetThemeHandler stores the theme preference.
func (s *WeatherServer) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if body.Dark == nil {
		respondErr(w, http.StatusBadRequest, errors.New("dark parameter not provided in body"))
		return
	}

	err = s.theme.Set(r.Context(), *body.Dark)
	if err != nil {
		logger.Error(fmt.Errorf("failed to set theme: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, themeResponse{Dark: s.theme.IsDark()})
}

// ToggleThemeHandler flips the theme preference.
func (s *WeatherServer) ToggleThemeHandler(w http.ResponseWriter, r *http.Request) {
	dark, err := s.theme.Toggle(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to toggle theme: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, themeResponse{Dark: dark})
}

// NavigationHandler returns the current page.
func (s *WeatherServer) NavigationHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, pageBody{Page: s.nav.Current()})
}

// SetNavigationHandler switches the current page.
func (s *WeatherServer) SetNavigationHandler(w http.ResponseWriter, r *http.Request) {
	var body pageBody
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondErr(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	err = s.nav.Go(body.Page)
	if errors.Is(err, navigation.ErrUnknownPage) {
		respondErr(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, pageBody{Page: s.nav.Current()})
}
