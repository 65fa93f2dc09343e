package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/weather-dashboard-api/internal/config"
	"github.com/katiamach/weather-dashboard-api/internal/gateway"
	"github.com/katiamach/weather-dashboard-api/internal/history"
	"github.com/katiamach/weather-dashboard-api/internal/logger"
	"github.com/katiamach/weather-dashboard-api/internal/navigation"
	"github.com/katiamach/weather-dashboard-api/internal/preference"
	"github.com/katiamach/weather-dashboard-api/internal/repository"
	"github.com/katiamach/weather-dashboard-api/internal/service"
	"github.com/katiamach/weather-dashboard-api/internal/state"
	"github.com/katiamach/weather-dashboard-api/internal/transport/rest/handler"
)

const shutdownTimeout = 5 * time.Second

// RunAPI runs weather dashboard API.
func RunAPI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.SetLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn(fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err))
	}
	for _, w := range cfg.Warnings {
		logger.Warn(errors.New(w))
	}
	if cfg.WeatherAPIKey == "" {
		logger.Warn(errors.New("WEATHER_API_KEY is not set, weather requests will be rejected"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.StorageBackend, err)
	}
	defer func() {
		err := store.Close()
		if err != nil {
			logger.Error(fmt.Errorf("failed to close storage: %w", err))
		}
	}()

	hist := history.New(store)
	hist.Load(ctx)

	theme := preference.NewTheme(store)
	theme.Load(ctx)

	nav := navigation.New()
	controller := service.New(
		gateway.New(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.APITimeout),
		hist,
		state.NewHolder(),
		func(p navigation.Page) {
			err := nav.Go(p)
			if err != nil {
				logger.Error(fmt.Errorf("failed to navigate: %w", err))
			}
		},
	)

	server := handler.NewWeatherServer(controller, hist, theme, nav)

	r := mux.NewRouter()
	server.Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.CombinedLoggingHandler(logger.Writer(), handlers.CORS(setupCorsOptions(cfg.Origin)...)(r)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather dashboard api at port %s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down weather dashboard api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
