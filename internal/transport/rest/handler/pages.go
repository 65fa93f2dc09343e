package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katiamach/weather-dashboard-api/internal/analysis"
	"github.com/katiamach/weather-dashboard-api/internal/content"
)

var errUnknownPage = errors.New("page not found")

// MetricsHandler lists the analysis metrics.
func (s *WeatherServer) MetricsHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, analysis.Metrics())
}

// AnalysisHandler returns the historical series of a metric.
func (s *WeatherServer) AnalysisHandler(w http.ResponseWriter, r *http.Request) {
	series, err := analysis.Get(analysis.Metric(mux.Vars(r)["metric"]))
	if errors.Is(err, analysis.ErrUnknownMetric) {
		respondErr(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, series)
}

// PageHandler returns the content of an informational page.
func (s *WeatherServer) PageHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch mux.Vars(r)["name"] {
	case "health":
		respond(w, http.StatusOK, content.HealthTips())
	case "travel":
		tips, err := content.TravelTips(query.Get("season"))
		if err != nil {
			respondErr(w, http.StatusBadRequest, err)
			return
		}
		respond(w, http.StatusOK, tips)
	case "news":
		respond(w, http.StatusOK, content.News(query.Get("category")))
	case "about":
		respond(w, http.StatusOK, content.About())
	default:
		respondErr(w, http.StatusNotFound, errUnknownPage)
	}
}
