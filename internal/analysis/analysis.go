// Package analysis serves the historical chart series of the analysis page.
// The series are fixed sample data, not measurements.
package analysis

import (
	"errors"
	"math"
)

// Metric names a chart series.
type Metric string

// Available metrics.
const (
	Temperature   Metric = "temperature"
	Precipitation Metric = "precipitation"
	Wind          Metric = "wind"
)

// ErrUnknownMetric is returned for metrics without a series.
var ErrUnknownMetric = errors.New("unknown metric")

// Point is one month of a series: this year's value and the long-term average.
type Point struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
	Avg   float64 `json:"avg"`
}

// Series is a labelled chart series.
type Series struct {
	Metric Metric  `json:"metric"`
	Title  string  `json:"title"`
	Unit   string  `json:"unit"`
	Points []Point `json:"points"`
	// Max is the largest value or average, the 100% mark of the chart.
	Max float64 `json:"max"`
}

var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var samples = map[Metric]struct {
	title, unit string
	values      [12]float64
	avgs        [12]float64
}{
	Temperature: {
		title:  "Temperature (°C)",
		unit:   "°C",
		values: [12]float64{5, 7, 10, 14, 18, 22, 25, 24, 20, 15, 10, 6},
		avgs:   [12]float64{4, 6, 9, 12, 16, 20, 23, 22, 19, 14, 9, 5},
	},
	Precipitation: {
		title:  "Precipitation (mm)",
		unit:   "mm",
		values: [12]float64{70, 60, 55, 50, 45, 40, 30, 35, 45, 55, 65, 75},
		avgs:   [12]float64{65, 55, 50, 45, 40, 35, 25, 30, 40, 50, 60, 70},
	},
	Wind: {
		title:  "Wind Speed (km/h)",
		unit:   "km/h",
		values: [12]float64{15, 16, 14, 12, 10, 8, 7, 8, 10, 12, 14, 16},
		avgs:   [12]float64{14, 15, 13, 11, 9, 7, 6, 7, 9, 11, 13, 15},
	},
}

// Metrics lists the available metrics in display order.
func Metrics() []Metric {
	return []Metric{Temperature, Precipitation, Wind}
}

// Get returns the series of metric m.
func Get(m Metric) (*Series, error) {
	sample, ok := samples[m]
	if !ok {
		return nil, ErrUnknownMetric
	}

	s := &Series{
		Metric: m,
		Title:  sample.title,
		Unit:   sample.unit,
		Points: make([]Point, len(months)),
	}

	for i, month := range months {
		s.Points[i] = Point{Month: month, Value: sample.values[i], Avg: sample.avgs[i]}
		s.Max = math.Max(s.Max, math.Max(sample.values[i], sample.avgs[i]))
	}

	return s, nil
}

// Percent returns v as a share of the series maximum, clamped to [0, 100].
func (s *Series) Percent(v float64) float64 {
	if s.Max <= 0 {
		return 0
	}

	return math.Min(100, math.Max(0, v/s.Max*100))
}
