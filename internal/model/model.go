// Package model contains weather dashboard data types.
package model

// ForecastDays is the forecast horizon requested for every search.
const ForecastDays = 5

// Location identifies the resolved place returned by the weather API.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat,omitempty"`
	Lon       float64 `json:"lon,omitempty"`
	LocalTime string  `json:"localtime,omitempty"`
}

// Condition describes weather condition text and icon.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code,omitempty"`
}

// CurrentConditions is a snapshot of the current weather.
type CurrentConditions struct {
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feelslike_c,omitempty"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	LastUpdated string    `json:"last_updated,omitempty"`
}

// HourlyConditions contains one hour of a forecast day.
type HourlyConditions struct {
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	Condition    Condition `json:"condition"`
	WindKph      float64   `json:"wind_kph"`
	ChanceOfRain int       `json:"chance_of_rain"`
}

// DaySummary contains aggregated values of a forecast day.
type DaySummary struct {
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxTempC          float64   `json:"maxtemp_c,omitempty"`
	MinTempC          float64   `json:"mintemp_c,omitempty"`
	Condition         Condition `json:"condition"`
	AvgHumidity       float64   `json:"avghumidity"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	UV                float64   `json:"uv"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
}

// ForecastDay is one day of the forecast.
type ForecastDay struct {
	Date string             `json:"date"`
	Day  DaySummary         `json:"day"`
	Hour []HourlyConditions `json:"hour"`
}

// EveryOtherHour returns even hours of the day, as shown in the hourly strip.
func (d ForecastDay) EveryOtherHour() []HourlyConditions {
	hours := make([]HourlyConditions, 0, (len(d.Hour)+1)/2)
	for i := 0; i < len(d.Hour); i += 2 {
		hours = append(hours, d.Hour[i])
	}

	return hours
}

// ForecastSet is the chronological list of forecast days, first is the query day.
type ForecastSet []ForecastDay

// Detail returns at most n leading days, used for the detailed day cards.
func (fs ForecastSet) Detail(n int) ForecastSet {
	if n < 0 {
		n = 0
	}
	if n > len(fs) {
		n = len(fs)
	}

	return fs[:n]
}

// CurrentBundle is the payload of the current conditions endpoint.
type CurrentBundle struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// ForecastBundle is the payload of the forecast endpoint.
type ForecastBundle struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast struct {
		ForecastDay ForecastSet `json:"forecastday"`
	} `json:"forecast"`
}

// SearchHistoryEntry is one recent search.
type SearchHistoryEntry struct {
	City string `json:"city"`
	// Timestamp is epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// WeatherState is what the dashboard renders.
type WeatherState struct {
	Location  *Location          `json:"location"`
	Current   *CurrentConditions `json:"current"`
	Forecast  ForecastSet        `json:"forecast"`
	IsLoading bool               `json:"isLoading"`
	Error     *string            `json:"error"`
}

// HasData reports whether the state holds a settled search result.
func (s WeatherState) HasData() bool {
	return s.Location != nil
}

// Clone returns a deep copy so readers never share memory with the writer.
func (s WeatherState) Clone() WeatherState {
	out := WeatherState{IsLoading: s.IsLoading}

	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	if s.Current != nil {
		cur := *s.Current
		out.Current = &cur
	}
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	if s.Forecast != nil {
		out.Forecast = make(ForecastSet, len(s.Forecast))
		for i, d := range s.Forecast {
			d.Hour = append([]HourlyConditions(nil), d.Hour...)
			out.Forecast[i] = d
		}
	}

	return out
}
