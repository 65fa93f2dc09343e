// Package content holds the static informational pages of the dashboard.
package content

import (
	"errors"
	"strings"
)

// ErrUnknownSeason is returned by TravelTips for seasons without tips.
var ErrUnknownSeason = errors.New("unknown season")

// AllSeasons selects every travel tip.
const AllSeasons = "all"

// HealthTip is advice for one kind of weather.
type HealthTip struct {
	ID      int      `json:"id"`
	Weather string   `json:"weather"`
	Title   string   `json:"title"`
	Tips    []string `json:"tips"`
}

// TravelTip is advice for travelling in a season.
type TravelTip struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Season       string   `json:"season"`
	Description  string   `json:"description"`
	Tips         []string `json:"tips"`
	Destinations []string `json:"destinations"`
	Avoid        []string `json:"avoid"`
}

// NewsItem is a weather news headline.
type NewsItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// Section is a titled block of the about page.
type Section struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
}

// HealthTips returns weather related health advice.
func HealthTips() []HealthTip {
	return []HealthTip{
		{ID: 1, Weather: "Hot Weather", Title: "Stay Hydrated in Heat Waves", Tips: []string{
			"Drink at least 8-10 glasses of water daily",
			"Avoid caffeinated and alcoholic beverages which can dehydrate you",
			"Eat water-rich fruits and vegetables",
			"Use electrolyte solutions for intense outdoor activities",
			"Schedule outdoor activities for cooler parts of the day",
		}},
		{ID: 2, Weather: "Air Pollution", Title: "Protect Your Lungs on High Pollution Days", Tips: []string{
			"Check air quality index before outdoor activities",
			"Wear N95 masks when pollution levels are high",
			"Keep windows closed during peak pollution hours",
			"Use air purifiers indoors when possible",
			"Avoid strenuous outdoor exercise when air quality is poor",
		}},
		{ID: 3, Weather: "Rainy Season", Title: "Stay Healthy During Monsoons", Tips: []string{
			"Keep umbrellas and raincoats readily available",
			"Wear waterproof footwear to prevent fungal infections",
			"Avoid walking through stagnant water which may carry diseases",
			"Ensure proper ventilation at home to prevent mold growth",
			"Consume freshly cooked, hot meals to avoid foodborne illness",
		}},
		{ID: 4, Weather: "Cold Weather", Title: "Protect Yourself in Winter", Tips: []string{
			"Dress in layers to trap warm air between garments",
			"Keep extremities covered with gloves, scarves, and hats",
			"Stay physically active to generate body heat",
			"Maintain proper humidity indoors (30-50%)",
			"Be aware of signs of hypothermia and frostbite",
		}},
		{ID: 5, Weather: "Allergies", Title: "Manage Seasonal Allergies", Tips: []string{
			"Monitor pollen counts daily through weather apps",
			"Keep windows closed during high pollen times",
			"Shower after outdoor activities to remove allergens",
			"Change clothes after being outdoors",
			"Consider using air purifiers with HEPA filters",
		}},
		{ID: 6, Weather: "UV Exposure", Title: "Protect Your Skin from Sun Damage", Tips: []string{
			"Apply broad-spectrum sunscreen (SPF 30+) 15 minutes before sun exposure",
			"Reapply sunscreen every two hours or after swimming/sweating",
			"Wear protective clothing, wide-brimmed hats, and sunglasses",
			"Seek shade during peak UV hours (10am-4pm)",
			"Check the UV index in your weather app before outdoor activities",
		}},
	}
}

var travelTips = []TravelTip{
	{
		ID: 1, Title: "Monsoon Travel Tips", Season: "rainy",
		Description: "Traveling during monsoon can be beautiful but requires extra preparation.",
		Tips: []string{
			"Pack waterproof bags for electronics and documents",
			"Carry raincoats or umbrellas at all times",
			"Use waterproof shoes with good grip",
			"Check weather forecasts daily for flooding warnings",
			"Consider travel insurance that covers weather disruptions",
		},
		Destinations: []string{"Kerala, India", "Bali, Indonesia", "Costa Rica", "Vietnam"},
		Avoid:        []string{"Desert treks", "Wildlife safaris", "Mountain climbing"},
	},
	{
		ID: 2, Title: "Winter Travel Essentials", Season: "winter",
		Description: "Cold weather travel can be magical with the right preparation.",
		Tips: []string{
			"Pack layers rather than single heavy garments",
			"Carry thermal gloves, socks, and headwear",
			"Use moisturizer and lip balm to combat dry air",
			"Check road conditions and flight status frequently",
			"Invest in quality insulated footwear",
		},
		Destinations: []string{"Swiss Alps", "Hokkaido, Japan", "Quebec, Canada", "Norway"},
		Avoid:        []string{"High altitude hikes without preparation", "Remote locations without winter gear"},
	},
	{
		ID: 3, Title: "Summer Heat Safety", Season: "summer",
		Description: "Enjoy summer travel while protecting yourself from extreme heat.",
		Tips: []string{
			"Stay hydrated with water (aim for 3-4 liters daily)",
			"Schedule outdoor activities for early morning or evening",
			"Use broad-spectrum sunscreen (SPF 50+) and reapply often",
			"Wear loose, light-colored clothing and a wide-brimmed hat",
			"Recognize signs of heat exhaustion and heat stroke",
		},
		Destinations: []string{"Greek Islands", "Southern Spain", "Hawaii", "Maldives"},
		Avoid:        []string{"Desert hikes during midday", "Extended outdoor activities without shade"},
	},
	{
		ID: 4, Title: "Spring Travel Planning", Season: "spring",
		Description: "Spring brings variable weather, be prepared for everything.",
		Tips: []string{
			"Pack for variable temperatures (layers are essential)",
			"Bring allergy medications if you're sensitive to pollen",
			"Check for regional weather patterns and seasonal events",
			"Be aware of flash flooding in some areas after winter thaw",
			"Consider travel insurance for weather-related cancellations",
		},
		Destinations: []string{"Japan (cherry blossom season)", "Netherlands (tulip season)", "New Zealand", "Washington D.C."},
		Avoid:        []string{"Areas prone to spring flooding", "Regions with extreme seasonal allergies if sensitive"},
	},
}

// TravelTips returns the tips for season, or every tip for AllSeasons and "".
func TravelTips(season string) ([]TravelTip, error) {
	season = strings.ToLower(strings.TrimSpace(season))
	if season == "" || season == AllSeasons {
		return append([]TravelTip(nil), travelTips...), nil
	}

	var out []TravelTip
	for _, tip := range travelTips {
		if tip.Season == season {
			out = append(out, tip)
		}
	}

	if len(out) == 0 {
		return nil, ErrUnknownSeason
	}

	return out, nil
}

var news = []NewsItem{
	{ID: 1, Title: "Record-Breaking Heat Wave Expected in Several Regions", Date: "May 19, 2023", Category: "Climate",
		Summary: "Meteorologists predict unprecedented temperatures in the upcoming weeks, with potential health risks for vulnerable populations."},
	{ID: 2, Title: "Tropical Storm Carlos Forms in the Atlantic", Date: "May 17, 2023", Category: "Storms",
		Summary: "The storm is expected to strengthen into a hurricane by the weekend, potentially affecting coastal areas."},
	{ID: 3, Title: "Scientists Develop New Model for Long-term Weather Prediction", Date: "May 15, 2023", Category: "Technology",
		Summary: "Revolutionary AI-powered system claims to forecast weather patterns with 87% accuracy up to 30 days in advance."},
	{ID: 4, Title: "Drought Conditions Worsen in Western States", Date: "May 12, 2023", Category: "Environment",
		Summary: "Water restrictions implemented as reservoir levels reach historic lows; agriculture sector prepares for significant impact."},
	{ID: 5, Title: "Unexpected Snowfall Surprises Southern Region", Date: "May 10, 2023", Category: "Unusual Events",
		Summary: "Rare May snowstorm dumps several inches in areas typically experiencing warm spring weather this time of year."},
	{ID: 6, Title: "Air Quality Warnings Issued for Major Metropolitan Areas", Date: "May 8, 2023", Category: "Health & Safety",
		Summary: "Combination of weather patterns and pollution leads to dangerous air quality; officials advise limiting outdoor activities."},
}

// News returns news items, filtered by category when it is not empty.
func News(category string) []NewsItem {
	out := make([]NewsItem, 0, len(news))
	for _, n := range news {
		if category == "" || strings.EqualFold(n.Category, category) {
			out = append(out, n)
		}
	}

	return out
}

// About returns the about page sections.
func About() []Section {
	return []Section{
		{Title: "Our Mission", Paragraphs: []string{
			"Weather Dashboard provides accurate, timely, and easy-to-understand weather information. We help users make informed decisions about daily activities, travel plans, and more.",
			"We present weather data in a user-friendly format, combining detailed forecasts with practical insights.",
		}},
		{Title: "App Features", Items: []string{
			"Real-time weather updates worldwide",
			"5-day detailed weather forecasts",
			"Weather data analysis and trends",
			"Dark/light theme for comfortable viewing",
			"Responsive design for all devices",
		}},
		{Title: "Our Data Sources", Paragraphs: []string{
			"Our weather data comes from WeatherAPI, providing comprehensive current conditions and forecasts globally.",
			"Historical charts compare current conditions with long-term averages.",
		}},
		{Title: "Privacy", Paragraphs: []string{
			"Search history and theme preference are kept in the dashboard's own storage and are never shared.",
		}},
	}
}
