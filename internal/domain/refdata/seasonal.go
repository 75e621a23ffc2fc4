package refdata

import (
	"time"

	"yatra-api/internal/domain/entity"
)

// SeasonalEstimate is a deterministic substitute for live weather, indexed by
// calendar month.
type SeasonalEstimate struct {
	Temperature float64
	Description string
	Humidity    int
}

// monthlyEstimates holds per-month tables for the reference cities. Month
// index is 1-based (January = 1).
var monthlyEstimates = map[string][12]SeasonalEstimate{
	"Delhi": {
		{14, "Cold and foggy post-monsoon winter", 70},
		{17, "Cool with clearing skies", 62},
		{23, "Pleasant early summer", 50},
		{30, "Hot and dry summer", 35},
		{35, "Very hot, peak summer with loo winds", 30},
		{34, "Humid with monsoon onset showers", 55},
		{31, "Monsoon rains and high humidity", 75},
		{30, "Monsoon showers continuing", 78},
		{29, "Retreating monsoon, warm and humid", 70},
		{26, "Post-monsoon, clear and pleasant", 55},
		{20, "Cool post-monsoon autumn", 55},
		{15, "Cold post-monsoon winter, cool and foggy mornings", 65},
	},
	"Mumbai": {
		{24, "Dry and pleasant winter", 60},
		{25, "Warm days, comfortable evenings", 60},
		{28, "Increasingly hot and humid", 65},
		{30, "Hot and humid pre-monsoon", 70},
		{32, "Very humid, pre-monsoon heat", 70},
		{30, "Monsoon onset, heavy showers", 85},
		{28, "Peak monsoon, persistent heavy rain", 88},
		{28, "Monsoon rains continuing", 86},
		{29, "Retreating monsoon, humid", 80},
		{31, "Post-monsoon October heat", 70},
		{29, "Post-monsoon, warm and drier", 62},
		{26, "Cool and dry post-monsoon winter", 58},
	},
	"Bangalore": {
		{21, "Cool and dry winter", 50},
		{24, "Warm days, cool nights", 45},
		{27, "Warm early summer", 40},
		{28, "Warmest month, afternoon thunderstorms", 45},
		{27, "Pre-monsoon showers, pleasant", 55},
		{24, "Monsoon clouds and steady drizzle", 70},
		{23, "Monsoon rains, overcast and cool", 75},
		{23, "Monsoon showers continuing", 74},
		{23, "Retreating monsoon showers", 72},
		{23, "Post-monsoon, mild and breezy", 65},
		{21, "Post-monsoon, cool and clear", 60},
		{20, "Cool and dry post-monsoon winter", 55},
	},
}

// genericEstimate applies the all-India seasonal rule: June-September is
// monsoon, October-February is post-monsoon/cool, March-May is summer.
func genericEstimate(month time.Month) SeasonalEstimate {
	switch {
	case month >= time.June && month <= time.September:
		return SeasonalEstimate{28, "Monsoon season, expect rain and high humidity", 80}
	case month >= time.March && month <= time.May:
		return SeasonalEstimate{34, "Hot summer, carry water and avoid midday sun", 40}
	default:
		return SeasonalEstimate{22, "Post-monsoon, cool and pleasant", 55}
	}
}

// SeasonalWeather returns the deterministic weather estimate for a city and
// month. The three reference cities use curated per-month tables; every other
// city follows the generic seasonal rule.
func SeasonalWeather(city string, month time.Month) SeasonalEstimate {
	if table, ok := monthlyEstimates[city]; ok {
		return table[int(month)-1]
	}
	return genericEstimate(month)
}

// PlaceholderForecast returns the fixed 7-day forecast used on the fallback
// path. Day labels start from the day after now so the shape matches a live
// forecast.
func PlaceholderForecast(city string, now time.Time) []entity.ForecastEntry {
	estimate := SeasonalWeather(city, now.Month())

	icon := "cloud-sun"
	switch {
	case estimate.Humidity >= 70:
		icon = "cloud-rain"
	case estimate.Humidity <= 40:
		icon = "sun"
	}

	entries := make([]entity.ForecastEntry, 0, 7)
	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		entries = append(entries, entity.ForecastEntry{
			Day:  day.Weekday().String()[:3],
			Icon: icon,
			Temp: estimate.Temperature,
		})
	}
	return entries
}
