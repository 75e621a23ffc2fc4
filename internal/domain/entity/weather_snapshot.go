package entity

// ForecastEntry is a single day of the short forecast. Day holds the
// day-of-week name derived from the upstream date, not the array position.
type ForecastEntry struct {
	Day  string  `json:"day"`
	Icon string  `json:"icon"`
	Temp float64 `json:"temp"`
}

// WeatherSnapshot is the persisted current-conditions record for a city.
// At most one snapshot exists per city; a new fetch replaces the old one.
// Snapshots are derived data and safe to regenerate at any time.
type WeatherSnapshot struct {
	ID          int64           `json:"id"`
	CityID      int64           `json:"cityId"`
	Temperature float64         `json:"temperature"`
	Description string          `json:"description"`
	Humidity    int             `json:"humidity"`
	WindSpeed   float64         `json:"windSpeed"`
	UVIndex     float64         `json:"uvIndex"`
	Forecast    []ForecastEntry `json:"forecast"`
}
