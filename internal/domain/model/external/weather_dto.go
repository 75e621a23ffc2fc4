package external

// WeatherResponse represents the response from the weather provider: current
// conditions plus a short daily forecast in a single query.
type WeatherResponse struct {
	Location LocationDTO       `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast []ForecastDayDTO  `json:"forecast"`
}

// LocationDTO identifies the resolved location in the provider response.
type LocationDTO struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// CurrentConditions represents the current weather block.
type CurrentConditions struct {
	TempC         float64 `json:"temp_c"`
	Humidity      int     `json:"humidity"`
	WindKph       float64 `json:"wind_kph"`
	UVIndex       float64 `json:"uv"`
	ConditionCode int     `json:"condition_code"`
	ConditionText string  `json:"condition_text"`
}

// ForecastDayDTO represents a single forecast day. DateEpoch is the UTC
// timestamp of the forecast day.
type ForecastDayDTO struct {
	DateEpoch     int64   `json:"date_epoch"`
	ConditionCode int     `json:"condition_code"`
	AvgTempC      float64 `json:"avgtemp_c"`
}

// WeatherAPIError represents error responses from the weather provider.
type WeatherAPIError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
