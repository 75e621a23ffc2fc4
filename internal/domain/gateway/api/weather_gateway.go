package api

import (
	"yatra-api/internal/domain/model/external"
)

// WeatherGateway defines the interface for the live weather provider.
type WeatherGateway interface {
	// CurrentAndForecast issues a single query for a city and returns current
	// conditions plus the short daily forecast.
	CurrentAndForecast(cityName string) (*external.WeatherResponse, error)
}
