package travel

import (
	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/model"
)

type UseCase interface {
	// SearchCity resolves a free-text city name, aggregates all sources and
	// returns the merged envelope. The city is created on first sight.
	SearchCity(cityName string) (*model.SearchCityResponse, error)

	// SearchAnyCity builds the envelope from the live sources without touching
	// the persisted-city path. Fails when the encyclopedia has no summary.
	SearchAnyCity(cityName string) (*model.SearchCityResponse, error)

	// GetWeather returns the persisted weather snapshot for a city
	GetWeather(cityID int64) (*entity.WeatherSnapshot, error)

	// GetCityInfo returns the persisted city info record for a city
	GetCityInfo(cityID int64) (*entity.CityInfo, error)

	// GetTransportation resolves a city name and returns its transport options
	GetTransportation(cityName string) (*entity.Transportation, error)

	// FindAllCities returns a paginated list of known cities
	FindAllCities(page int, size int) (*model.Page[entity.City], error)

	// RefreshCity re-fetches the sources for a known city and upserts its
	// derived records
	RefreshCity(cityID int64) error

	// RefreshAllCities enqueues every known city for a snapshot refresh
	RefreshAllCities(requestID string) error
}
