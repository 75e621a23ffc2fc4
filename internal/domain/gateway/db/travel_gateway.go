package db

import (
	"errors"

	"yatra-api/internal/domain/entity"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// TravelGateway is the persistence contract for cities and their derived
// records. Implementations must make CreateCityIfAbsent atomic per
// canonical name (case-insensitive) and the upserts an atomic
// replace-or-insert per cityId.
type TravelGateway interface {
	// City operations
	FindCityByName(name string) (*entity.City, error)
	FindCityByID(id int64) (*entity.City, error)
	// CreateCityIfAbsent inserts the city unless one with the same
	// canonical name exists, and returns the surviving row either way.
	CreateCityIfAbsent(city entity.City) (*entity.City, error)
	// UpdateCityCoordinates sets coordinates opportunistically when a
	// source reports them. Zero-valued coordinates are never written over
	// known ones.
	UpdateCityCoordinates(id int64, latitude float64, longitude float64) error
	FindAllCities(page int, size int) ([]entity.City, error)
	CountCities() (int64, error)

	// Weather snapshot operations (one row per city)
	UpsertWeatherSnapshot(snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error)
	FindWeatherSnapshotByCityID(cityID int64) (*entity.WeatherSnapshot, error)

	// City info operations (one row per city)
	UpsertCityInfo(info entity.CityInfo) (*entity.CityInfo, error)
	FindCityInfoByCityID(cityID int64) (*entity.CityInfo, error)
}
