package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"yatra-api/internal/domain/entity"
)

// SQLTravelGateway implements TravelGateway on database/sql. Uniqueness of
// the canonical name is enforced by a unique index on lower(name), so the
// create-if-absent path is race-free across instances.
type SQLTravelGateway struct {
	DB *sql.DB
}

var _ TravelGateway = (*SQLTravelGateway)(nil)

func NewSQLTravelGateway(db *sql.DB) *SQLTravelGateway {
	return &SQLTravelGateway{DB: db}
}

// FindCityByName retrieves a city by canonical name, case-insensitively.
func (gateway *SQLTravelGateway) FindCityByName(name string) (*entity.City, error) {
	query := `
		SELECT id, name, state, country, latitude, longitude
		FROM cities
		WHERE lower(name) = lower($1)`

	var city entity.City
	err := gateway.DB.QueryRow(query, name).
		Scan(&city.ID, &city.Name, &city.State, &city.Country, &city.Latitude, &city.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// FindCityByID retrieves a city by its id.
func (gateway *SQLTravelGateway) FindCityByID(id int64) (*entity.City, error) {
	query := `
		SELECT id, name, state, country, latitude, longitude
		FROM cities
		WHERE id = $1`

	var city entity.City
	err := gateway.DB.QueryRow(query, id).
		Scan(&city.ID, &city.Name, &city.State, &city.Country, &city.Latitude, &city.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// CreateCityIfAbsent inserts the city and returns it, or returns the existing
// row when another caller created it first. ON CONFLICT DO NOTHING plus the
// follow-up read keeps the operation atomic per canonical name.
func (gateway *SQLTravelGateway) CreateCityIfAbsent(city entity.City) (*entity.City, error) {
	query := `
		INSERT INTO cities (name, state, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (lower(name)) DO NOTHING
		RETURNING id, name, state, country, latitude, longitude`

	var created entity.City
	err := gateway.DB.QueryRow(query, city.Name, city.State, city.Country, city.Latitude, city.Longitude).
		Scan(&created.ID, &created.Name, &created.State, &created.Country, &created.Latitude, &created.Longitude)
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to create city %q: %w", city.Name, err)
	}

	// Conflict: someone else holds the name. Read the surviving row.
	existing, err := gateway.FindCityByName(city.Name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("city %q neither created nor found", city.Name)
	}
	return existing, nil
}

// UpdateCityCoordinates sets the coordinates for a city, but never overwrites
// known coordinates with zero values.
func (gateway *SQLTravelGateway) UpdateCityCoordinates(id int64, latitude float64, longitude float64) error {
	if latitude == 0 && longitude == 0 {
		return nil
	}
	_, err := gateway.DB.Exec(
		`UPDATE cities SET latitude = $2, longitude = $3 WHERE id = $1`,
		id, latitude, longitude)
	return err
}

// FindAllCities retrieves cities with offset pagination, ordered by id.
func (gateway *SQLTravelGateway) FindAllCities(page int, size int) ([]entity.City, error) {
	if size <= 0 {
		return []entity.City{}, nil
	}
	if page < 0 {
		page = 0
	}

	query := `
		SELECT id, name, state, country, latitude, longitude
		FROM cities
		ORDER BY id ASC
		OFFSET $1 LIMIT $2`

	rows, err := gateway.DB.Query(query, page*size, size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]entity.City, 0)
	for rows.Next() {
		var city entity.City
		if err := rows.Scan(&city.ID, &city.Name, &city.State, &city.Country, &city.Latitude, &city.Longitude); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// CountCities returns the total number of cities.
func (gateway *SQLTravelGateway) CountCities() (int64, error) {
	var count int64
	err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM cities`).Scan(&count)
	return count, err
}

// UpsertWeatherSnapshot replaces or inserts the single snapshot row for the
// snapshot's city. The forecast is stored as JSONB.
func (gateway *SQLTravelGateway) UpsertWeatherSnapshot(snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error) {
	forecastJSON, err := json.Marshal(snapshot.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize forecast: %w", err)
	}

	query := `
		INSERT INTO weather_snapshots (city_id, temperature, description, humidity, wind_speed, uv_index, forecast)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (city_id) DO UPDATE SET
			temperature = EXCLUDED.temperature,
			description = EXCLUDED.description,
			humidity = EXCLUDED.humidity,
			wind_speed = EXCLUDED.wind_speed,
			uv_index = EXCLUDED.uv_index,
			forecast = EXCLUDED.forecast
		RETURNING id`

	err = gateway.DB.QueryRow(query,
		snapshot.CityID, snapshot.Temperature, snapshot.Description,
		snapshot.Humidity, snapshot.WindSpeed, snapshot.UVIndex, forecastJSON).
		Scan(&snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert weather snapshot for city %d: %w", snapshot.CityID, err)
	}
	return &snapshot, nil
}

// FindWeatherSnapshotByCityID retrieves the snapshot for a city.
func (gateway *SQLTravelGateway) FindWeatherSnapshotByCityID(cityID int64) (*entity.WeatherSnapshot, error) {
	query := `
		SELECT id, city_id, temperature, description, humidity, wind_speed, uv_index, forecast
		FROM weather_snapshots
		WHERE city_id = $1`

	var snapshot entity.WeatherSnapshot
	var forecastJSON []byte
	err := gateway.DB.QueryRow(query, cityID).
		Scan(&snapshot.ID, &snapshot.CityID, &snapshot.Temperature, &snapshot.Description,
			&snapshot.Humidity, &snapshot.WindSpeed, &snapshot.UVIndex, &forecastJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(forecastJSON, &snapshot.Forecast); err != nil {
		return nil, fmt.Errorf("failed to deserialize forecast for city %d: %w", cityID, err)
	}
	return &snapshot, nil
}

// UpsertCityInfo replaces or inserts the single info row for the info's city.
// List-valued fields and the emergency contacts are stored as JSONB.
func (gateway *SQLTravelGateway) UpsertCityInfo(info entity.CityInfo) (*entity.CityInfo, error) {
	languagesJSON, err := json.Marshal(info.LocalLanguages)
	if err != nil {
		return nil, err
	}
	tipsJSON, err := json.Marshal(info.CulturalTips)
	if err != nil {
		return nil, err
	}
	attractionsJSON, err := json.Marshal(info.TouristAttractions)
	if err != nil {
		return nil, err
	}
	cuisineJSON, err := json.Marshal(info.LocalCuisine)
	if err != nil {
		return nil, err
	}
	contactsJSON, err := json.Marshal(info.EmergencyContacts)
	if err != nil {
		return nil, err
	}
	festivalsJSON, err := json.Marshal(info.Festivals)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO city_infos (city_id, historical_info, best_time_to_visit, local_languages,
			cultural_tips, safety_rating, crime_rate, tourist_safety, tourist_attractions,
			local_cuisine, emergency_contacts, political_info, festivals)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (city_id) DO UPDATE SET
			historical_info = EXCLUDED.historical_info,
			best_time_to_visit = EXCLUDED.best_time_to_visit,
			local_languages = EXCLUDED.local_languages,
			cultural_tips = EXCLUDED.cultural_tips,
			safety_rating = EXCLUDED.safety_rating,
			crime_rate = EXCLUDED.crime_rate,
			tourist_safety = EXCLUDED.tourist_safety,
			tourist_attractions = EXCLUDED.tourist_attractions,
			local_cuisine = EXCLUDED.local_cuisine,
			emergency_contacts = EXCLUDED.emergency_contacts,
			political_info = EXCLUDED.political_info,
			festivals = EXCLUDED.festivals
		RETURNING id`

	err = gateway.DB.QueryRow(query,
		info.CityID, info.HistoricalInfo, info.BestTimeToVisit, languagesJSON,
		tipsJSON, info.SafetyRating, info.CrimeRate, info.TouristSafety, attractionsJSON,
		cuisineJSON, contactsJSON, info.PoliticalInfo, festivalsJSON).
		Scan(&info.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert city info for city %d: %w", info.CityID, err)
	}
	return &info, nil
}

// FindCityInfoByCityID retrieves the info row for a city.
func (gateway *SQLTravelGateway) FindCityInfoByCityID(cityID int64) (*entity.CityInfo, error) {
	query := `
		SELECT id, city_id, historical_info, best_time_to_visit, local_languages,
			cultural_tips, safety_rating, crime_rate, tourist_safety, tourist_attractions,
			local_cuisine, emergency_contacts, political_info, festivals
		FROM city_infos
		WHERE city_id = $1`

	var info entity.CityInfo
	var languagesJSON, tipsJSON, attractionsJSON, cuisineJSON, contactsJSON, festivalsJSON []byte
	err := gateway.DB.QueryRow(query, cityID).
		Scan(&info.ID, &info.CityID, &info.HistoricalInfo, &info.BestTimeToVisit, &languagesJSON,
			&tipsJSON, &info.SafetyRating, &info.CrimeRate, &info.TouristSafety, &attractionsJSON,
			&cuisineJSON, &contactsJSON, &info.PoliticalInfo, &festivalsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	for _, pair := range []struct {
		data []byte
		dest any
	}{
		{languagesJSON, &info.LocalLanguages},
		{tipsJSON, &info.CulturalTips},
		{attractionsJSON, &info.TouristAttractions},
		{cuisineJSON, &info.LocalCuisine},
		{contactsJSON, &info.EmergencyContacts},
		{festivalsJSON, &info.Festivals},
	} {
		if err := json.Unmarshal(pair.data, pair.dest); err != nil {
			return nil, fmt.Errorf("failed to deserialize city info for city %d: %w", cityID, err)
		}
	}
	return &info, nil
}
