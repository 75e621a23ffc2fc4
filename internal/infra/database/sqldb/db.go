package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"yatra-api/pkg/resource"
)

// schema is applied at startup. The expression index on lower(name) backs the
// one-city-per-canonical-name invariant and the conflict target used by the
// repository's create-if-absent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS cities (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		state TEXT NOT NULL,
		country TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS cities_name_lower_idx ON cities (lower(name))`,
	`CREATE TABLE IF NOT EXISTS weather_snapshots (
		id BIGSERIAL PRIMARY KEY,
		city_id BIGINT NOT NULL UNIQUE REFERENCES cities (id),
		temperature DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL,
		humidity INT NOT NULL,
		wind_speed DOUBLE PRECISION NOT NULL,
		uv_index DOUBLE PRECISION NOT NULL,
		forecast JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS city_infos (
		id BIGSERIAL PRIMARY KEY,
		city_id BIGINT NOT NULL UNIQUE REFERENCES cities (id),
		historical_info TEXT NOT NULL,
		best_time_to_visit TEXT NOT NULL,
		local_languages JSONB NOT NULL,
		cultural_tips JSONB NOT NULL,
		safety_rating DOUBLE PRECISION NOT NULL,
		crime_rate TEXT NOT NULL,
		tourist_safety TEXT NOT NULL,
		tourist_attractions JSONB NOT NULL,
		local_cuisine JSONB NOT NULL,
		emergency_contacts JSONB NOT NULL,
		political_info TEXT NOT NULL,
		festivals JSONB NOT NULL
	)`,
}

// Connect opens the application database from the app.db.* properties and
// applies the schema.
func Connect() (*sql.DB, error) {
	host := resource.GetString("app.db.host")
	port := resource.GetString("app.db.port")
	password := resource.GetString("app.db.password")
	username := resource.GetString("app.db.username")
	database := resource.GetString("app.db.database")
	schemaName := resource.GetString("app.db.schema")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, username, password, database, schemaName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	for _, statement := range schema {
		if _, err := db.Exec(statement); err != nil {
			return nil, fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return db, nil
}
