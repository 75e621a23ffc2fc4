package db

import "yatra-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
