package cache

import "yatra-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
