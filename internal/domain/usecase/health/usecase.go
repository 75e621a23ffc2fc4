package health

import "yatra-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
