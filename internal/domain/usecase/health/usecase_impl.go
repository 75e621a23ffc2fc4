package health

import (
	"yatra-api/internal/domain/gateway/cache"
	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/gateway/queue"
	"yatra-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	cacheGateway cache.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway, cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		cacheGateway: cacheGateway,
	}
}

// CheckHealth aggregates component health. A cache reported as UNKNOWN does
// not pull the overall status down; database and queue must be UP.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	queueHealth := useCase.queueGateway.Health()
	cacheHealth := useCase.cacheGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || queueHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}
	if cacheHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Queue:    queueHealth,
		Cache:    cacheHealth,
	}
}
