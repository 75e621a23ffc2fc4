package db

import "yatra-api/internal/domain/model"

// MemoryHealthDBGateway reports the in-memory repository, which cannot fail.
type MemoryHealthDBGateway struct{}

var _ HealthDBGateway = (*MemoryHealthDBGateway)(nil)

func NewMemoryHealthDBGateway() *MemoryHealthDBGateway {
	return &MemoryHealthDBGateway{}
}

func (gateway *MemoryHealthDBGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": "In-memory repository",
		},
	}
}
