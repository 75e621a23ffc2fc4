package api

import (
	"yatra-api/internal/domain/model/external"
)

// EncyclopediaGateway defines the interface for the encyclopedia summary service.
type EncyclopediaGateway interface {
	// Summary fetches the page summary for a title. A missing page is an error.
	Summary(title string) (*external.PageSummaryResponse, error)
}
