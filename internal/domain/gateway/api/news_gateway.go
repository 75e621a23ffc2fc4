package api

import (
	"yatra-api/internal/domain/model/external"
)

// NewsGateway defines the interface for the news feed aggregator.
type NewsGateway interface {
	// Search queries the feed for recent articles matching the query string.
	Search(query string) (*external.NewsFeed, error)
}
