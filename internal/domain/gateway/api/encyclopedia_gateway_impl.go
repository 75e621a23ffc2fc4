package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"yatra-api/internal/domain/model/external"
	"yatra-api/pkg/http"
	"yatra-api/pkg/log"
	"yatra-api/pkg/redis"
)

// encyclopediaGatewayImpl implements the EncyclopediaGateway interface.
// Summaries barely change, so lookups are read-through cached when a cache
// is configured; cache failures fall back to the live call.
type encyclopediaGatewayImpl struct {
	httpClient *http.Client
	cache      *redis.Cache
}

// NewEncyclopediaGateway creates a new instance of EncyclopediaGateway with
// HTTP client. cache may be nil when Redis is not configured.
func NewEncyclopediaGateway(baseURL string, cache *redis.Cache, clientOptions http.ClientOptions) EncyclopediaGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &encyclopediaGatewayImpl{
		httpClient: httpClient,
		cache:      cache,
	}
}

// Summary fetches the page summary for a title.
func (e *encyclopediaGatewayImpl) Summary(title string) (*external.PageSummaryResponse, error) {
	cacheKey := strings.ToLower(title)

	if e.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		var cached external.PageSummaryResponse
		found, err := e.cache.Get(ctx, cacheKey, &cached)
		cancel()
		if err != nil {
			log.Warnf("encyclopedia cache read failed for %q: %v", title, err)
		} else if found {
			return &cached, nil
		}
	}

	path := fmt.Sprintf("/page/summary/%s", url.PathEscape(title))

	successResp, errResp, status, err := e.httpClient.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&external.PageSummaryResponse{}).
		WithErrorResp(&external.EncyclopediaAPIError{}).
		Execute()

	if err != nil {
		if errResp != nil {
			errorResponse := errResp.(*external.EncyclopediaAPIError)
			if errorResponse.Detail != "" {
				return nil, errors.New(errorResponse.Detail)
			}
		}
		return nil, fmt.Errorf("encyclopedia request failed (status %d): %w", status, err)
	}

	summary := successResp.(*external.PageSummaryResponse)

	if e.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := e.cache.Set(ctx, cacheKey, summary); err != nil {
			log.Warnf("encyclopedia cache write failed for %q: %v", title, err)
		}
		cancel()
	}

	return summary, nil
}
