package api

import (
	"fmt"

	"yatra-api/internal/domain/model/external"
	"yatra-api/pkg/http"
)

// newsGatewayImpl implements the NewsGateway interface over an RSS search feed
type newsGatewayImpl struct {
	httpClient *http.Client
}

// NewNewsGateway creates a new instance of NewsGateway with HTTP client
func NewNewsGateway(baseURL string, clientOptions http.ClientOptions) NewsGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &newsGatewayImpl{
		httpClient: httpClient,
	}
}

// Search queries the RSS search endpoint. The feed is XML; the client decodes
// it through the charset-aware XML path.
func (n *newsGatewayImpl) Search(query string) (*external.NewsFeed, error) {
	successResp, _, status, err := n.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/rss/search").
		WithQueryParams(map[string]string{
			"q":  query,
			"hl": "en-IN",
			"gl": "IN",
		}).
		WithSuccessResp(&external.NewsFeed{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("news feed request failed (status %d): %w", status, err)
	}

	return successResp.(*external.NewsFeed), nil
}
