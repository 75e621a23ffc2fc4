package api

import (
	"errors"
	"fmt"

	"yatra-api/internal/domain/model/external"
	"yatra-api/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// apiKey may be empty; the reference provider accepts keyless requests.
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// CurrentAndForecast issues a single query for current conditions and the
// daily forecast.
func (w *weatherGatewayImpl) CurrentAndForecast(cityName string) (*external.WeatherResponse, error) {
	params := map[string]string{
		"q":    cityName,
		"days": "7",
	}
	if w.apiKey != "" {
		params["key"] = w.apiKey
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.WeatherResponse{}).
		WithErrorResp(&external.WeatherAPIError{}).
		Execute()

	if err == nil {
		return successResp.(*external.WeatherResponse), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.WeatherAPIError)
		return nil, errors.New(errorResponse.Message)
	}

	return nil, fmt.Errorf("weather provider request failed (status %d): %w", status, err)
}
