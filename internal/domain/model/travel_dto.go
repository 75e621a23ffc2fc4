package model

import "yatra-api/internal/domain/entity"

// SearchCityDTO is the request body for the search endpoints.
type SearchCityDTO struct {
	CityName string `json:"cityName" validate:"required"`
}

// CityInfoWithNews is the cityInfo section of the search envelope: the
// persisted CityInfo fields augmented with the per-request news articles.
type CityInfoWithNews struct {
	entity.CityInfo
	News []entity.Article `json:"news"`
}

// SearchCityResponse is the merged envelope returned per search request.
type SearchCityResponse struct {
	City        entity.City            `json:"city"`
	Weather     entity.WeatherSnapshot `json:"weather"`
	CityInfo    CityInfoWithNews       `json:"cityInfo"`
	Hotels      []entity.Hotel         `json:"hotels"`
	Restaurants []entity.Restaurant    `json:"restaurants"`
	Message     string                 `json:"message"`
}
