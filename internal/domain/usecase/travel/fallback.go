package travel

import (
	"fmt"
	"net/url"
	"time"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/refdata"
	"yatra-api/pkg/log"
)

// The fetch* methods wrap each live gateway with its fallback policy. They
// never return an error: a failed fetch yields the deterministic substitute
// and live=false so callers can apply the persistence policy.

// fetchWeather returns the live snapshot, or the seasonal estimate with the
// placeholder forecast when the provider call fails.
func (uc *travelUseCase) fetchWeather(city entity.City) (entity.WeatherSnapshot, bool) {
	response, err := uc.weatherGateway.CurrentAndForecast(city.Name)
	if err != nil {
		log.Warnf("Weather fetch failed for city %s, using seasonal estimate: %v", city.Name, err)
		return uc.seasonalSnapshot(city), false
	}
	return convertWeatherResponse(response, city.ID), true
}

// seasonalSnapshot builds the deterministic month-indexed substitute.
func (uc *travelUseCase) seasonalSnapshot(city entity.City) entity.WeatherSnapshot {
	now := time.Now()
	estimate := refdata.SeasonalWeather(city.Name, now.Month())

	return entity.WeatherSnapshot{
		CityID:      city.ID,
		Temperature: estimate.Temperature,
		Description: estimate.Description,
		Humidity:    estimate.Humidity,
		WindSpeed:   10,
		UVIndex:     5,
		Forecast:    refdata.PlaceholderForecast(city.Name, now),
	}
}

// fetchNews returns up to five articles about the city. The list is never
// empty: a failed fetch yields one synthetic article pointing at a news
// search for the city.
func (uc *travelUseCase) fetchNews(cityName string) []entity.Article {
	feed, err := uc.newsGateway.Search(cityName + " India")
	if err != nil {
		log.Warnf("News fetch failed for city %s, using placeholder article: %v", cityName, err)
		return uc.placeholderArticles(cityName)
	}

	items := feed.Channel.Items
	if len(items) > maxNewsArticles {
		items = items[:maxNewsArticles]
	}

	articles := make([]entity.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, entity.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			PublishedAt: item.PubDate,
			Source:      item.Source.Name,
		})
	}

	if len(articles) == 0 {
		return uc.placeholderArticles(cityName)
	}
	return articles
}

func (uc *travelUseCase) placeholderArticles(cityName string) []entity.Article {
	return []entity.Article{
		{
			Title:       fmt.Sprintf("Stay informed about %s", cityName),
			Description: fmt.Sprintf("Live news is temporarily unavailable. Check local sources for the latest updates on %s.", cityName),
			URL:         fmt.Sprintf("https://news.google.com/search?q=%s", url.QueryEscape(cityName+" India")),
			PublishedAt: time.Now().Format(time.RFC1123),
			Source:      "Yatra",
		},
	}
}

// fetchSummary returns the encyclopedia extract and coordinates, or the
// static historical blurb when the lookup fails. Coordinates are zero on the
// fallback path.
func (uc *travelUseCase) fetchSummary(cityName string) (string, float64, float64, bool) {
	summary, err := uc.encyclopediaGateway.Summary(cityName)
	if err != nil {
		log.Warnf("Encyclopedia fetch failed for city %s, using static blurb: %v", cityName, err)
		return refdata.HistoricalBlurb(cityName), 0, 0, false
	}

	extract := summary.Extract
	if extract == "" {
		extract = refdata.HistoricalBlurb(cityName)
	}

	var latitude, longitude float64
	if summary.Coordinates != nil {
		latitude = summary.Coordinates.Latitude
		longitude = summary.Coordinates.Longitude
	}
	return extract, latitude, longitude, true
}
