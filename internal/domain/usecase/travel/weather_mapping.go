package travel

import (
	"time"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/model/external"
)

// maxForecastDays bounds the forecast length in the envelope.
const maxForecastDays = 7

// iconForCode maps a provider condition code to the fixed icon set.
// 2xx-5xx are precipitation codes, 6xx snow, 800 clear, 801 few clouds and
// the remaining 8xx overcast.
func iconForCode(code int) string {
	switch {
	case code >= 200 && code <= 599:
		return "cloud-rain"
	case code >= 600 && code <= 699:
		return "cloud-snow"
	case code == 800:
		return "sun"
	case code == 801:
		return "cloud-sun"
	case code > 801 && code <= 899:
		return "cloud"
	default:
		return "cloud-sun"
	}
}

// convertWeatherResponse maps the provider payload to a snapshot entity.
// Day labels come from each entry's own date so the sequence stays correct
// across a week boundary.
func convertWeatherResponse(response *external.WeatherResponse, cityID int64) entity.WeatherSnapshot {
	forecast := make([]entity.ForecastEntry, 0, maxForecastDays)
	for _, day := range response.Forecast {
		if len(forecast) == maxForecastDays {
			break
		}
		date := time.Unix(day.DateEpoch, 0).UTC()
		forecast = append(forecast, entity.ForecastEntry{
			Day:  date.Weekday().String()[:3],
			Icon: iconForCode(day.ConditionCode),
			Temp: day.AvgTempC,
		})
	}

	return entity.WeatherSnapshot{
		CityID:      cityID,
		Temperature: response.Current.TempC,
		Description: response.Current.ConditionText,
		Humidity:    response.Current.Humidity,
		WindSpeed:   response.Current.WindKph,
		UVIndex:     response.Current.UVIndex,
		Forecast:    forecast,
	}
}
