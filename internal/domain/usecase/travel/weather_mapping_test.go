package travel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"yatra-api/internal/domain/model/external"
)

func TestIconForCode(t *testing.T) {
	assert.Equal(t, "cloud-rain", iconForCode(200))
	assert.Equal(t, "cloud-rain", iconForCode(350))
	assert.Equal(t, "cloud-rain", iconForCode(599))
	assert.Equal(t, "cloud-snow", iconForCode(600))
	assert.Equal(t, "cloud-snow", iconForCode(699))
	assert.Equal(t, "sun", iconForCode(800))
	assert.Equal(t, "cloud-sun", iconForCode(801))
	assert.Equal(t, "cloud", iconForCode(802))
	assert.Equal(t, "cloud", iconForCode(804))
}

func TestConvertWeatherResponseDayLabelsRollOverWeek(t *testing.T) {
	// Forecast starting Friday 2026-01-02
	start := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)

	forecast := make([]external.ForecastDayDTO, 0, 7)
	for i := 0; i < 7; i++ {
		forecast = append(forecast, external.ForecastDayDTO{
			DateEpoch:     start.AddDate(0, 0, i).Unix(),
			ConditionCode: 800,
			AvgTempC:      25,
		})
	}

	snapshot := convertWeatherResponse(&external.WeatherResponse{
		Current:  external.CurrentConditions{TempC: 28, Humidity: 55, WindKph: 12, UVIndex: 6, ConditionText: "Clear"},
		Forecast: forecast,
	}, 42)

	assert.Equal(t, int64(42), snapshot.CityID)
	assert.Len(t, snapshot.Forecast, 7)
	assert.Equal(t, []string{"Fri", "Sat", "Sun", "Mon", "Tue", "Wed", "Thu"},
		[]string{
			snapshot.Forecast[0].Day, snapshot.Forecast[1].Day, snapshot.Forecast[2].Day,
			snapshot.Forecast[3].Day, snapshot.Forecast[4].Day, snapshot.Forecast[5].Day,
			snapshot.Forecast[6].Day,
		})
}

func TestConvertWeatherResponseTruncatesLongForecasts(t *testing.T) {
	forecast := make([]external.ForecastDayDTO, 10)
	for i := range forecast {
		forecast[i] = external.ForecastDayDTO{DateEpoch: time.Now().AddDate(0, 0, i).Unix(), ConditionCode: 801}
	}

	snapshot := convertWeatherResponse(&external.WeatherResponse{Forecast: forecast}, 1)
	assert.Len(t, snapshot.Forecast, 7)
}

func TestConvertWeatherResponseMapsCurrentConditions(t *testing.T) {
	snapshot := convertWeatherResponse(&external.WeatherResponse{
		Current: external.CurrentConditions{
			TempC:         31.5,
			Humidity:      72,
			WindKph:       18.2,
			UVIndex:       8,
			ConditionText: "Partly cloudy",
		},
	}, 7)

	assert.Equal(t, 31.5, snapshot.Temperature)
	assert.Equal(t, 72, snapshot.Humidity)
	assert.Equal(t, 18.2, snapshot.WindSpeed)
	assert.Equal(t, 8.0, snapshot.UVIndex)
	assert.Equal(t, "Partly cloudy", snapshot.Description)
	assert.Empty(t, snapshot.Forecast)
}
