package refdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalWeatherDelhi(t *testing.T) {
	june := SeasonalWeather("Delhi", time.June)
	assert.Contains(t, june.Description, "monsoon")

	december := SeasonalWeather("Delhi", time.December)
	assert.Contains(t, december.Description, "post-monsoon")
	assert.Less(t, december.Temperature, june.Temperature)
}

func TestSeasonalWeatherGenericRule(t *testing.T) {
	monsoon := SeasonalWeather("Rampur", time.July)
	assert.Contains(t, monsoon.Description, "Monsoon")

	summer := SeasonalWeather("Rampur", time.April)
	assert.Contains(t, summer.Description, "summer")

	cool := SeasonalWeather("Rampur", time.January)
	assert.Contains(t, cool.Description, "Post-monsoon")
}

func TestPlaceholderForecast(t *testing.T) {
	// Friday: the labels must roll over the week boundary
	now := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)
	forecast := PlaceholderForecast("Delhi", now)

	assert.Len(t, forecast, 7)
	assert.Equal(t, "Sat", forecast[0].Day)
	assert.Equal(t, "Sun", forecast[1].Day)
	assert.Equal(t, "Mon", forecast[2].Day)
	assert.Equal(t, "Fri", forecast[6].Day)

	for _, entry := range forecast {
		assert.NotEmpty(t, entry.Icon)
	}
}
