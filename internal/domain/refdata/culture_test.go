package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupsAreTotalForUnknownCities(t *testing.T) {
	city := "Rampur"

	assert.NotEmpty(t, BestTimeToVisit(city))
	assert.NotEmpty(t, CulturalTips(city))
	assert.NotEmpty(t, CrimeRate(city))
	assert.NotEmpty(t, TouristSafety(city))
	assert.NotEmpty(t, TouristAttractions(city))
	assert.NotEmpty(t, LocalCuisine(city))
	assert.NotEmpty(t, PoliticalInfo(city))
	assert.NotEmpty(t, Festivals(city))
	assert.NotEmpty(t, LocalLanguages(city))
	assert.NotEmpty(t, HistoricalBlurb(city))
	assert.NotEmpty(t, Hotels(city))
	assert.NotEmpty(t, Restaurants(city))

	rating := SafetyRating(city)
	assert.GreaterOrEqual(t, rating, 0.0)
	assert.LessOrEqual(t, rating, 5.0)

	transport := Transportation(city)
	assert.NotEmpty(t, transport.TrainStations)
	assert.NotEmpty(t, transport.BusRoutes)
	assert.NotEmpty(t, transport.LocalTransport)
	assert.NotEmpty(t, transport.Airports)
}

func TestUnknownCityFallbacksReferenceTheCityName(t *testing.T) {
	assert.Contains(t, HistoricalBlurb("Rampur"), "Rampur")
	assert.Contains(t, Hotels("Rampur")[0].Name, "Rampur")
	assert.Contains(t, Transportation("Rampur").TrainStations[0], "Rampur")
}

func TestUnknownCityFallbacksAreDeterministic(t *testing.T) {
	assert.Equal(t, Hotels("Rampur"), Hotels("Rampur"))
	assert.Equal(t, CulturalTips("Rampur"), CulturalTips("Rampur"))
}

func TestCuratedTablesForMetros(t *testing.T) {
	assert.Contains(t, TouristAttractions("Mumbai"), "Gateway of India")
	assert.Contains(t, Festivals("Kolkata"), "Durga Puja")
	assert.Equal(t, 4.4, SafetyRating("Chennai"))
}

func TestEmergencyContactsCarryNationalNumbers(t *testing.T) {
	contacts := EmergencyContacts("Anywhere")
	assert.Equal(t, "100", contacts.Police)
	assert.Equal(t, "108", contacts.Medical)
	assert.Equal(t, "101", contacts.Fire)
	assert.Equal(t, "1363", contacts.TouristHelpline)
	assert.Equal(t, "1091", contacts.WomenHelpline)
}
