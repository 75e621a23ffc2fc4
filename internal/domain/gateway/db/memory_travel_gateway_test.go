package db

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra-api/internal/domain/entity"
)

func TestCreateCityIfAbsentIsRaceSafe(t *testing.T) {
	gateway := NewMemoryTravelGateway()

	const callers = 50
	ids := make([]int64, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			city, err := gateway.CreateCityIfAbsent(entity.City{Name: "Mumbai", State: "Maharashtra", Country: "India"})
			require.NoError(t, err)
			ids[i] = city.ID
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	count, err := gateway.CountCities()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindCityByNameIsCaseInsensitive(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	created, err := gateway.CreateCityIfAbsent(entity.City{Name: "Chennai"})
	require.NoError(t, err)

	found, err := gateway.FindCityByName("CHENNAI")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := gateway.FindCityByName("Madurai")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindCityByIDNotFound(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	_, err := gateway.FindCityByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertWeatherSnapshotReplaces(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	city, err := gateway.CreateCityIfAbsent(entity.City{Name: "Delhi"})
	require.NoError(t, err)

	first, err := gateway.UpsertWeatherSnapshot(entity.WeatherSnapshot{CityID: city.ID, Temperature: 30})
	require.NoError(t, err)

	second, err := gateway.UpsertWeatherSnapshot(entity.WeatherSnapshot{CityID: city.ID, Temperature: 22})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := gateway.FindWeatherSnapshotByCityID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, 22.0, stored.Temperature)
}

func TestUpsertCityInfoReplaces(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	city, err := gateway.CreateCityIfAbsent(entity.City{Name: "Pune"})
	require.NoError(t, err)

	first, err := gateway.UpsertCityInfo(entity.CityInfo{CityID: city.ID, CrimeRate: "Low"})
	require.NoError(t, err)

	second, err := gateway.UpsertCityInfo(entity.CityInfo{CityID: city.ID, CrimeRate: "Moderate"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := gateway.FindCityInfoByCityID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Moderate", stored.CrimeRate)
}

func TestUpdateCityCoordinatesIgnoresZeroValues(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	city, err := gateway.CreateCityIfAbsent(entity.City{Name: "Kochi", Latitude: 9.93, Longitude: 76.26})
	require.NoError(t, err)

	require.NoError(t, gateway.UpdateCityCoordinates(city.ID, 0, 0))

	stored, err := gateway.FindCityByID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.93, stored.Latitude)

	require.NoError(t, gateway.UpdateCityCoordinates(city.ID, 10, 76.5))
	stored, err = gateway.FindCityByID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Latitude)
}

func TestFindAllCitiesPagination(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	names := []string{"Mumbai", "Delhi", "Bangalore", "Kolkata", "Chennai"}
	for _, name := range names {
		_, err := gateway.CreateCityIfAbsent(entity.City{Name: name})
		require.NoError(t, err)
	}

	page0, err := gateway.FindAllCities(0, 2)
	require.NoError(t, err)
	assert.Len(t, page0, 2)
	assert.Equal(t, "Mumbai", page0[0].Name)

	page2, err := gateway.FindAllCities(2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
	assert.Equal(t, "Chennai", page2[0].Name)

	empty, err := gateway.FindAllCities(5, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFindAllCitiesRejectsNonPositiveSize(t *testing.T) {
	gateway := NewMemoryTravelGateway()
	_, err := gateway.CreateCityIfAbsent(entity.City{Name: "Mumbai"})
	require.NoError(t, err)

	for _, size := range []int{-1, 0} {
		cities, err := gateway.FindAllCities(0, size)
		require.NoError(t, err)
		assert.Empty(t, cities)
	}

	cities, err := gateway.FindAllCities(-3, 10)
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}
