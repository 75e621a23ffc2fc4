package travel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/gateway/queue"
	"yatra-api/internal/domain/model/external"
)

type fakeWeatherGateway struct {
	response *external.WeatherResponse
	err      error
	calls    int
}

func (f *fakeWeatherGateway) CurrentAndForecast(cityName string) (*external.WeatherResponse, error) {
	f.calls++
	return f.response, f.err
}

type fakeNewsGateway struct {
	feed *external.NewsFeed
	err  error
}

func (f *fakeNewsGateway) Search(query string) (*external.NewsFeed, error) {
	return f.feed, f.err
}

type fakeEncyclopediaGateway struct {
	summary *external.PageSummaryResponse
	err     error
}

func (f *fakeEncyclopediaGateway) Summary(title string) (*external.PageSummaryResponse, error) {
	return f.summary, f.err
}

type fakeSender struct {
	sent    []any
	batches [][]queue.BatchMessage
	err     error
}

func (f *fakeSender) SendMessage(queueName string, body any) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body)
	return nil
}

func (f *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, messages)
	result := &queue.BatchResult{}
	for _, msg := range messages {
		result.Successful = append(result.Successful, msg.MessageID)
	}
	return result, nil
}

// failingUpserts delegates to the in-memory gateway but rejects every upsert.
type failingUpserts struct {
	db.TravelGateway
}

func (f *failingUpserts) UpsertWeatherSnapshot(snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error) {
	return nil, errors.New("storage unavailable")
}

func (f *failingUpserts) UpsertCityInfo(info entity.CityInfo) (*entity.CityInfo, error) {
	return nil, errors.New("storage unavailable")
}

func liveWeatherResponse() *external.WeatherResponse {
	forecast := make([]external.ForecastDayDTO, 0, 7)
	for i := 0; i < 7; i++ {
		forecast = append(forecast, external.ForecastDayDTO{
			DateEpoch:     time.Now().AddDate(0, 0, i+1).Unix(),
			ConditionCode: 800,
			AvgTempC:      30,
		})
	}
	return &external.WeatherResponse{
		Current:  external.CurrentConditions{TempC: 29, Humidity: 60, WindKph: 14, UVIndex: 7, ConditionText: "Sunny"},
		Forecast: forecast,
	}
}

func liveNewsFeed() *external.NewsFeed {
	items := make([]external.NewsItem, 8)
	for i := range items {
		items[i] = external.NewsItem{Title: "headline", Link: "https://example.com"}
	}
	return &external.NewsFeed{Channel: external.NewsChannel{Items: items}}
}

func liveSummary() *external.PageSummaryResponse {
	return &external.PageSummaryResponse{
		Title:       "Mumbai",
		Extract:     "Mumbai is the capital city of the Indian state of Maharashtra.",
		Coordinates: &external.CoordinatesDTO{Latitude: 19.07, Longitude: 72.87},
	}
}

func newTestUseCase(persistFallback bool, repo db.TravelGateway, weather *fakeWeatherGateway, news *fakeNewsGateway, encyclopedia *fakeEncyclopediaGateway, sender *fakeSender) UseCase {
	return NewTravelUseCase("refresh-queue", 10, persistFallback, sender, weather, news, encyclopedia, repo)
}

func TestSearchCityMergesAllSources(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	sender := &fakeSender{}
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		sender)

	response, err := uc.SearchCity("bombay")
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", response.City.Name)
	assert.Equal(t, "Maharashtra", response.City.State)
	assert.Equal(t, "India", response.City.Country)
	assert.LessOrEqual(t, len(response.Weather.Forecast), 7)
	assert.NotEmpty(t, response.Hotels)
	assert.NotEmpty(t, response.Restaurants)
	assert.Len(t, response.CityInfo.News, 5)
	assert.Contains(t, response.CityInfo.HistoricalInfo, "Maharashtra")
	assert.NotEmpty(t, response.Message)

	// coordinates reported by the encyclopedia were applied
	assert.Equal(t, 19.07, response.City.Latitude)

	// the new city was enqueued for refresh
	assert.Len(t, sender.sent, 1)
}

func TestSearchCitySameNameYieldsSameID(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	sender := &fakeSender{}
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		sender)

	first, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)
	second, err := uc.SearchCity("BOMBAY")
	require.NoError(t, err)

	assert.Equal(t, first.City.ID, second.City.ID)

	count, err := repo.CountCities()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// only the first resolution created the city, so only one enqueue
	assert.Len(t, sender.sent, 1)
}

func TestSearchCityNewsNeverEmpty(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{err: errors.New("feed unreachable")},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	response, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)

	require.Len(t, response.CityInfo.News, 1)
	assert.Contains(t, response.CityInfo.News[0].Title, "Mumbai")
	assert.NotEmpty(t, response.CityInfo.News[0].URL)
}

func TestSearchCityAllSourcesDownStillSucceeds(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{err: errors.New("weather down")},
		&fakeNewsGateway{err: errors.New("news down")},
		&fakeEncyclopediaGateway{err: errors.New("encyclopedia down")},
		&fakeSender{})

	response, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)

	assert.NotEmpty(t, response.Weather.Description)
	assert.Len(t, response.Weather.Forecast, 7)
	assert.NotEmpty(t, response.CityInfo.News)
	assert.Contains(t, response.CityInfo.HistoricalInfo, "Mumbai")
}

func TestFallbackSnapshotNotPersistedByDefault(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{err: errors.New("weather down")},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	response, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)

	_, err = repo.FindWeatherSnapshotByCityID(response.City.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestFallbackSnapshotPersistedWhenPolicyEnabled(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	uc := newTestUseCase(true, repo,
		&fakeWeatherGateway{err: errors.New("weather down")},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	response, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)

	stored, err := repo.FindWeatherSnapshotByCityID(response.City.ID)
	require.NoError(t, err)
	assert.Equal(t, response.Weather.Description, stored.Description)
}

func TestSearchCityPersistenceFailureDoesNotFailRequest(t *testing.T) {
	repo := &failingUpserts{TravelGateway: db.NewMemoryTravelGateway()}
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	response, err := uc.SearchCity("Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", response.City.Name)
}

func TestSearchCityRejectsEmptyName(t *testing.T) {
	uc := newTestUseCase(false, db.NewMemoryTravelGateway(),
		&fakeWeatherGateway{}, &fakeNewsGateway{}, &fakeEncyclopediaGateway{}, &fakeSender{})

	_, err := uc.SearchCity("   ")
	assert.ErrorIs(t, err, ErrInvalidCityName)
}

func TestSearchAnyCityRequiresSummary(t *testing.T) {
	uc := newTestUseCase(false, db.NewMemoryTravelGateway(),
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{err: errors.New("not found")},
		&fakeSender{})

	_, err := uc.SearchAnyCity("Atlantis")
	assert.ErrorIs(t, err, ErrSummaryNotFound)
}

func TestSearchAnyCityBypassesPersistence(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{response: liveWeatherResponse()},
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	response, err := uc.SearchAnyCity("Mumbai")
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", response.City.Name)
	assert.NotEmpty(t, response.Hotels)

	count, err := repo.CountCities()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetTransportation(t *testing.T) {
	uc := newTestUseCase(false, db.NewMemoryTravelGateway(),
		&fakeWeatherGateway{}, &fakeNewsGateway{}, &fakeEncyclopediaGateway{}, &fakeSender{})

	transport, err := uc.GetTransportation("madras")
	require.NoError(t, err)
	assert.Contains(t, transport.TrainStations, "Chennai Central")
}

func TestRefreshCityUpsertsSnapshot(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	city, err := repo.CreateCityIfAbsent(entity.City{Name: "Delhi", State: "Delhi", Country: "India"})
	require.NoError(t, err)

	weather := &fakeWeatherGateway{response: liveWeatherResponse()}
	uc := newTestUseCase(false, repo, weather,
		&fakeNewsGateway{feed: liveNewsFeed()},
		&fakeEncyclopediaGateway{summary: liveSummary()},
		&fakeSender{})

	require.NoError(t, uc.RefreshCity(city.ID))
	require.NoError(t, uc.RefreshCity(city.ID))

	stored, err := repo.FindWeatherSnapshotByCityID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, city.ID, stored.CityID)
	assert.Equal(t, 2, weather.calls)

	info, err := repo.FindCityInfoByCityID(city.ID)
	require.NoError(t, err)
	assert.Equal(t, city.ID, info.CityID)
}

func TestRefreshCityUnknownID(t *testing.T) {
	uc := newTestUseCase(false, db.NewMemoryTravelGateway(),
		&fakeWeatherGateway{}, &fakeNewsGateway{}, &fakeEncyclopediaGateway{}, &fakeSender{})

	err := uc.RefreshCity(404)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRefreshAllCitiesEnqueuesEveryCity(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	for _, name := range []string{"Mumbai", "Delhi", "Chennai"} {
		_, err := repo.CreateCityIfAbsent(entity.City{Name: name})
		require.NoError(t, err)
	}

	sender := &fakeSender{}
	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{}, &fakeNewsGateway{}, &fakeEncyclopediaGateway{}, sender)

	require.NoError(t, uc.RefreshAllCities("req-1"))

	total := 0
	for _, batch := range sender.batches {
		total += len(batch)
	}
	assert.Equal(t, 3, total)
}

func TestFindAllCitiesPaged(t *testing.T) {
	repo := db.NewMemoryTravelGateway()
	for _, name := range []string{"Mumbai", "Delhi", "Chennai"} {
		_, err := repo.CreateCityIfAbsent(entity.City{Name: name})
		require.NoError(t, err)
	}

	uc := newTestUseCase(false, repo,
		&fakeWeatherGateway{}, &fakeNewsGateway{}, &fakeEncyclopediaGateway{}, &fakeSender{})

	page, err := uc.FindAllCities(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Len(t, page.Content, 2)
}
