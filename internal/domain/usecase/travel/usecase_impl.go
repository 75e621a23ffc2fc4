package travel

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/gateway/api"
	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/gateway/queue"
	"yatra-api/internal/domain/model"
	"yatra-api/internal/domain/refdata"
	"yatra-api/pkg/log"
	"yatra-api/pkg/msg"
)

// maxNewsArticles bounds how many feed items make it into the envelope.
const maxNewsArticles = 5

var (
	// ErrInvalidCityName is returned when the request carries no usable city name
	ErrInvalidCityName = errors.New("cityName is required")

	// ErrSummaryNotFound is returned by SearchAnyCity when the encyclopedia
	// lookup yields no summary for the requested name
	ErrSummaryNotFound = errors.New("no summary found for city")
)

type travelUseCase struct {
	queueName       string
	batchSize       int
	persistFallback bool

	weatherGateway      api.WeatherGateway
	newsGateway         api.NewsGateway
	encyclopediaGateway api.EncyclopediaGateway
	dbGateway           db.TravelGateway
	queueSender         queue.Sender
}

func NewTravelUseCase(
	queueName string,
	batchSize int,
	persistFallback bool,
	queueSender queue.Sender,
	weatherGateway api.WeatherGateway,
	newsGateway api.NewsGateway,
	encyclopediaGateway api.EncyclopediaGateway,
	dbGateway db.TravelGateway,
) UseCase {
	return &travelUseCase{
		queueName:           queueName,
		batchSize:           batchSize,
		persistFallback:     persistFallback,
		queueSender:         queueSender,
		weatherGateway:      weatherGateway,
		newsGateway:         newsGateway,
		encyclopediaGateway: encyclopediaGateway,
		dbGateway:           dbGateway,
	}
}

// SearchCity resolves the name, aggregates all sources concurrently and
// returns the merged envelope. Derived records are upserted after the merge;
// a persistence failure is logged and never fails the request.
func (uc *travelUseCase) SearchCity(cityName string) (*model.SearchCityResponse, error) {
	canonical := refdata.Normalize(cityName)
	if canonical == "" {
		return nil, ErrInvalidCityName
	}

	city, created, err := uc.resolveCity(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve city %q: %w", canonical, err)
	}

	weather, news, historical, coordinates := uc.fetchSourcesInParallel(*city)

	if coordinates.live && (coordinates.latitude != 0 || coordinates.longitude != 0) {
		if err := uc.dbGateway.UpdateCityCoordinates(city.ID, coordinates.latitude, coordinates.longitude); err != nil {
			log.Warnf("Failed to update coordinates for city %s: %v", city.Name, err)
		} else {
			city.Latitude = coordinates.latitude
			city.Longitude = coordinates.longitude
		}
	}

	info := uc.buildCityInfo(*city, historical)
	uc.persistDerivedRecords(*city, weather, info)

	if created {
		if err := uc.queueSender.SendMessage(uc.queueName, city); err != nil {
			log.Warnf("Failed to enqueue refresh for new city %s: %v", city.Name, err)
		} else {
			log.Infof("City '%s' created and enqueued for refresh", city.Name)
		}
	}

	return &model.SearchCityResponse{
		City:    *city,
		Weather: weather.snapshot,
		CityInfo: model.CityInfoWithNews{
			CityInfo: info,
			News:     news,
		},
		Hotels:      refdata.Hotels(city.Name),
		Restaurants: refdata.Restaurants(city.Name),
		Message:     msg.GetMessage("travel.search.success", city.Name),
	}, nil
}

// SearchAnyCity builds the envelope without the persisted-city path. The
// encyclopedia lookup is mandatory here: a miss means the name is unknown.
func (uc *travelUseCase) SearchAnyCity(cityName string) (*model.SearchCityResponse, error) {
	canonical := refdata.Normalize(cityName)
	if canonical == "" {
		return nil, ErrInvalidCityName
	}

	summary, err := uc.encyclopediaGateway.Summary(canonical)
	if err != nil {
		log.Infof("Encyclopedia lookup failed for %q: %v", canonical, err)
		return nil, ErrSummaryNotFound
	}
	if summary.Extract == "" {
		return nil, ErrSummaryNotFound
	}

	city := entity.City{
		Name:    canonical,
		State:   refdata.StateFor(canonical),
		Country: "India",
	}
	if summary.Coordinates != nil {
		city.Latitude = summary.Coordinates.Latitude
		city.Longitude = summary.Coordinates.Longitude
	}

	var wg sync.WaitGroup
	var weather weatherResult
	var news []entity.Article

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather.snapshot, weather.live = uc.fetchWeather(city)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		news = uc.fetchNews(city.Name)
	}()

	wg.Wait()

	info := uc.buildCityInfo(city, summary.Extract)

	return &model.SearchCityResponse{
		City:    city,
		Weather: weather.snapshot,
		CityInfo: model.CityInfoWithNews{
			CityInfo: info,
			News:     news,
		},
		Hotels:      refdata.Hotels(city.Name),
		Restaurants: refdata.Restaurants(city.Name),
		Message:     msg.GetMessage("travel.search.success", city.Name),
	}, nil
}

// GetWeather returns the persisted weather snapshot for a city
func (uc *travelUseCase) GetWeather(cityID int64) (*entity.WeatherSnapshot, error) {
	return uc.dbGateway.FindWeatherSnapshotByCityID(cityID)
}

// GetCityInfo returns the persisted city info record for a city
func (uc *travelUseCase) GetCityInfo(cityID int64) (*entity.CityInfo, error) {
	return uc.dbGateway.FindCityInfoByCityID(cityID)
}

// GetTransportation resolves a city name and returns its transport options
func (uc *travelUseCase) GetTransportation(cityName string) (*entity.Transportation, error) {
	canonical := refdata.Normalize(cityName)
	if canonical == "" {
		return nil, ErrInvalidCityName
	}

	transportation := refdata.Transportation(canonical)
	return &transportation, nil
}

// FindAllCities returns a paginated list of known cities
func (uc *travelUseCase) FindAllCities(page int, size int) (*model.Page[entity.City], error) {
	var wg sync.WaitGroup
	var cities []entity.City
	var totalElements int64
	var citiesErr, countErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		cities, citiesErr = uc.dbGateway.FindAllCities(page, size)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.dbGateway.CountCities()
	}()

	wg.Wait()

	if citiesErr != nil {
		return nil, fmt.Errorf("failed to find cities: %w", citiesErr)
	}
	if countErr != nil {
		return nil, fmt.Errorf("failed to count cities: %w", countErr)
	}

	return model.NewPage(cities, page, size, totalElements), nil
}

// RefreshCity re-fetches the weather and encyclopedia sources for a known
// city and upserts its derived records.
func (uc *travelUseCase) RefreshCity(cityID int64) error {
	city, err := uc.dbGateway.FindCityByID(cityID)
	if err != nil {
		return fmt.Errorf("failed to find city %d: %w", cityID, err)
	}

	var wg sync.WaitGroup
	var weather weatherResult
	var historical string

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather.snapshot, weather.live = uc.fetchWeather(*city)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		historical, _, _, _ = uc.fetchSummary(city.Name)
	}()

	wg.Wait()

	if weather.live || uc.persistFallback {
		if _, err := uc.dbGateway.UpsertWeatherSnapshot(weather.snapshot); err != nil {
			return fmt.Errorf("failed to upsert weather snapshot for city %s: %w", city.Name, err)
		}
	}

	info := uc.buildCityInfo(*city, historical)
	if _, err := uc.dbGateway.UpsertCityInfo(info); err != nil {
		return fmt.Errorf("failed to upsert city info for city %s: %w", city.Name, err)
	}

	log.Infof("Refreshed derived records for city: %s", city.Name)
	return nil
}

// RefreshAllCities enqueues every known city for a snapshot refresh in
// batches of batchSize.
func (uc *travelUseCase) RefreshAllCities(requestID string) error {
	log.Info("Starting scheduled city refresh", zap.String("request_id", requestID))

	page := 0
	totalEnqueued := 0
	totalFailed := 0

	for {
		cities, err := uc.dbGateway.FindAllCities(page, uc.batchSize)
		if err != nil {
			log.Error("Failed to fetch cities for refresh",
				zap.String("request_id", requestID),
				zap.Int("page", page),
				zap.Error(err))
			return fmt.Errorf("failed to fetch cities for refresh (page %d): %w", page, err)
		}

		if len(cities) == 0 {
			break
		}

		messages := make([]queue.BatchMessage, len(cities))
		for i, city := range cities {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("refresh-%s-city-%d", requestID, city.ID),
				Body:      city,
			}
		}

		result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
		if err != nil {
			log.Warn("Failed to send refresh batch",
				zap.String("request_id", requestID),
				zap.Int("page", page),
				zap.Error(err))
			totalFailed += len(cities)
		} else {
			totalEnqueued += len(result.Successful)
			totalFailed += len(result.Failed)
		}

		page++
	}

	log.Info("Completed scheduled city refresh",
		zap.String("request_id", requestID),
		zap.Int("enqueued", totalEnqueued),
		zap.Int("failed", totalFailed))
	return nil
}

// weatherResult pairs the snapshot with whether it came from the live source.
type weatherResult struct {
	snapshot entity.WeatherSnapshot
	live     bool
}

// coordinatesResult carries coordinates reported by the encyclopedia source.
type coordinatesResult struct {
	latitude  float64
	longitude float64
	live      bool
}

// resolveCity finds or atomically creates the City row for a canonical name.
// The created flag is true only when this call inserted the row.
func (uc *travelUseCase) resolveCity(canonical string) (*entity.City, bool, error) {
	existing, err := uc.dbGateway.FindCityByName(canonical)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	city, err := uc.dbGateway.CreateCityIfAbsent(entity.City{
		Name:    canonical,
		State:   refdata.StateFor(canonical),
		Country: "India",
	})
	if err != nil {
		return nil, false, err
	}
	return city, true, nil
}

// fetchSourcesInParallel fans out to the three live sources. Each fetch
// applies its own fallback, so no goroutine can fail the aggregate.
func (uc *travelUseCase) fetchSourcesInParallel(city entity.City) (weatherResult, []entity.Article, string, coordinatesResult) {
	var wg sync.WaitGroup
	var weather weatherResult
	var news []entity.Article
	var historical string
	var coordinates coordinatesResult

	wg.Add(1)
	go func() {
		defer wg.Done()
		weather.snapshot, weather.live = uc.fetchWeather(city)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		news = uc.fetchNews(city.Name)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		historical, coordinates.latitude, coordinates.longitude, coordinates.live = uc.fetchSummary(city.Name)
	}()

	wg.Wait()

	return weather, news, historical, coordinates
}

// buildCityInfo assembles the CityInfo record from the static tables and the
// historical text resolved from the encyclopedia source.
func (uc *travelUseCase) buildCityInfo(city entity.City, historical string) entity.CityInfo {
	return entity.CityInfo{
		CityID:             city.ID,
		HistoricalInfo:     historical,
		BestTimeToVisit:    refdata.BestTimeToVisit(city.Name),
		LocalLanguages:     refdata.LocalLanguages(city.Name),
		CulturalTips:       refdata.CulturalTips(city.Name),
		SafetyRating:       refdata.SafetyRating(city.Name),
		CrimeRate:          refdata.CrimeRate(city.Name),
		TouristSafety:      refdata.TouristSafety(city.Name),
		TouristAttractions: refdata.TouristAttractions(city.Name),
		LocalCuisine:       refdata.LocalCuisine(city.Name),
		EmergencyContacts:  refdata.EmergencyContacts(city.Name),
		PoliticalInfo:      refdata.PoliticalInfo(city.Name),
		Festivals:          refdata.Festivals(city.Name),
	}
}

// persistDerivedRecords upserts the snapshot and info records. A fallback
// snapshot is only persisted when the policy allows overwriting a possibly
// fresher prior snapshot. Failures are logged, never propagated.
func (uc *travelUseCase) persistDerivedRecords(city entity.City, weather weatherResult, info entity.CityInfo) {
	if weather.live || uc.persistFallback {
		if _, err := uc.dbGateway.UpsertWeatherSnapshot(weather.snapshot); err != nil {
			log.Errorf("Failed to persist weather snapshot for city %s: %v", city.Name, err)
		}
	}

	if _, err := uc.dbGateway.UpsertCityInfo(info); err != nil {
		log.Errorf("Failed to persist city info for city %s: %v", city.Name, err)
	}
}
