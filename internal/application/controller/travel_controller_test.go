package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra-api/internal/domain/entity"
	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/model"
	"yatra-api/internal/domain/usecase/travel"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type fakeTravelUseCase struct {
	searchResponse *model.SearchCityResponse
	searchErr      error
	snapshot       *entity.WeatherSnapshot
	snapshotErr    error
	info           *entity.CityInfo
	infoErr        error
	gotPage        int
	gotSize        int
}

func (f *fakeTravelUseCase) SearchCity(cityName string) (*model.SearchCityResponse, error) {
	return f.searchResponse, f.searchErr
}

func (f *fakeTravelUseCase) SearchAnyCity(cityName string) (*model.SearchCityResponse, error) {
	return f.searchResponse, f.searchErr
}

func (f *fakeTravelUseCase) GetWeather(cityID int64) (*entity.WeatherSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeTravelUseCase) GetCityInfo(cityID int64) (*entity.CityInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeTravelUseCase) GetTransportation(cityName string) (*entity.Transportation, error) {
	transport := entity.Transportation{TrainStations: []string{"Chennai Central"}}
	return &transport, nil
}

func (f *fakeTravelUseCase) FindAllCities(page int, size int) (*model.Page[entity.City], error) {
	f.gotPage = page
	f.gotSize = size
	return model.NewPage([]entity.City{}, page, size, 0), nil
}

func (f *fakeTravelUseCase) RefreshCity(cityID int64) error { return nil }

func (f *fakeTravelUseCase) RefreshAllCities(requestID string) error { return nil }

func setupTravelServer(useCase travel.UseCase) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	api := e.Group("/api")
	travelController := NewTravelController(api, useCase)
	travelController.InitTravelRoutes()
	return e
}

func TestSearchCityReturnsEnvelope(t *testing.T) {
	useCase := &fakeTravelUseCase{
		searchResponse: &model.SearchCityResponse{
			City:   entity.City{ID: 1, Name: "Mumbai", State: "Maharashtra", Country: "India"},
			Hotels: []entity.Hotel{{Name: "The Taj Mahal Palace"}},
			Weather: entity.WeatherSnapshot{
				CityID:   1,
				Forecast: []entity.ForecastEntry{{Day: "Mon", Icon: "sun", Temp: 30}},
			},
		},
	}
	e := setupTravelServer(useCase)

	request := httptest.NewRequest(http.MethodPost, "/api/search-city", strings.NewReader(`{"cityName":"Mumbai"}`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.SearchCityResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Mumbai", response.City.Name)
	assert.Equal(t, "Maharashtra", response.City.State)
	assert.NotEmpty(t, response.Hotels)
	assert.LessOrEqual(t, len(response.Weather.Forecast), 7)
}

func TestSearchCityRejectsEmptyName(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{})

	request := httptest.NewRequest(http.MethodPost, "/api/search-city", strings.NewReader(`{"cityName":""}`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "message")
}

func TestSearchCityRejectsMalformedBody(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{})

	request := httptest.NewRequest(http.MethodPost, "/api/search-city", strings.NewReader(`{`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetWeatherUnknownCity(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{snapshotErr: db.ErrNotFound})

	request := httptest.NewRequest(http.MethodGet, "/api/weather/999", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "message")
}

func TestGetWeatherNonNumericID(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{})

	request := httptest.NewRequest(http.MethodGet, "/api/weather/mumbai", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetWeatherFound(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{
		snapshot: &entity.WeatherSnapshot{ID: 10, CityID: 1, Temperature: 28},
	})

	request := httptest.NewRequest(http.MethodGet, "/api/weather/1", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var snapshot entity.WeatherSnapshot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &snapshot))
	assert.Equal(t, 28.0, snapshot.Temperature)
}

func TestGetCityInfoUnknownCity(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{infoErr: db.ErrNotFound})

	request := httptest.NewRequest(http.MethodGet, "/api/city-info/999", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSearchAnyCityNoSummary(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{searchErr: travel.ErrSummaryNotFound})

	request := httptest.NewRequest(http.MethodPost, "/api/search-any-city", strings.NewReader(`{"cityName":"Atlantis"}`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetTransportation(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{})

	request := httptest.NewRequest(http.MethodGet, "/api/transportation/chennai", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Chennai Central")
}

func TestFindAllCitiesClampsPageParams(t *testing.T) {
	cases := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"page=-2&size=-1", 0, 10},
		{"size=0", 0, 10},
		{"size=5000", 0, 10},
		{"page=1&size=25", 1, 25},
	}

	for _, tc := range cases {
		useCase := &fakeTravelUseCase{}
		e := setupTravelServer(useCase)

		request := httptest.NewRequest(http.MethodGet, "/api/cities?"+tc.query, nil)
		recorder := httptest.NewRecorder()
		e.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code, tc.query)
		assert.Equal(t, tc.wantPage, useCase.gotPage, tc.query)
		assert.Equal(t, tc.wantSize, useCase.gotSize, tc.query)
	}
}

func TestRefreshAllCitiesAccepted(t *testing.T) {
	e := setupTravelServer(&fakeTravelUseCase{})

	request := httptest.NewRequest(http.MethodGet, "/api/refresh", nil)
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "requestId")
}
