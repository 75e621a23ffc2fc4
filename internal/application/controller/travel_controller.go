package controller

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/model"
	"yatra-api/internal/domain/usecase/travel"
	"yatra-api/pkg/log"
	"yatra-api/pkg/msg"
	"yatra-api/pkg/util/numberutils"
)

// maxPageSize caps the page size accepted on listing endpoints.
const maxPageSize = 100

type TravelController struct {
	api     *echo.Group
	useCase travel.UseCase
}

func NewTravelController(api *echo.Group, useCase travel.UseCase) *TravelController {
	return &TravelController{api: api, useCase: useCase}
}

// InitTravelRoutes initializes travel routes
func (controller *TravelController) InitTravelRoutes() {
	controller.api.POST("/search-city", controller.SearchCity)
	controller.api.POST("/search-any-city", controller.SearchAnyCity)
	controller.api.GET("/weather/:cityId", controller.GetWeather)
	controller.api.GET("/city-info/:cityId", controller.GetCityInfo)
	controller.api.GET("/transportation/:cityName", controller.GetTransportation)
	controller.api.GET("/cities", controller.FindAllCities)
	controller.api.GET("/refresh", controller.RefreshAllCities)
}

// SearchCity godoc
// @Summary Search travel information for a city
// @Description Resolve a city name and return weather, cultural info, news, hotels and restaurants
// @Tags travel
// @Accept json
// @Produce json
// @Param city body model.SearchCityDTO true "City to search"
// @Success 200 {object} model.SearchCityResponse "Merged travel envelope"
// @Failure 400 {object} map[string]string "Missing or empty city name"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /search-city [post]
func (controller *TravelController) SearchCity(c echo.Context) error {
	var dto model.SearchCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.invalid-body")})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.city-name-required")})
	}

	response, err := controller.useCase.SearchCity(dto.CityName)
	if err != nil {
		if errors.Is(err, travel.ErrInvalidCityName) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.city-name-required")})
		}
		log.Errorf("Search city failed for %q: %v", dto.CityName, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": msg.GetMessage("error.internal")})
	}
	return c.JSON(http.StatusOK, response)
}

// SearchAnyCity godoc
// @Summary Search travel information for any city
// @Description Build the travel envelope from live sources only, without persisting the city
// @Tags travel
// @Accept json
// @Produce json
// @Param city body model.SearchCityDTO true "City to search"
// @Success 200 {object} model.SearchCityResponse "Merged travel envelope"
// @Failure 400 {object} map[string]string "Missing or empty city name"
// @Failure 404 {object} map[string]string "No summary found for the city"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /search-any-city [post]
func (controller *TravelController) SearchAnyCity(c echo.Context) error {
	var dto model.SearchCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.invalid-body")})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.city-name-required")})
	}

	response, err := controller.useCase.SearchAnyCity(dto.CityName)
	if err != nil {
		switch {
		case errors.Is(err, travel.ErrInvalidCityName):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.city-name-required")})
		case errors.Is(err, travel.ErrSummaryNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"message": msg.GetMessage("error.summary-not-found", dto.CityName)})
		default:
			log.Errorf("Search any city failed for %q: %v", dto.CityName, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": msg.GetMessage("error.internal")})
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetWeather godoc
// @Summary Get the weather snapshot of a city
// @Description Retrieve the persisted weather snapshot for a city id
// @Tags travel
// @Accept json
// @Produce json
// @Param cityId path int true "City id"
// @Success 200 {object} entity.WeatherSnapshot "Weather snapshot"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather/{cityId} [get]
func (controller *TravelController) GetWeather(c echo.Context) error {
	cityID, err := numberutils.ToInt64WithError(c.Param("cityId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": msg.GetMessage("error.city-not-found")})
	}

	snapshot, err := controller.useCase.GetWeather(cityID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": msg.GetMessage("error.city-not-found")})
		}
		log.Errorf("Get weather failed for city %d: %v", cityID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": msg.GetMessage("error.internal")})
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetCityInfo godoc
// @Summary Get the cultural and safety info of a city
// @Description Retrieve the persisted city info record for a city id
// @Tags travel
// @Accept json
// @Produce json
// @Param cityId path int true "City id"
// @Success 200 {object} entity.CityInfo "City info record"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /city-info/{cityId} [get]
func (controller *TravelController) GetCityInfo(c echo.Context) error {
	cityID, err := numberutils.ToInt64WithError(c.Param("cityId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": msg.GetMessage("error.city-not-found")})
	}

	info, err := controller.useCase.GetCityInfo(cityID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": msg.GetMessage("error.city-not-found")})
		}
		log.Errorf("Get city info failed for city %d: %v", cityID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": msg.GetMessage("error.internal")})
	}
	return c.JSON(http.StatusOK, info)
}

// GetTransportation godoc
// @Summary Get transport options for a city
// @Description Resolve a city name and return its train, bus, local transport and airport options
// @Tags travel
// @Accept json
// @Produce json
// @Param cityName path string true "City name"
// @Success 200 {object} entity.Transportation "Transport options"
// @Failure 400 {object} map[string]string "Missing or empty city name"
// @Router /transportation/{cityName} [get]
func (controller *TravelController) GetTransportation(c echo.Context) error {
	transportation, err := controller.useCase.GetTransportation(c.Param("cityName"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": msg.GetMessage("error.city-name-required")})
	}
	return c.JSON(http.StatusOK, transportation)
}

// FindAllCities godoc
// @Summary Get all known cities
// @Description Retrieve the cities created by previous searches, paginated
// @Tags travel
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.City] "Paginated list of cities"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities [get]
func (controller *TravelController) FindAllCities(c echo.Context) error {
	page := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), 10)
	if page < 0 {
		page = 0
	}
	if !numberutils.IsIntInRange(size, 1, maxPageSize) {
		size = 10
	}

	cities, err := controller.useCase.FindAllCities(page, size)
	if err != nil {
		log.Errorf("Find all cities failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": msg.GetMessage("error.internal")})
	}
	return c.JSON(http.StatusOK, cities)
}

// RefreshAllCities godoc
// @Summary Schedule a refresh of all cities
// @Description Enqueue every known city for a snapshot refresh
// @Tags travel
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Refresh scheduled successfully"
// @Router /refresh [get]
func (controller *TravelController) RefreshAllCities(c echo.Context) error {
	requestID := uuid.NewString()

	// Runs in the background; enqueue failures are logged by the usecase
	go func() {
		if err := controller.useCase.RefreshAllCities(requestID); err != nil {
			log.Errorf("Scheduled refresh %s failed: %v", requestID, err)
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{
		"message":   msg.GetMessage("travel.refresh.scheduled"),
		"requestId": requestID,
	})
}
