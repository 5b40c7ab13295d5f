package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetCurrentWeather)
	controller.api.GET("/cities", controller.SuggestCities)
}

// GetCurrentWeather godoc
// @Summary Get current weather
// @Description Current conditions for a city name, or for a position when lat and lon are given
// @Tags weather
// @Produce json
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} entity.WeatherReading "Current conditions"
// @Failure 400 {object} model.ErrorDTO "Missing or invalid parameters"
// @Failure 404 {object} model.ErrorDTO "City not found"
// @Failure 502 {object} model.ErrorDTO "Unable to fetch weather data"
// @Router /weather [get]
func (controller *WeatherController) GetCurrentWeather(c echo.Context) error {
	ctx := c.Request().Context()
	city := c.QueryParam("city")
	lat, lon := c.QueryParam("lat"), c.QueryParam("lon")

	if lat == "" && lon == "" {
		if city == "" {
			return c.JSON(http.StatusBadRequest, model.ErrorDTO{Error: "city or lat and lon are required"})
		}
		reading, err := controller.useCase.FetchByCity(ctx, city)
		if err != nil {
			return c.JSON(statusFor(err), model.ErrorDTO{Error: weather.Message(err)})
		}
		return c.JSON(http.StatusOK, reading)
	}

	coordinates, err := parseCoordinates(lat, lon)
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorDTO{Error: err.Error()})
	}

	reading, err := controller.useCase.FetchByCoordinates(ctx, coordinates)
	if err != nil {
		return c.JSON(statusFor(err), model.ErrorDTO{Error: weather.Message(err)})
	}
	return c.JSON(http.StatusOK, reading)
}

// SuggestCities godoc
// @Summary Suggest cities
// @Description Places matching a partial city name. Queries of two characters or fewer return an empty list
// @Tags weather
// @Produce json
// @Param q query string true "Partial city name"
// @Success 200 {array} entity.CitySuggestion "Matching places"
// @Router /cities [get]
func (controller *WeatherController) SuggestCities(c echo.Context) error {
	suggestions := controller.useCase.SuggestCities(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, suggestions)
}

func parseCoordinates(lat string, lon string) (entity.Coordinates, error) {
	if lat == "" || lon == "" {
		return entity.Coordinates{}, errors.New("lat and lon are both required")
	}
	latitude, err := numberutils.ToFloat64WithError(lat)
	if err != nil {
		return entity.Coordinates{}, errors.New("lat must be a number")
	}
	longitude, err := numberutils.ToFloat64WithError(lon)
	if err != nil {
		return entity.Coordinates{}, errors.New("lon must be a number")
	}

	coordinates := entity.Coordinates{Latitude: latitude, Longitude: longitude}
	if err := coordinates.Validate(); err != nil {
		return entity.Coordinates{}, err
	}
	return coordinates, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
