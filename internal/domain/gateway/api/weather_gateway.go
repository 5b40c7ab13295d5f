package api

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

// WeatherGateway defines the OpenWeatherMap calls the widget relies on
type WeatherGateway interface {
	// GetCurrentByCoordinates gets current conditions at a position
	GetCurrentByCoordinates(ctx context.Context, coordinates entity.Coordinates) (*external.CurrentWeatherResponse, error)

	// GetCurrentByCity gets current conditions for a city name
	GetCurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error)

	// SearchCities resolves a partial city name into at most limit places
	SearchCities(ctx context.Context, query string, limit int) ([]external.GeocodingResponse, error)
}
