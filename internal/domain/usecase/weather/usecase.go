package weather

import (
	"context"

	"go-weather/internal/domain/entity"
)

type UseCase interface {
	// FetchByCoordinates returns current conditions at a position or ErrUnableToFetch
	FetchByCoordinates(ctx context.Context, coordinates entity.Coordinates) (*entity.WeatherReading, error)

	// FetchByCity returns current conditions for a city name or ErrCityNotFound
	FetchByCity(ctx context.Context, city string) (*entity.WeatherReading, error)

	// FetchByVisitorPosition locates the visitor and fetches conditions at that position
	FetchByVisitorPosition(ctx context.Context, clientIP string) (*entity.WeatherReading, error)

	// SuggestCities returns places matching a partial name; failures yield an empty list
	SuggestCities(ctx context.Context, query string) []entity.CitySuggestion
}
