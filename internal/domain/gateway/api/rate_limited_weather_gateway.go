package api

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

// Limiter takes one slot of an outbound call budget.
type Limiter interface {
	Acquire(ctx context.Context) error
}

type rateLimitedWeatherGateway struct {
	next    WeatherGateway
	limiter Limiter
}

// NewRateLimitedWeatherGateway guards every call of next with limiter.
// A rejected slot fails the call; a limiter that cannot reach its store lets the call through.
func NewRateLimitedWeatherGateway(next WeatherGateway, limiter Limiter) WeatherGateway {
	return &rateLimitedWeatherGateway{next: next, limiter: limiter}
}

func (g *rateLimitedWeatherGateway) GetCurrentByCoordinates(ctx context.Context, coordinates entity.Coordinates) (*external.CurrentWeatherResponse, error) {
	if err := g.acquire(ctx, "weather"); err != nil {
		return nil, err
	}
	return g.next.GetCurrentByCoordinates(ctx, coordinates)
}

func (g *rateLimitedWeatherGateway) GetCurrentByCity(ctx context.Context, city string) (*external.CurrentWeatherResponse, error) {
	if err := g.acquire(ctx, "weather"); err != nil {
		return nil, err
	}
	return g.next.GetCurrentByCity(ctx, city)
}

func (g *rateLimitedWeatherGateway) SearchCities(ctx context.Context, query string, limit int) ([]external.GeocodingResponse, error) {
	if err := g.acquire(ctx, "geocoding"); err != nil {
		return nil, err
	}
	return g.next.SearchCities(ctx, query, limit)
}

func (g *rateLimitedWeatherGateway) acquire(ctx context.Context, operation string) error {
	err := g.limiter.Acquire(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.ErrRateLimited) {
		log.Warn(msg.GetMessage("openweathermap.rate-limited", operation), zap.String("operation", operation))
		return err
	}
	log.Warn(msg.GetMessage("openweathermap.rate-limiter-unavailable", operation), zap.String("operation", operation), zap.Error(err))
	return nil
}
