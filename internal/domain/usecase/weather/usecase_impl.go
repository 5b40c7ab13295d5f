package weather

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

// Config holds the tunables of the weather use case
type Config struct {
	// MinQueryLength is the longest query that is still too short to search
	MinQueryLength int
	// SuggestionLimit caps the places returned by SuggestCities
	SuggestionLimit int
}

func DefaultConfig() Config {
	return Config{MinQueryLength: 2, SuggestionLimit: 5}
}

type weatherUseCase struct {
	config             Config
	apiGateway         api.WeatherGateway
	geolocationGateway api.GeolocationGateway
	suggestionCache    cache.SuggestionCache
}

// NewWeatherUseCase wires the use case. suggestionCache may be nil.
func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway, geolocationGateway api.GeolocationGateway, suggestionCache cache.SuggestionCache) UseCase {
	if geolocationGateway == nil {
		geolocationGateway = api.NewUnsupportedGeolocationGateway()
	}
	return &weatherUseCase{
		config:             config,
		apiGateway:         apiGateway,
		geolocationGateway: geolocationGateway,
		suggestionCache:    suggestionCache,
	}
}

// FetchByCoordinates returns current conditions at a position or ErrUnableToFetch
func (uc *weatherUseCase) FetchByCoordinates(ctx context.Context, coordinates entity.Coordinates) (*entity.WeatherReading, error) {
	response, err := uc.apiGateway.GetCurrentByCoordinates(ctx, coordinates)
	if err != nil {
		log.Warn(msg.GetMessage("weather.fetch-coordinates-failed", coordinates.Latitude, coordinates.Longitude),
			zap.Float64("lat", coordinates.Latitude),
			zap.Float64("lon", coordinates.Longitude),
			zap.Error(err))
		return nil, ErrUnableToFetch
	}

	return toWeatherReading(response), nil
}

// FetchByCity returns current conditions for a city name or ErrCityNotFound
func (uc *weatherUseCase) FetchByCity(ctx context.Context, city string) (*entity.WeatherReading, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrCityNotFound
	}

	response, err := uc.apiGateway.GetCurrentByCity(ctx, city)
	if err != nil {
		log.Warn(msg.GetMessage("weather.fetch-city-failed", city), zap.String("city", city), zap.Error(err))
		return nil, ErrCityNotFound
	}

	return toWeatherReading(response), nil
}

// FetchByVisitorPosition locates the visitor and fetches conditions at that position
func (uc *weatherUseCase) FetchByVisitorPosition(ctx context.Context, clientIP string) (*entity.WeatherReading, error) {
	coordinates, err := uc.geolocationGateway.Locate(ctx, clientIP)
	if err != nil {
		if errors.Is(err, api.ErrLocatorUnsupported) {
			return nil, ErrGeolocationUnsupported
		}
		log.Info(msg.GetMessage("geolocation.denied", clientIP), zap.String("client_ip", clientIP), zap.Error(err))
		return nil, ErrGeolocationDenied
	}

	return uc.FetchByCoordinates(ctx, coordinates)
}

// SuggestCities returns places matching a partial name; failures yield an empty list
func (uc *weatherUseCase) SuggestCities(ctx context.Context, query string) []entity.CitySuggestion {
	if utf8.RuneCountInString(query) <= uc.config.MinQueryLength {
		return []entity.CitySuggestion{}
	}

	if uc.suggestionCache != nil {
		if suggestions, found := uc.suggestionCache.Get(ctx, query); found {
			return suggestions
		}
	}

	response, err := uc.apiGateway.SearchCities(ctx, query, uc.config.SuggestionLimit)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn(msg.GetMessage("weather.suggest-failed", query), zap.String("query", query), zap.Error(err))
		}
		return []entity.CitySuggestion{}
	}

	suggestions := make([]entity.CitySuggestion, 0, len(response))
	for _, place := range response {
		suggestions = append(suggestions, entity.CitySuggestion{
			Name:    place.Name,
			Country: place.Country,
			State:   place.State,
			Lat:     place.Lat,
			Lon:     place.Lon,
		})
	}

	if uc.suggestionCache != nil {
		uc.suggestionCache.Put(ctx, query, suggestions)
	}
	return suggestions
}

func toWeatherReading(response *external.CurrentWeatherResponse) *entity.WeatherReading {
	var condition entity.Condition
	if len(response.Weather) > 0 {
		condition = entity.Condition{
			Description: response.Weather[0].Description,
			Main:        response.Weather[0].Main,
		}
	}

	return &entity.WeatherReading{
		Location:     response.Name,
		Condition:    condition,
		Icon:         entity.IconFor(condition.Description),
		TemperatureC: response.Main.Temp,
		HumidityPct:  response.Main.Humidity,
		WindSpeedMS:  response.Wind.Speed,
	}
}
