package cache

import (
	"context"

	"go-weather/internal/domain/entity"
)

// SuggestionCacheName is the cache name of geocoding results; its TTL is configured per name.
const SuggestionCacheName = "city-suggestions"

// SuggestionCache keeps geocoding results for recently typed queries
type SuggestionCache interface {
	// Get returns the cached suggestions for query and whether they were found
	Get(ctx context.Context, query string) ([]entity.CitySuggestion, bool)

	// Put stores the suggestions for query
	Put(ctx context.Context, query string, suggestions []entity.CitySuggestion)
}
