package cache

import (
	"context"
	"errors"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

type redisSuggestionCache struct {
	cache *redis.Cache
}

// NewRedisSuggestionCache creates a SuggestionCache stored in Redis.
// Redis failures are logged and behave as misses.
func NewRedisSuggestionCache(client *redis.Client) SuggestionCache {
	return &redisSuggestionCache{
		cache: redis.NewCache(client, redis.NewCacheOptions().WithCacheName(SuggestionCacheName)),
	}
}

func (c *redisSuggestionCache) Get(ctx context.Context, query string) ([]entity.CitySuggestion, bool) {
	var suggestions []entity.CitySuggestion
	err := c.cache.Get(ctx, cacheKey(query), &suggestions)
	if err == nil {
		return suggestions, true
	}
	switch {
	case errors.Is(err, redis.ErrCacheMiss):
	case errors.Is(err, redis.ErrCacheUnreadable):
		log.Warn(msg.GetMessage("cache.evicted", SuggestionCacheName, query), zap.Error(err))
		if err := c.cache.Delete(ctx, cacheKey(query)); err != nil {
			log.Warn(msg.GetMessage("cache.get-failed", SuggestionCacheName, query), zap.Error(err))
		}
	default:
		log.Warn(msg.GetMessage("cache.get-failed", SuggestionCacheName, query), zap.Error(err))
	}
	return nil, false
}

func (c *redisSuggestionCache) Put(ctx context.Context, query string, suggestions []entity.CitySuggestion) {
	if err := c.cache.Set(ctx, cacheKey(query), suggestions); err != nil {
		log.Warn(msg.GetMessage("cache.put-failed", SuggestionCacheName, query), zap.Error(err))
	}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
