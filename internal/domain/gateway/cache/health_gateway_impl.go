package cache

import (
	"context"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"go.uber.org/zap"
)

const metricsTimeout = 2 * time.Second

// RateMetrics reports the usage of a Redis backed rate limiter.
type RateMetrics interface {
	GetMetrics(ctx context.Context) (redis.RateLimiterMetrics, error)
}

type redisHealthGateway struct {
	checker  *redis.HealthChecker
	limiters map[string]RateMetrics
}

// NewRedisHealthGateway creates a HealthGateway over the Redis health checker.
// A nil checker means Redis is disabled. The metrics of each limiter are added to the
// details as <name>.<metric>.
func NewRedisHealthGateway(checker *redis.HealthChecker, limiters map[string]RateMetrics) HealthGateway {
	return &redisHealthGateway{checker: checker, limiters: limiters}
}

func (g *redisHealthGateway) Health() model.ComponentHealthStatus {
	if g.checker == nil {
		return model.ComponentHealthStatus{
			Status:  model.StatusUnknown,
			Details: map[string]string{"enabled": "false"},
		}
	}

	check := g.checker.HealthCheck()
	if check.Status == redis.StatusUp {
		g.addLimiterMetrics(check.Details)
	}
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

func (g *redisHealthGateway) addLimiterMetrics(details map[string]string) {
	if len(g.limiters) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), metricsTimeout)
	defer cancel()

	for name, limiter := range g.limiters {
		metrics, err := limiter.GetMetrics(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("cache.metrics-failed", name), zap.Error(err))
			continue
		}
		for key, value := range metrics {
			details[name+"."+key] = value
		}
	}
}
