package cache

import "go-weather/internal/domain/model"

// HealthGateway reports the health of the cache store
type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
