package health

import (
	"sync"

	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	cacheGateway cache.HealthGateway
	mu           sync.RWMutex
	last         *model.HealthResponse
}

func NewHealthUseCase(cacheGateway cache.HealthGateway) UseCase {
	return &healthUseCase{
		cacheGateway: cacheGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	useCase.mu.RLock()
	last := useCase.last
	useCase.mu.RUnlock()

	if last != nil {
		return *last
	}
	return useCase.Refresh()
}

func (useCase *healthUseCase) Refresh() model.HealthResponse {
	redisHealth := useCase.cacheGateway.Health()

	// a disabled cache does not take the application down
	overallStatus := model.StatusUp
	if redisHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	response := model.HealthResponse{
		Status: overallStatus,
		Redis:  redisHealth,
	}

	useCase.mu.Lock()
	useCase.last = &response
	useCase.mu.Unlock()

	return response
}
