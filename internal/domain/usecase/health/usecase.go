package health

import "go-weather/internal/domain/model"

type UseCase interface {
	// CheckHealth returns the last computed health, computing it first if needed
	CheckHealth() model.HealthResponse

	// Refresh runs every component check and stores the result
	Refresh() model.HealthResponse
}
