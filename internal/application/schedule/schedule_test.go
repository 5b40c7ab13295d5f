package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/widget"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopWeatherUseCase struct{}

func (noopWeatherUseCase) FetchByCoordinates(context.Context, entity.Coordinates) (*entity.WeatherReading, error) {
	return nil, nil
}
func (noopWeatherUseCase) FetchByCity(context.Context, string) (*entity.WeatherReading, error) {
	return nil, nil
}
func (noopWeatherUseCase) FetchByVisitorPosition(context.Context, string) (*entity.WeatherReading, error) {
	return nil, nil
}
func (noopWeatherUseCase) SuggestCities(context.Context, string) []entity.CitySuggestion {
	return nil
}

func TestSessionScheduler_SweepIdleSessions(t *testing.T) {
	registry := widget.NewRegistry(widget.DefaultSessionConfig(), time.Nanosecond, noopWeatherUseCase{})
	registry.GetOrCreate("", "")
	registry.GetOrCreate("", "")
	time.Sleep(time.Millisecond)

	NewSessionScheduler(registry, "@every 1m").SweepIdleSessions()

	assert.Equal(t, 0, registry.Len())
}

func TestSessionScheduler_InvalidCron(t *testing.T) {
	scheduler := NewSessionScheduler(widget.NewRegistry(widget.DefaultSessionConfig(), time.Minute, noopWeatherUseCase{}), "not a cron")

	assert.Error(t, scheduler.InitSessionScheduleTasks())
}

type countingHealthUseCase struct {
	refreshes atomic.Int32
}

func (c *countingHealthUseCase) CheckHealth() model.HealthResponse {
	return model.HealthResponse{Status: model.StatusUp}
}

func (c *countingHealthUseCase) Refresh() model.HealthResponse {
	c.refreshes.Add(1)
	return model.HealthResponse{Status: model.StatusDown}
}

func TestHealthScheduler_RefreshesPeriodically(t *testing.T) {
	useCase := &countingHealthUseCase{}
	scheduler, err := NewHealthScheduler(useCase, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, scheduler.InitHealthScheduleTasks())
	defer scheduler.Stop()

	assert.Eventually(t, func() bool { return useCase.refreshes.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
