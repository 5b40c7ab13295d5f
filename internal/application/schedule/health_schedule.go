package schedule

import (
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/health"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// HealthScheduler refreshes the cached health report at a fixed interval
type HealthScheduler struct {
	scheduler gocron.Scheduler
	useCase   health.UseCase
	interval  time.Duration
}

func NewHealthScheduler(useCase health.UseCase, interval time.Duration) (*HealthScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &HealthScheduler{scheduler: scheduler, useCase: useCase, interval: interval}, nil
}

// InitHealthScheduleTasks initializes health schedule tasks
func (s *HealthScheduler) InitHealthScheduleTasks() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.RefreshHealth),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Info(msg.GetMessage("health.job.started", s.interval))
	return nil
}

func (s *HealthScheduler) RefreshHealth() {
	response := s.useCase.Refresh()
	if response.Status != model.StatusUp {
		log.Warn(msg.GetMessage("health.job.down", response.Redis.Status), zap.Any("redis", response.Redis))
	}
}

// Stop gracefully stops the scheduler
func (s *HealthScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("health scheduler shutdown: %v", err)
	}
}
