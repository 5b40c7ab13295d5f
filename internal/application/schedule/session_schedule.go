package schedule

import (
	"go-weather/internal/domain/usecase/widget"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionScheduler evicts idle widget sessions on a cron schedule
type SessionScheduler struct {
	cron           *cron.Cron
	registry       *widget.Registry
	cronExpression string
}

func NewSessionScheduler(registry *widget.Registry, cronExpression string) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), registry: registry, cronExpression: cronExpression}
}

// InitSessionScheduleTasks initializes session schedule tasks
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.SweepIdleSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("session.cron.started", scheduler.cronExpression))
	return nil
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	requestID := uuid.New().String()
	log.Debug(msg.GetMessage("session.cron.start"), zap.String("request_id", requestID))

	evicted := scheduler.registry.Sweep()

	log.Info(msg.GetMessage("session.cron.end", evicted, scheduler.registry.Len()),
		zap.String("request_id", requestID),
		zap.Int("evicted", evicted),
		zap.Int("active", scheduler.registry.Len()))
}

// Stop gracefully stops the scheduler
func (scheduler *SessionScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
