package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs background jobs on fixed intervals.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
}

// Every schedules job to run once per interval. Each run gets a context
// bounded by the interval.
func (s *Scheduler) Every(name string, interval time.Duration, job func(ctx context.Context) error) error {
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		return fmt.Errorf("job %s: interval must be at least one second", name)
	}
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		if err := job(ctx); err != nil {
			s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		}
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
