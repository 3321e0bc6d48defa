package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Job is a named periodic task. Each run gets its own timeout context.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	s      gocron.Scheduler
	logger *zap.Logger
}

func New(loc *time.Location, logger *zap.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{s: s, logger: logger}, nil
}

func (s *Scheduler) Add(job Job) error {
	timeout := job.Timeout
	if timeout <= 0 {
		timeout = job.Interval
	}

	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		if err := job.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed", zap.String("job", job.Name), zap.Error(err))
			return
		}
		s.logger.Debug("scheduled job done", zap.String("job", job.Name), zap.Duration("took", time.Since(start)))
	}

	_, err := s.s.NewJob(
		gocron.DurationJob(job.Interval),
		gocron.NewTask(task),
		gocron.WithName(job.Name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", job.Name, err)
	}
	s.logger.Info("job scheduled", zap.String("job", job.Name), zap.Duration("interval", job.Interval))
	return nil
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.s.Shutdown()
}
