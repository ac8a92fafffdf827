package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Job is one scraping cycle.
type Job func(ctx context.Context) error

// Scheduler invokes a job immediately and then on a fixed interval,
// indefinitely. A failed or panicking cycle is logged and never kills the
// process; the next tick is the retry mechanism.
type Scheduler struct {
	interval time.Duration
	job      Job
}

func NewScheduler(interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		interval: interval,
		job:      job,
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	slog.Info("Scheduler started", "interval", s.interval.String())

	s.runJob(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Scraping cycle panicked", "panic", r)
		}
	}()

	slog.Info("Starting scheduled scraping cycle")
	start := time.Now()

	if err := s.job(ctx); err != nil {
		slog.Error("Scraping cycle failed", "duration", time.Since(start).String(), "error", err)
		return
	}

	slog.Info("Scraping cycle completed", "duration", time.Since(start).String())
}
