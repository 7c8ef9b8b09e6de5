package scheduler

import (
	"context"
	"log/slog"
	"time"

	"fitsync/internal/domain"
)

// Syncer is one synchronization pass over a date range.
type Syncer interface {
	SyncAll(ctx context.Context, rng domain.DateRange, dryRun bool) (*domain.SyncSummary, error)
}

// Scheduler periodically runs the activity sync and then the fitness
// sync over a trailing window of days. Activities go first so the
// metric recurrence sees the loads fetched in the same pass.
type Scheduler struct {
	activities Syncer
	fitness    Syncer
	interval   time.Duration
	windowDays int
	logger     *slog.Logger
}

func NewScheduler(activities, fitness Syncer, interval time.Duration, windowDays int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		activities: activities,
		fitness:    fitness,
		interval:   interval,
		windowDays: windowDays,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"window_days", s.windowDays)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	rng := s.window()

	if _, err := s.activities.SyncAll(syncCtx, rng, false); err != nil {
		s.logger.Error("activity sync failed", "error", err)
		return
	}

	if _, err := s.fitness.SyncAll(syncCtx, rng, false); err != nil {
		s.logger.Error("fitness sync failed", "error", err)
	}
}

func (s *Scheduler) window() domain.DateRange {
	now := time.Now().UTC()
	return domain.DateRange{
		Start: now.AddDate(0, 0, -s.windowDays),
		End:   now,
	}
}
