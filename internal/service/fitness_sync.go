package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitsync/internal/config"
	"fitsync/internal/domain"
	"fitsync/internal/metrics"
	"fitsync/internal/worker"
)

// FitnessSyncer recomputes the continuous daily fitness/fatigue/form
// series for every user with training history. Each user's window is
// seeded from the last stored day before the range so the recurrence
// continues instead of restarting from zero.
type FitnessSyncer struct {
	activities ActivityStore
	metrics    MetricsStore
	tx         TransactionManager
	logger     *slog.Logger
	cfg        config.SyncConfig
	retry      RetryPolicy
	constants  metrics.Constants
}

func NewFitnessSyncer(
	activities ActivityStore,
	metricsStore MetricsStore,
	tx TransactionManager,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *FitnessSyncer {
	return &FitnessSyncer{
		activities: activities,
		metrics:    metricsStore,
		tx:         tx,
		logger:     logger,
		cfg:        cfg,
		retry:      NewRetryPolicy(cfg.RetryAttempts, cfg.RetryDelay),
		constants:  metrics.DefaultConstants(),
	}
}

// SyncAll recomputes the metric series over the date range for all users
// with training history. Users are processed in batches so progress is
// visible on large installs; within a batch users run concurrently.
func (s *FitnessSyncer) SyncAll(ctx context.Context, rng domain.DateRange, dryRun bool) (*domain.SyncSummary, error) {
	started := time.Now()
	rng = rng.Normalized()

	s.logger.Info("starting fitness sync",
		"start", rng.Start.Format(time.RFC3339),
		"end", rng.End.Format(time.RFC3339),
		"dry_run", dryRun)

	users, err := s.metrics.UsersWithTrainingHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users with training history: %w", err)
	}

	summary := &domain.SyncSummary{Targets: len(users), DryRun: dryRun}
	if len(users) == 0 {
		summary.Finish(started)
		s.logger.Info("no users with training history, nothing to sync")
		return summary, nil
	}

	batchSize := s.cfg.UserBatchSize
	if batchSize < 1 {
		batchSize = len(users)
	}

	for offset := 0; offset < len(users); offset += batchSize {
		end := offset + batchSize
		if end > len(users) {
			end = len(users)
		}
		batch := users[offset:end]

		results := worker.Map(ctx, int64(s.cfg.Concurrency), batch, func(ctx context.Context, userID string) (userOutcome, error) {
			var out userOutcome
			retries, err := s.retry.Do(ctx, func(ctx context.Context) error {
				var opErr error
				out, opErr = s.syncUser(ctx, userID, rng, dryRun)
				return opErr
			})
			out.retries = retries
			if err != nil {
				s.logger.Error("user fitness sync failed",
					"user_id", userID,
					"retries", retries,
					"error", err)
			}
			return out, err
		})

		for _, r := range results {
			summary.Retries += r.Value.retries
			if r.Err != nil {
				summary.Failed++
				continue
			}
			summary.Succeeded++
			summary.Processed += r.Value.processed
			summary.Created += r.Value.created
			summary.Updated += r.Value.updated
		}

		s.logger.Debug("fitness sync batch done",
			"done", end,
			"total", len(users))
	}

	summary.Finish(started)
	s.logger.Info("fitness sync completed",
		"targets", summary.Targets,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"retries", summary.Retries,
		"days", summary.Processed,
		"created", summary.Created,
		"updated", summary.Updated,
		"success_rate", summary.SuccessRate,
		"duration", summary.Duration)

	return summary, nil
}

func (s *FitnessSyncer) syncUser(ctx context.Context, userID string, rng domain.DateRange, dryRun bool) (userOutcome, error) {
	loads, err := s.activities.LoadsInRange(ctx, userID, rng)
	if err != nil {
		return userOutcome{}, fmt.Errorf("load training loads: %w", err)
	}

	seed := domain.TrainingState{}
	latest, err := s.metrics.LatestBefore(ctx, userID, rng.Start)
	if err != nil {
		return userOutcome{}, fmt.Errorf("load seed metrics: %w", err)
	}
	if latest != nil {
		seed = domain.TrainingState{CTL: latest.Fitness, ATL: latest.Fatigue, TSB: latest.Form}
	}

	series := metrics.BuildContinuous(loads, rng, seed, s.constants)

	existing, err := s.metrics.DatesInRange(ctx, userID, rng)
	if err != nil {
		return userOutcome{}, fmt.Errorf("load existing metric dates: %w", err)
	}

	var creates, updates []domain.DailyMetrics
	for _, day := range series {
		row := domain.DailyMetrics{
			UserID:  userID,
			Date:    day.Date,
			Fitness: day.State.CTL,
			Fatigue: day.State.ATL,
			Form:    day.State.TSB,
		}
		if ratio, ok := metrics.ACWR(day.State.ATL, day.State.CTL); ok {
			row.ACWR = &ratio
		}

		if _, ok := existing[metrics.DayKey(day.Date)]; ok {
			updates = append(updates, row)
		} else {
			creates = append(creates, row)
		}
	}

	out := userOutcome{processed: len(series)}
	if dryRun {
		out.created = len(creates)
		out.updated = len(updates)
		return out, nil
	}

	writeBatch := s.cfg.WriteBatch
	if writeBatch < 1 {
		writeBatch = len(series)
	}

	for offset := 0; offset < len(creates); offset += writeBatch {
		end := offset + writeBatch
		if end > len(creates) {
			end = len(creates)
		}
		n, err := s.metrics.CreateBatch(ctx, creates[offset:end])
		if err != nil {
			return out, fmt.Errorf("create daily metrics: %w", err)
		}
		out.created += n
	}

	// Updates for a batch commit together; a torn batch would leave the
	// series discontinuous.
	for offset := 0; offset < len(updates); offset += writeBatch {
		end := offset + writeBatch
		if end > len(updates) {
			end = len(updates)
		}
		batch := updates[offset:end]

		err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			for i := range batch {
				if err := s.metrics.Update(txCtx, &batch[i]); err != nil {
					return fmt.Errorf("update daily metrics for %s: %w", metrics.DayKey(batch[i].Date), err)
				}
			}
			return nil
		})
		if err != nil {
			return out, err
		}
		out.updated += len(batch)
	}

	return out, nil
}
