package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"fitsync/internal/config"
	"fitsync/internal/domain"
	"fitsync/internal/metrics"
	"fitsync/internal/worker"
)

// ActivitySyncer pulls activities from a provider for every connected
// user, derives the power metrics the provider does not supply, and
// reconciles the result into the store. Per-user failures are retried
// and counted; one bad user never fails the run.
type ActivitySyncer struct {
	source      Source
	activities  ActivityStore
	ftps        FTPStore
	connections ConnectionStore
	publisher   Publisher
	reconciler  *Reconciler
	logger      *slog.Logger
	cfg         config.SyncConfig
	retry       RetryPolicy
}

func NewActivitySyncer(
	source Source,
	activities ActivityStore,
	ftps FTPStore,
	connections ConnectionStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *ActivitySyncer {
	return &ActivitySyncer{
		source:      source,
		activities:  activities,
		ftps:        ftps,
		connections: connections,
		publisher:   publisher,
		reconciler:  NewReconciler(activities, logger),
		logger:      logger,
		cfg:         cfg,
		retry:       NewRetryPolicy(cfg.RetryAttempts, cfg.RetryDelay),
	}
}

type userOutcome struct {
	processed int
	created   int
	updated   int
	retries   int
}

// SyncAll synchronizes the date range for every user connected to the
// source's provider. With dryRun set, everything up to the write is
// executed and the summary reports what would have changed.
func (s *ActivitySyncer) SyncAll(ctx context.Context, rng domain.DateRange, dryRun bool) (*domain.SyncSummary, error) {
	started := time.Now()
	rng = rng.Normalized()

	s.logger.Info("starting activity sync",
		"provider", s.source.Provider(),
		"start", rng.Start.Format(time.RFC3339),
		"end", rng.End.Format(time.RFC3339),
		"dry_run", dryRun)

	conns, err := s.connections.FindByProvider(ctx, s.source.Provider())
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	summary := &domain.SyncSummary{Targets: len(conns), DryRun: dryRun}
	if len(conns) == 0 {
		summary.Finish(started)
		s.logger.Info("no connected users, nothing to sync", "provider", s.source.Provider())
		return summary, nil
	}

	results := worker.Map(ctx, int64(s.cfg.Concurrency), conns, func(ctx context.Context, conn domain.ServiceConnection) (userOutcome, error) {
		var out userOutcome
		retries, err := s.retry.Do(ctx, func(ctx context.Context) error {
			var opErr error
			out, opErr = s.syncUser(ctx, conn.UserID, rng, dryRun)
			return opErr
		})
		out.retries = retries
		if err != nil {
			s.logger.Error("user activity sync failed",
				"user_id", conn.UserID,
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

	summary.Finish(started)
	s.logger.Info("activity sync completed",
		"provider", s.source.Provider(),
		"targets", summary.Targets,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"retries", summary.Retries,
		"processed", summary.Processed,
		"created", summary.Created,
		"updated", summary.Updated,
		"success_rate", summary.SuccessRate,
		"duration", summary.Duration)

	return summary, nil
}

func (s *ActivitySyncer) syncUser(ctx context.Context, userID string, rng domain.DateRange, dryRun bool) (userOutcome, error) {
	activities, err := s.source.ListActivities(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return userOutcome{}, fmt.Errorf("list activities: %w", err)
	}
	if len(activities) == 0 {
		return userOutcome{}, nil
	}

	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.SourceID
	}

	existing, err := s.activities.ExistingSourceIDs(ctx, s.source.Provider(), ids)
	if err != nil {
		return userOutcome{}, fmt.Errorf("look up existing activities: %w", err)
	}

	history, err := s.ftps.History(ctx, userID)
	if err != nil {
		return userOutcome{}, fmt.Errorf("load FTP history: %w", err)
	}

	report, err := s.source.FetchStreams(ctx, userID, ids)
	if err != nil {
		return userOutcome{}, fmt.Errorf("fetch streams: %w", err)
	}
	if report.Failed > 0 {
		s.logger.Warn("some streams could not be fetched",
			"user_id", userID,
			"failed", report.Failed,
			"failed_ids", report.FailedIDs)
	}

	for i := range activities {
		s.enrich(&activities[i], report.Streams[activities[i].SourceID], history)
	}

	creates, updates := s.reconciler.Partition(activities, existing)

	out := userOutcome{processed: len(activities)}
	if dryRun {
		out.created = len(creates)
		out.updated = len(updates)
		return out, nil
	}

	created, updated, err := s.reconciler.Apply(ctx, creates, updates)
	out.created = created
	out.updated = updated
	if err != nil {
		return out, err
	}

	s.publish(ctx, creates, "created")
	s.publish(ctx, updates, "updated")

	return out, nil
}

// SyncActivity fetches one activity by its provider id and upserts it.
// Used by the webhook path, where the provider tells us exactly what
// changed.
func (s *ActivitySyncer) SyncActivity(ctx context.Context, userID, sourceID string) (*domain.Activity, error) {
	activity, err := s.source.GetActivity(ctx, userID, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get activity %s: %w", sourceID, err)
	}
	if activity == nil {
		return nil, nil
	}

	history, err := s.ftps.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load FTP history: %w", err)
	}

	report, err := s.source.FetchStreams(ctx, userID, []string{sourceID})
	if err != nil {
		return nil, fmt.Errorf("fetch streams: %w", err)
	}

	s.enrich(activity, report.Streams[sourceID], history)

	if err := s.activities.Upsert(ctx, activity); err != nil {
		return nil, fmt.Errorf("upsert activity %s: %w", sourceID, err)
	}

	s.publish(ctx, []domain.Activity{*activity}, "updated")

	return activity, nil
}

// enrich derives normalized power, training load and calories where the
// inputs allow. Missing streams or FTP history degrade gracefully; the
// activity is still stored.
func (s *ActivitySyncer) enrich(activity *domain.Activity, streams *domain.ActivityStreams, history []domain.FTPEntry) {
	if streams != nil && len(streams.Watts) > 0 {
		if np, ok := metrics.NormalizedPower(streams.Watts, 1); ok {
			rounded := int(math.Round(np))
			activity.NormalizedPower = &rounded

			if ftp, ok := metrics.FTPForDate(activity.StartDate, history); ok {
				load := int(math.Round(metrics.TrainingStressScore(np, activity.MovingTime, float64(ftp))))
				activity.TrainingLoad = &load
			} else {
				s.logger.Warn("no FTP effective for activity date",
					"user_id", activity.UserID,
					"source_id", activity.SourceID,
					"date", activity.StartDate.Format(time.RFC3339))
			}
		}
	}

	if activity.MovingTime > 0 && activity.AverageWatts != nil {
		cal := metrics.Calories(activity.MovingTime, activity.AverageWatts)
		activity.Calories = &cal
	}
}

func (s *ActivitySyncer) publish(ctx context.Context, activities []domain.Activity, action string) {
	if s.publisher == nil {
		return
	}
	for i := range activities {
		if err := s.publisher.Publish(ctx, &activities[i], action); err != nil {
			s.logger.Warn("failed to publish activity event",
				"source_id", activities[i].SourceID,
				"action", action,
				"error", err)
		}
	}
}
