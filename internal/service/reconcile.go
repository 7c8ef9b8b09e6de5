package service

import (
	"context"
	"fmt"
	"log/slog"

	"fitsync/internal/domain"
)

// Reconciler splits fetched activities against what the store already
// holds and applies the difference. Creates go through a single bulk
// insert that skips rows another writer got to first; updates are keyed
// by (source, source_id) so a re-fetched activity overwrites its
// earlier snapshot.
type Reconciler struct {
	activities ActivityStore
	logger     *slog.Logger
}

func NewReconciler(activities ActivityStore, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		activities: activities,
		logger:     logger,
	}
}

// Partition divides activities into those absent from existing (to be
// created) and those already present (to be updated). Input order is
// preserved within each group.
func (r *Reconciler) Partition(activities []domain.Activity, existing map[string]struct{}) (creates, updates []domain.Activity) {
	for _, activity := range activities {
		if _, ok := existing[activity.SourceID]; ok {
			updates = append(updates, activity)
		} else {
			creates = append(creates, activity)
		}
	}
	return creates, updates
}

// Apply writes both groups and reports how many rows actually landed.
// The created count comes from the store, which may be lower than
// len(creates) when a concurrent sync inserted the same activities.
func (r *Reconciler) Apply(ctx context.Context, creates, updates []domain.Activity) (created, updated int, err error) {
	if len(creates) > 0 {
		created, err = r.activities.CreateBatch(ctx, creates)
		if err != nil {
			return 0, 0, fmt.Errorf("create activities: %w", err)
		}
		if created < len(creates) {
			r.logger.Debug("skipped duplicate activities on insert",
				"requested", len(creates),
				"created", created)
		}
	}

	for i := range updates {
		if err := r.activities.UpdateBySourceID(ctx, &updates[i]); err != nil {
			return created, updated, fmt.Errorf("update activity %s: %w", updates[i].SourceID, err)
		}
		updated++
	}

	return created, updated, nil
}
