package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fitsync/internal/domain"
)

type MetricsStore struct {
	db *sqlx.DB
}

func NewMetricsStore(db *sqlx.DB) *MetricsStore {
	return &MetricsStore{db: db}
}

// LatestBefore returns the most recent metrics row strictly before the
// given date, or nil when the user has none. It seeds the daily
// recurrence at the start of a sync window.
func (s *MetricsStore) LatestBefore(ctx context.Context, userID string, date time.Time) (*domain.DailyMetrics, error) {
	query := `
		SELECT * FROM daily_metrics
		WHERE user_id = $1 AND date < $2
		ORDER BY date DESC
		LIMIT 1`

	var m domain.DailyMetrics
	err := s.db.GetContext(ctx, &m, query, userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MetricsStore) DatesInRange(ctx context.Context, userID string, rng domain.DateRange) (map[string]struct{}, error) {
	query := `
		SELECT date FROM daily_metrics
		WHERE user_id = $1 AND date BETWEEN $2 AND $3`

	var dates []time.Time
	if err := s.db.SelectContext(ctx, &dates, query, userID, rng.Start, rng.End); err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		existing[d.UTC().Format("2006-01-02")] = struct{}{}
	}
	return existing, nil
}

func (s *MetricsStore) CreateBatch(ctx context.Context, metrics []domain.DailyMetrics) (int, error) {
	if len(metrics) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO daily_metrics (user_id, date, fitness, fatigue, form, acwr)
		VALUES (:user_id, :date, :fitness, :fatigue, :form, :acwr)
		ON CONFLICT (user_id, date) DO NOTHING`

	res, err := s.db.NamedExecContext(ctx, query, metrics)
	if err != nil {
		return 0, err
	}

	created, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(created), nil
}

// Update rewrites one day's metrics. It joins an open transaction when
// the context carries one, so a batch of updates commits atomically.
func (s *MetricsStore) Update(ctx context.Context, metric *domain.DailyMetrics) error {
	query := `
		UPDATE daily_metrics SET
			fitness = :fitness,
			fatigue = :fatigue,
			form = :form,
			acwr = :acwr,
			updated_at = NOW()
		WHERE user_id = :user_id AND date = :date`

	res, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, metric)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("daily metrics for user %s on %s not found",
			metric.UserID, metric.Date.UTC().Format("2006-01-02"))
	}
	return nil
}

func (s *MetricsStore) UsersWithTrainingHistory(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT user_id FROM activities
		WHERE training_load IS NOT NULL
		ORDER BY user_id`

	var users []string
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}
