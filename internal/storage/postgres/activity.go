package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"fitsync/internal/domain"
)

type ActivityStore struct {
	db *sqlx.DB
}

func NewActivityStore(db *sqlx.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) ExistingSourceIDs(ctx context.Context, source string, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	query := `SELECT source_id FROM activities WHERE source = $1 AND source_id = ANY($2)`

	var found []string
	if err := s.db.SelectContext(ctx, &found, query, source, pq.Array(ids)); err != nil {
		return nil, err
	}

	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// CreateBatch inserts new activities in one statement. Rows that collide
// on (source, source_id) are silently skipped, so the returned count can
// be lower than len(activities) when a concurrent sync won the race.
func (s *ActivityStore) CreateBatch(ctx context.Context, activities []domain.Activity) (int, error) {
	if len(activities) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO activities (
			user_id, source, source_id, name, start_date, elapsed_time, moving_time,
			distance, elevation_gain, average_watts, max_watts, normalized_power,
			training_load, average_hr, max_hr, average_cadence, average_speed,
			max_speed, kilojoules, calories
		) VALUES (
			:user_id, :source, :source_id, :name, :start_date, :elapsed_time, :moving_time,
			:distance, :elevation_gain, :average_watts, :max_watts, :normalized_power,
			:training_load, :average_hr, :max_hr, :average_cadence, :average_speed,
			:max_speed, :kilojoules, :calories
		)
		ON CONFLICT (source, source_id) DO NOTHING`

	res, err := s.db.NamedExecContext(ctx, query, activities)
	if err != nil {
		return 0, err
	}

	created, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(created), nil
}

func (s *ActivityStore) UpdateBySourceID(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities SET
			name = :name,
			start_date = :start_date,
			elapsed_time = :elapsed_time,
			moving_time = :moving_time,
			distance = :distance,
			elevation_gain = :elevation_gain,
			average_watts = :average_watts,
			max_watts = :max_watts,
			normalized_power = :normalized_power,
			training_load = :training_load,
			average_hr = :average_hr,
			max_hr = :max_hr,
			average_cadence = :average_cadence,
			average_speed = :average_speed,
			max_speed = :max_speed,
			kilojoules = :kilojoules,
			calories = :calories,
			updated_at = NOW()
		WHERE source = :source AND source_id = :source_id`

	res, err := s.db.NamedExecContext(ctx, query, activity)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("activity %s/%s not found", activity.Source, activity.SourceID)
	}
	return nil
}

func (s *ActivityStore) Upsert(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (
			user_id, source, source_id, name, start_date, elapsed_time, moving_time,
			distance, elevation_gain, average_watts, max_watts, normalized_power,
			training_load, average_hr, max_hr, average_cadence, average_speed,
			max_speed, kilojoules, calories
		) VALUES (
			:user_id, :source, :source_id, :name, :start_date, :elapsed_time, :moving_time,
			:distance, :elevation_gain, :average_watts, :max_watts, :normalized_power,
			:training_load, :average_hr, :max_hr, :average_cadence, :average_speed,
			:max_speed, :kilojoules, :calories
		)
		ON CONFLICT (source, source_id) DO UPDATE SET
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			elapsed_time = EXCLUDED.elapsed_time,
			moving_time = EXCLUDED.moving_time,
			distance = EXCLUDED.distance,
			elevation_gain = EXCLUDED.elevation_gain,
			average_watts = EXCLUDED.average_watts,
			max_watts = EXCLUDED.max_watts,
			normalized_power = EXCLUDED.normalized_power,
			training_load = EXCLUDED.training_load,
			average_hr = EXCLUDED.average_hr,
			max_hr = EXCLUDED.max_hr,
			average_cadence = EXCLUDED.average_cadence,
			average_speed = EXCLUDED.average_speed,
			max_speed = EXCLUDED.max_speed,
			kilojoules = EXCLUDED.kilojoules,
			calories = EXCLUDED.calories,
			updated_at = NOW()`

	_, err := s.db.NamedExecContext(ctx, query, activity)
	return err
}

func (s *ActivityStore) DeleteBySourceID(ctx context.Context, source, sourceID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM activities WHERE source = $1 AND source_id = $2`,
		source, sourceID,
	)
	return err
}

func (s *ActivityStore) LoadsInRange(ctx context.Context, userID string, rng domain.DateRange) ([]domain.DatedLoad, error) {
	query := `
		SELECT start_date, training_load
		FROM activities
		WHERE user_id = $1
		  AND training_load IS NOT NULL
		  AND start_date BETWEEN $2 AND $3
		ORDER BY start_date`

	var loads []domain.DatedLoad
	if err := s.db.SelectContext(ctx, &loads, query, userID, rng.Start, rng.End); err != nil {
		return nil, err
	}
	return loads, nil
}
