package domain

import "time"

// TrainingState is one day of the exponentially weighted training-load
// recurrence. TSB is derived (CTL - ATL) but kept for convenience.
type TrainingState struct {
	CTL float64 // fitness, long time constant
	ATL float64 // fatigue, short time constant
	TSB float64 // form
}

// DatedLoad is a training load attributed to a calendar day. Loads for the
// same day are summed before the daily recurrence is advanced.
type DatedLoad struct {
	Date time.Time `db:"start_date"`
	Load float64   `db:"training_load"`
}

// DailyMetrics is one row of the per-user daily training-load series.
// Date is a UTC calendar day; a synchronized window contains exactly one
// row per day, rest days included.
type DailyMetrics struct {
	ID        int64      `db:"id"`
	UserID    string     `db:"user_id"`
	Date      time.Time  `db:"date"`
	Fitness   float64    `db:"fitness"`
	Fatigue   float64    `db:"fatigue"`
	Form      float64    `db:"form"`
	ACWR      *float64   `db:"acwr"` // nil while fitness is effectively zero
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}
