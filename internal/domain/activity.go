package domain

import "time"

// Activity is a single recorded ride pulled from an external provider.
// The (Source, SourceID) pair is the reconciliation key; everything else
// is overwritten on update.
type Activity struct {
	ID              int64      `db:"id"`
	UserID          string     `db:"user_id"`
	Source          string     `db:"source"` // provider identifier (e.g., "strava")
	SourceID        string     `db:"source_id"`
	Name            string     `db:"name"`
	StartDate       time.Time  `db:"start_date"`
	ElapsedTime     int        `db:"elapsed_time"` // seconds
	MovingTime      int        `db:"moving_time"`  // seconds
	Distance        *float64   `db:"distance"`
	ElevationGain   *float64   `db:"elevation_gain"`
	AverageWatts    *int       `db:"average_watts"`
	MaxWatts        *int       `db:"max_watts"`
	NormalizedPower *int       `db:"normalized_power"`
	TrainingLoad    *int       `db:"training_load"`
	AverageHR       *int       `db:"average_hr"`
	MaxHR           *int       `db:"max_hr"`
	AverageCadence  *float64   `db:"average_cadence"`
	AverageSpeed    *float64   `db:"average_speed"`
	MaxSpeed        *float64   `db:"max_speed"`
	Kilojoules      *float64   `db:"kilojoules"`
	Calories        *int       `db:"calories"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// FTPEntry is one step of a user's functional threshold power history.
// The value effective for a date is the entry with the latest
// EffectiveFrom that is not after that date.
type FTPEntry struct {
	ID            int64     `db:"id"`
	UserID        string    `db:"user_id"`
	FTP           int       `db:"ftp"`
	EffectiveFrom time.Time `db:"effective_from"`
}

// ServiceConnection links a user to an external provider account. The sync
// core only uses it as a token capability; the OAuth browser flow lives
// elsewhere.
type ServiceConnection struct {
	ID                int64     `db:"id"`
	UserID            string    `db:"user_id"`
	Provider          string    `db:"provider"`
	ProviderAccountID string    `db:"provider_account_id"`
	AccessToken       string    `db:"access_token"`
	RefreshToken      string    `db:"refresh_token"`
	ExpiresAt         time.Time `db:"expires_at"`
}

// ActivityStreams holds the per-sample channels fetched for one activity.
// Samples are nil where the recording device dropped out.
type ActivityStreams struct {
	Watts     []*float64
	Heartrate []*float64
}

// StreamReport is the outcome of a batched stream fetch. A nil entry in
// Streams means the provider has no stream for that activity, which is
// legitimate (deleted or trainer-recorded rides).
type StreamReport struct {
	Success   int
	Failed    int
	FailedIDs []string
	Streams   map[string]*ActivityStreams
}
