package domain

import (
	"math"
	"time"
)

// DateRange is an inclusive window of calendar time. A zero End means "now".
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Normalized returns the range with a defaulted End and both bounds
// snapped to whole UTC days: Start back to midnight, End forward to the
// last instant of its day. Store queries and the day-by-day recurrence
// must agree on which calendar days the range covers, so mid-day
// timestamps never leak past this point.
func (r DateRange) Normalized() DateRange {
	start := r.Start.UTC()
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	end := r.End
	if end.IsZero() {
		end = time.Now().UTC()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, time.UTC)

	return DateRange{Start: start, End: end}
}

// SyncSummary aggregates a whole orchestrator run across all targets.
type SyncSummary struct {
	Targets     int
	Succeeded   int
	Failed      int
	Retries     int
	Processed   int // activities fetched or metric days computed
	Created     int
	Updated     int
	Duration    time.Duration
	SuccessRate int // percent, rounded
	DryRun      bool
}

// Finish computes the derived summary fields. An empty target set counts as
// a fully successful run.
func (s *SyncSummary) Finish(started time.Time) {
	s.Duration = time.Since(started)
	if s.Targets == 0 {
		s.SuccessRate = 100
		return
	}
	s.SuccessRate = int(math.Round(float64(s.Succeeded) / float64(s.Targets) * 100))
}
