package metrics

import (
	"time"

	"fitsync/internal/domain"
)

// DayState is one computed day of the continuous series.
type DayState struct {
	Date  time.Time
	State domain.TrainingState
}

const dayKeyFormat = "2006-01-02"

// DayKey normalizes a timestamp to its UTC calendar-day key.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyFormat)
}

// BuildContinuous fills the inclusive date range with one recurrence step
// per calendar day, in ascending order. Loads falling on the same day are
// summed; days without load advance the recurrence with zero. The seed is
// the state of the day before the range starts.
func BuildContinuous(loads []domain.DatedLoad, rng domain.DateRange, seed domain.TrainingState, c Constants) []DayState {
	rng = rng.Normalized()

	dailyLoad := make(map[string]float64, len(loads))
	for _, l := range loads {
		dailyLoad[DayKey(l.Date)] += l.Load
	}

	start := dayStart(rng.Start)
	end := dayStart(rng.End)

	var series []DayState
	state := seed
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		state = Step(dailyLoad[DayKey(day)], state, c)
		series = append(series, DayState{Date: day, State: state})
	}

	return series
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
