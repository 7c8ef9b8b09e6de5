package metrics

import (
	"math"

	"fitsync/internal/domain"
)

// Constants parameterize the daily training-load recurrence.
type Constants struct {
	CTLDays   int // fitness time constant, typically 42
	ATLDays   int // fatigue time constant, typically 7
	Precision int // decimal places kept per day
}

// DefaultConstants returns the conventional 42/7-day constants with one
// decimal of precision.
func DefaultConstants() Constants {
	return Constants{CTLDays: 42, ATLDays: 7, Precision: 1}
}

// Step advances the fitness/fatigue/form state by one calendar day.
// It is a two-pole exponential moving average and must be applied in
// strict date order; the recurrence does not commute across days.
func Step(loadToday float64, prev domain.TrainingState, c Constants) domain.TrainingState {
	ctlDecay := math.Exp(-1 / float64(c.CTLDays))
	atlDecay := math.Exp(-1 / float64(c.ATLDays))

	ctl := prev.CTL*ctlDecay + loadToday*(1-ctlDecay)
	atl := prev.ATL*atlDecay + loadToday*(1-atlDecay)

	return domain.TrainingState{
		CTL: roundTo(ctl, c.Precision),
		ATL: roundTo(atl, c.Precision),
		TSB: roundTo(ctl-atl, c.Precision),
	}
}

// ACWR is the acute-to-chronic workload ratio, rounded to two decimals.
// Undefined (false) while fitness is effectively zero.
func ACWR(atl, ctl float64) (float64, bool) {
	if ctl <= 0.001 {
		return 0, false
	}
	return roundTo(atl/ctl, 2), true
}

func roundTo(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(v*factor) / factor
}
