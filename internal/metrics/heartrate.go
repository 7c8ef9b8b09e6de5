package metrics

import "math"

// TRIMP computes Banister's training impulse from heart-rate data.
// Gender-specific weighting: men 0.64·e^(1.92·r), women 0.86·e^(1.67·r).
func TRIMP(avgHR, restHR, maxHR int, durationMinutes float64, female bool) float64 {
	if avgHR <= 0 || restHR <= 0 || maxHR <= restHR || durationMinutes <= 0 {
		return 0
	}

	ratio := float64(avgHR-restHR) / float64(maxHR-restHR)

	weight, exponent := 0.64, 1.92
	if female {
		weight, exponent = 0.86, 1.67
	}

	return durationMinutes * ratio * weight * math.Exp(exponent*ratio)
}

// HrTSS estimates a training stress score from heart rate when no power
// data is available.
func HrTSS(avgHR, thresholdHR int, durationHours float64) float64 {
	if avgHR <= 0 || thresholdHR <= 0 || durationHours <= 0 {
		return 0
	}

	intensity := float64(avgHR) / float64(thresholdHR)
	return intensity * intensity * durationHours * 100
}
