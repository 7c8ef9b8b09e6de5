package metrics

import (
	"math"
	"sort"
	"time"

	"fitsync/internal/domain"
)

// NormalizedPower computes normalized power from a raw power stream.
// Samples are nil where the device dropped out; dropouts count as zero
// watts inside the rolling window. The rolling-mean / fourth-power /
// fourth-root sequence weights hard bursts disproportionately, which is
// the point of the metric. Returns false when the stream is shorter than
// 30 seconds of data.
func NormalizedPower(samples []*float64, sampleRateSeconds int) (float64, bool) {
	if sampleRateSeconds <= 0 {
		sampleRateSeconds = 1
	}

	windowSize := int(math.Round(30 / float64(sampleRateSeconds)))
	if windowSize < 1 {
		windowSize = 1
	}
	// anything shorter than the rounded window has zero windows
	if len(samples) < windowSize {
		return 0, false
	}

	var sumRaised float64
	windows := len(samples) - windowSize + 1
	for i := 0; i < windows; i++ {
		var sum float64
		for j := 0; j < windowSize; j++ {
			if v := samples[i+j]; v != nil {
				sum += *v
			}
		}
		mean := sum / float64(windowSize)
		sumRaised += math.Pow(mean, 4)
	}

	return math.Pow(sumRaised/float64(windows), 0.25), true
}

// IntensityFactor is the ratio of normalized power to FTP.
func IntensityFactor(np, ftp float64) float64 {
	if np <= 0 || ftp <= 0 {
		return 0
	}
	return np / ftp
}

// TrainingStressScore quantifies one session's load relative to FTP.
// One hour exactly at FTP scores 100.
func TrainingStressScore(np float64, durationSeconds int, ftp float64) float64 {
	if np <= 0 || durationSeconds <= 0 || ftp <= 0 {
		return 0
	}
	intensity := IntensityFactor(np, ftp)
	hours := float64(durationSeconds) / 3600
	return intensity * intensity * hours * 100
}

// VariabilityIndex is the ratio of normalized power to average power.
func VariabilityIndex(np, avgPower float64) float64 {
	if np <= 0 || avgPower <= 0 {
		return 0
	}
	return np / avgPower
}

// Calories estimates energy burned from average power and duration,
// assuming 4184 J per kcal and ~24% human efficiency on the bike.
func Calories(durationSeconds int, avgPower *int) int {
	if avgPower == nil || *avgPower == 0 {
		return 0
	}
	work := float64(*avgPower) * float64(durationSeconds)
	return int(math.Floor(work / (4184 * 0.24)))
}

// FTPForDate resolves the FTP value effective on a date from a user's
// history. Returns false when every entry postdates the given date.
func FTPForDate(date time.Time, history []domain.FTPEntry) (int, bool) {
	if len(history) == 0 {
		return 0, false
	}

	sorted := make([]domain.FTPEntry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.After(sorted[j].EffectiveFrom)
	})

	for _, entry := range sorted {
		if !entry.EffectiveFrom.After(date) {
			return entry.FTP, true
		}
	}
	return 0, false
}
