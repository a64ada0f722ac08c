package sim

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Summary describes a completion-time distribution.
type Summary struct {
	Count         int                  `json:"count"`
	Mean          time.Time            `json:"mean"`
	Min           time.Time            `json:"min"`
	Max           time.Time            `json:"max"`
	Spread        time.Duration        `json:"spread_ns"`
	StdDevSeconds float64              `json:"std_dev_seconds"`
	Percentiles   map[string]time.Time `json:"percentiles"`
}

var summaryPercentiles = []int{5, 25, 50, 75, 95}

// Summarize computes count, mean, min, max, spread, standard deviation and
// the p5/p25/p50/p75/p95 percentiles of the sample. Percentiles interpolate
// linearly between neighbors and round to whole seconds.
func Summarize(s Sample) Summary {
	if len(s.Times) == 0 {
		return Summary{Percentiles: map[string]time.Time{}}
	}

	sorted := append([]time.Time{}, s.Times...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	secs := make([]float64, len(sorted))
	sum := 0.0
	for i, t := range sorted {
		secs[i] = float64(t.Unix()) + float64(t.Nanosecond())/1e9
		sum += secs[i]
	}
	mean := sum / float64(len(secs))

	varianceSum := 0.0
	for _, v := range secs {
		diff := v - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(secs)))

	percentiles := make(map[string]time.Time, len(summaryPercentiles))
	for _, p := range summaryPercentiles {
		percentiles[fmt.Sprintf("p%d", p)] = secondsToTime(percentileValue(secs, p))
	}

	return Summary{
		Count:         len(sorted),
		Mean:          secondsToTime(mean),
		Min:           sorted[0],
		Max:           sorted[len(sorted)-1],
		Spread:        sorted[len(sorted)-1].Sub(sorted[0]),
		StdDevSeconds: stdDev,
		Percentiles:   percentiles,
	}
}

func percentileValue(sorted []float64, p int) float64 {
	pos := float64(p) / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func secondsToTime(v float64) time.Time {
	return time.Unix(int64(math.Round(v)), 0).UTC()
}
