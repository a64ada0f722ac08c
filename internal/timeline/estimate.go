package timeline

import (
	"fmt"
	"math/rand"
	"time"
)

// NthEventTime merges a pre-generated ascending hunt sequence with the hourly
// trap check times that fall strictly before its final element, and returns
// the n-th earliest event overall. n counts both hunts and checks.
func NthEventTime(cache *CheckCache, hunts []time.Time, n int, current time.Time, offset time.Duration) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("event count must be >= 1, got %d", n)
	}
	if len(hunts) < n {
		return time.Time{}, fmt.Errorf("hunt sequence has %d events, need at least %d", len(hunts), n)
	}

	finalTime := hunts[len(hunts)-1]
	check, err := cache.NextCheckTime(current, offset)
	if err != nil {
		return time.Time{}, err
	}

	var checks []time.Time
	for check.Before(finalTime) {
		checks = append(checks, check)
		check = check.Add(time.Hour)
	}

	return MergeTimes(hunts, checks)[n-1], nil
}

// CompletionTime estimates when the n-th hunt-or-check event lands for a
// single trial, drawing fresh hunt gaps from rng.
func CompletionTime(rng *rand.Rand, cache *CheckCache, n int, current time.Time, delay, offset time.Duration) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("event count must be >= 1, got %d", n)
	}
	return NthEventTime(cache, Horizon(rng, n, current, delay), n, current, offset)
}
