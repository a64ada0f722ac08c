package timeline

import (
	"math/rand"
	"time"
)

// Hunt gaps are uniform over [MinHuntGapSeconds, MaxHuntGapSeconds) seconds.
const (
	MinHuntGapSeconds = 920
	MaxHuntGapSeconds = 1140
)

// Horizon returns n+1 strictly ascending hunt event times: the already-pending
// hunt at current+delay, followed by n further hunts each separated by a fresh
// uniform gap. Every gap is strictly positive, so the output always satisfies
// the sorted precondition of Merge.
func Horizon(rng *rand.Rand, n int, current time.Time, delay time.Duration) []time.Time {
	times := make([]time.Time, 0, n+1)
	first := current.Add(delay)
	times = append(times, first)

	elapsed := 0
	for k := 0; k < n; k++ {
		elapsed += MinHuntGapSeconds + rng.Intn(MaxHuntGapSeconds-MinHuntGapSeconds)
		times = append(times, first.Add(time.Duration(elapsed)*time.Second))
	}
	return times
}
