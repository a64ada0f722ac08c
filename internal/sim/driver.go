package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"hunt-timing-lab/internal/timeline"
)

// DefaultSampleSize is the trial count used when a scenario leaves it unset.
const DefaultSampleSize = 1000

// Scenario holds the inputs for one simulation run.
type Scenario struct {
	Events       int           // which hunt-or-check event to estimate, 1-based
	CurrentTime  time.Time     // wall-clock now
	CurrentDelay time.Duration // time until the already-pending hunt
	CheckOffset  time.Duration // trap check offset past the hour
	SampleSize   int           // independent trials per run
}

// Validate checks scenario bounds before a run.
func (sc Scenario) Validate() error {
	if sc.Events < 1 {
		return errors.New("events must be >= 1")
	}
	if sc.CurrentTime.IsZero() {
		return errors.New("current time is required")
	}
	if sc.CurrentDelay < 0 {
		return errors.New("hunt delay must be >= 0")
	}
	if sc.CheckOffset < 0 || sc.CheckOffset >= time.Hour {
		return errors.New("trap check offset must be in [0, 1h)")
	}
	if sc.SampleSize < 1 {
		return errors.New("sample size must be >= 1")
	}
	return nil
}

// Sample is the empirical completion-time distribution for one run. Times are
// normalized to UTC so trials compare uniformly regardless of the scenario's
// zone.
type Sample struct {
	Times []time.Time
}

// Runner executes simulation runs against a single random source and check
// cache. The cache is shared across trials: every trial asks for the same
// (current time, offset) pair, so only the first one computes it.
type Runner struct {
	logger zerolog.Logger
	rng    *rand.Rand
	cache  *timeline.CheckCache
}

// NewRunner constructs a runner around a seeded random source.
func NewRunner(rng *rand.Rand, logger zerolog.Logger) *Runner {
	return &Runner{
		logger: logger,
		rng:    rng,
		cache:  timeline.NewCheckCache(),
	}
}

// Cache exposes the runner's check-time cache for report building.
func (r *Runner) Cache() *timeline.CheckCache {
	return r.cache
}

// Run executes sc.SampleSize independent trials, each drawing fresh gaps from
// the runner's random source. The first failing trial aborts the whole run.
func (r *Runner) Run(sc Scenario) (Sample, error) {
	if err := sc.Validate(); err != nil {
		return Sample{}, err
	}

	started := time.Now()
	times := make([]time.Time, 0, sc.SampleSize)
	for i := 0; i < sc.SampleSize; i++ {
		t, err := timeline.CompletionTime(r.rng, r.cache, sc.Events, sc.CurrentTime, sc.CurrentDelay, sc.CheckOffset)
		if err != nil {
			return Sample{}, fmt.Errorf("trial %d: %w", i+1, err)
		}
		times = append(times, t.UTC())
	}

	r.logger.Debug().
		Int("trials", sc.SampleSize).
		Int("events", sc.Events).
		Dur("elapsed", time.Since(started)).
		Msg("simulation run complete")
	return Sample{Times: times}, nil
}
