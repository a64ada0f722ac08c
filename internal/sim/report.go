package sim

import (
	"time"

	"hunt-timing-lab/internal/timeline"
)

// MaxHistogramBins caps the histogram resolution in reports.
const MaxHistogramBins = 50

// Report bundles everything one simulation run produced, ready for text or
// JSON rendering.
type Report struct {
	RunID         string        `json:"run_id"`
	Seed          int64         `json:"seed"`
	Events        int           `json:"events"`
	SampleSize    int           `json:"sample_size"`
	CurrentTime   time.Time     `json:"current_time"`
	NextHuntTime  time.Time     `json:"next_hunt_time"`
	TrapCheckTime time.Time     `json:"trap_check_time"`
	CheckOffset   time.Duration `json:"trap_check_offset_ns"`
	Summary       Summary       `json:"summary"`
	Histogram     []Bin         `json:"histogram"`
}

// BuildReport assembles the report for a finished run. The trap check time
// comes from the same cache the trials used, so it is the value every trial
// saw.
func BuildReport(runID string, seed int64, sc Scenario, cache *timeline.CheckCache, sample Sample) (Report, error) {
	checkTime, err := cache.NextCheckTime(sc.CurrentTime, sc.CheckOffset)
	if err != nil {
		return Report{}, err
	}
	return Report{
		RunID:         runID,
		Seed:          seed,
		Events:        sc.Events,
		SampleSize:    sc.SampleSize,
		CurrentTime:   sc.CurrentTime,
		NextHuntTime:  sc.CurrentTime.Add(sc.CurrentDelay),
		TrapCheckTime: checkTime,
		CheckOffset:   sc.CheckOffset,
		Summary:       Summarize(sample),
		Histogram:     HistogramBins(sample, MaxHistogramBins),
	}, nil
}
