package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunt-timing-lab/internal/failure"
	"hunt-timing-lab/internal/sim"
)

func TestWriteReportMentionsScenario(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	report := sim.Report{
		RunID:         "run-abc",
		Seed:          7,
		Events:        3,
		SampleSize:    100,
		CurrentTime:   base,
		NextHuntTime:  base.Add(10 * time.Minute),
		TrapCheckTime: base.Add(15 * time.Minute),
		CheckOffset:   15 * time.Minute,
		Summary: sim.Summary{
			Count: 100,
			Mean:  base.Add(40 * time.Minute),
			Min:   base.Add(30 * time.Minute),
			Max:   base.Add(50 * time.Minute),
			Percentiles: map[string]time.Time{
				"p5": base, "p25": base, "p50": base, "p75": base, "p95": base,
			},
		},
		Histogram: []sim.Bin{
			{Start: base.Add(30 * time.Minute), End: base.Add(40 * time.Minute), Count: 60},
			{Start: base.Add(40 * time.Minute), End: base.Add(50 * time.Minute), Count: 40},
		},
	}

	var buf strings.Builder
	WriteReport(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "run-abc")
	assert.Contains(t, out, "next hunt time")
	assert.Contains(t, out, "trap check time")
	assert.Contains(t, out, "2024-06-01 08:10:00")
	assert.Contains(t, out, "Completion time distribution")
	assert.Contains(t, out, "#")
}

func TestWriteHistogramEmpty(t *testing.T) {
	var buf strings.Builder
	WriteHistogram(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestWriteFailureGrid(t *testing.T) {
	rates := failure.Rates(0.1, 0.9, 20)
	points := failure.Grid(rates, failure.DefaultConfidenceLevels)
	require.Len(t, points, 100)

	var buf strings.Builder
	WriteFailureGrid(&buf, rates, failure.DefaultConfidenceLevels, points)
	out := buf.String()

	assert.Contains(t, out, "Trials required vs failure rate")
	assert.Contains(t, out, "confidence 0.99")
	assert.Contains(t, out, "failure rates: 0.10 .. 0.90 (20 points)")
}
