// Package render turns simulation reports and failure-rate grids into
// human-facing terminal output. Nothing here feeds back into the estimators.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"hunt-timing-lab/internal/failure"
	"hunt-timing-lab/internal/sim"
)

const (
	timeFormat   = "2006-01-02 15:04:05 MST"
	histBarWidth = 40
)

// WriteReport prints the simulation report: scenario echo, distribution
// summary, percentile row and a histogram of completion times.
func WriteReport(w io.Writer, report sim.Report) {
	fmt.Fprintln(w, "Hunt Timing Lab")
	fmt.Fprintln(w, "---------------")
	fmt.Fprintf(w, "Run: %s (seed %d)\n", report.RunID, report.Seed)
	fmt.Fprintf(w, "%-20s: %s\n", "current time", report.CurrentTime.Format(timeFormat))
	fmt.Fprintf(w, "%-20s: %s\n", "next hunt time", report.NextHuntTime.Format(timeFormat))
	fmt.Fprintf(w, "%-20s: %s\n", "trap check time", report.TrapCheckTime.Format(timeFormat))
	fmt.Fprintf(w, "%-20s: %s\n", "trap check offset", report.CheckOffset)
	fmt.Fprintf(w, "Estimating event %d over %d trials\n", report.Events, report.SampleSize)
	fmt.Fprintln(w)

	s := report.Summary
	fmt.Fprintf(w, "Completed trials: %d\n", s.Count)
	fmt.Fprintf(w, "Mean completion: %s\n", s.Mean.Format(timeFormat))
	fmt.Fprintf(w, "Earliest: %s | Latest: %s | Spread: %s\n",
		s.Min.Format(timeFormat), s.Max.Format(timeFormat), s.Spread)
	fmt.Fprintf(w, "Std dev: %.1fs\n", s.StdDevSeconds)
	fmt.Fprintf(w, "Percentiles: p5=%s p25=%s p50=%s p75=%s p95=%s\n",
		clock(s.Percentiles["p5"]),
		clock(s.Percentiles["p25"]),
		clock(s.Percentiles["p50"]),
		clock(s.Percentiles["p75"]),
		clock(s.Percentiles["p95"]),
	)
	fmt.Fprintln(w)

	WriteHistogram(w, report.Histogram)
}

// WriteHistogram prints one bar per bin, scaled to the largest bin.
func WriteHistogram(w io.Writer, bins []sim.Bin) {
	if len(bins) == 0 {
		return
	}

	peak := 0
	for _, bin := range bins {
		if bin.Count > peak {
			peak = bin.Count
		}
	}
	if peak == 0 {
		return
	}

	fmt.Fprintln(w, "Completion time distribution")
	for _, bin := range bins {
		width := bin.Count * histBarWidth / peak
		fmt.Fprintf(w, "%s | %-*s %d\n",
			bin.Start.Format("15:04:05"),
			histBarWidth, strings.Repeat("#", width),
			bin.Count,
		)
	}
}

// WriteFailureGrid plots trials-required against failure rate, one series per
// confidence level, and prints the underlying values.
func WriteFailureGrid(w io.Writer, rates, confidences []float64, points []failure.Point) {
	series := make([][]float64, len(confidences))
	for i := range confidences {
		series[i] = make([]float64, len(rates))
	}
	for idx, p := range points {
		series[idx/len(rates)][idx%len(rates)] = p.Trials
	}

	fmt.Fprintln(w, asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(len(rates)*3),
		asciigraph.Caption("Trials required vs failure rate"),
	))
	fmt.Fprintln(w)
	for i, cl := range confidences {
		cells := make([]string, len(rates))
		for j := range rates {
			cells[j] = fmt.Sprintf("%.1f", series[i][j])
		}
		fmt.Fprintf(w, "confidence %.2f: %s\n", cl, strings.Join(cells, " "))
	}
	fmt.Fprintf(w, "failure rates: %.2f .. %.2f (%d points)\n", rates[0], rates[len(rates)-1], len(rates))
}

func clock(t time.Time) string {
	return t.Format("15:04:05")
}
