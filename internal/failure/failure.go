// Package failure computes how many independent attempts are needed before a
// repeated-failure streak becomes unlikely at a given confidence level:
// the smallest t with failureRate^t <= 1-confidence.
package failure

import "math"

// DefaultConfidenceLevels are the confidence series plotted by the CLI.
var DefaultConfidenceLevels = []float64{0.7, 0.8, 0.9, 0.95, 0.99}

// Point is one cell of the failure-rate grid.
type Point struct {
	FailureRate float64 `json:"failure_rate"`
	Confidence  float64 `json:"confidence_level"`
	Trials      float64 `json:"trials_required"`
}

// Rates returns num evenly spaced failure rates from start to stop, both
// endpoints included.
func Rates(start, stop float64, num int) []float64 {
	if num < 1 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(num-1)
	rates := make([]float64, num)
	for i := range rates {
		rates[i] = start + float64(i)*step
	}
	rates[num-1] = stop
	return rates
}

// TrialsRequired returns the trial count t solving
// failureRate^t = 1-confidence, i.e. log(1-confidence)/log(failureRate).
// Both arguments must lie strictly between 0 and 1.
func TrialsRequired(failureRate, confidence float64) float64 {
	return math.Log(1-confidence) / math.Log(failureRate)
}

// Grid evaluates TrialsRequired over every rate/confidence combination,
// confidence-major so each confidence level's series is contiguous.
func Grid(rates, confidences []float64) []Point {
	points := make([]Point, 0, len(rates)*len(confidences))
	for _, cl := range confidences {
		for _, fr := range rates {
			points = append(points, Point{
				FailureRate: fr,
				Confidence:  cl,
				Trials:      TrialsRequired(fr, cl),
			})
		}
	}
	return points
}
