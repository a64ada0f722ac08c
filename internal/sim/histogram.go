package sim

import "time"

// Bin is one histogram bucket: [Start, End) except the last, which includes
// its upper edge.
type Bin struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Count int       `json:"count"`
}

// HistogramBins partitions the sample into at most maxBins equal-width bins
// spanning [min, max]. A sample with no spread collapses to a single bin.
func HistogramBins(s Sample, maxBins int) []Bin {
	if len(s.Times) == 0 || maxBins < 1 {
		return nil
	}

	minT, maxT := s.Times[0], s.Times[0]
	for _, t := range s.Times[1:] {
		if t.Before(minT) {
			minT = t
		}
		if t.After(maxT) {
			maxT = t
		}
	}

	spread := maxT.Sub(minT)
	if spread == 0 {
		return []Bin{{Start: minT, End: maxT, Count: len(s.Times)}}
	}

	binCount := maxBins
	if len(s.Times) < binCount {
		binCount = len(s.Times)
	}
	width := spread / time.Duration(binCount)
	if width == 0 {
		width = time.Nanosecond
	}

	bins := make([]Bin, binCount)
	for i := range bins {
		bins[i].Start = minT.Add(time.Duration(i) * width)
		bins[i].End = minT.Add(time.Duration(i+1) * width)
	}
	bins[binCount-1].End = maxT

	for _, t := range s.Times {
		idx := int(t.Sub(minT) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
	}
	return bins
}
