package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBinsCoverSample(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s := sampleOfSeconds(base, 0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)

	bins := HistogramBins(s, 5)
	require.Len(t, bins, 5)

	total := 0
	for i, bin := range bins {
		total += bin.Count
		if i > 0 {
			assert.True(t, bin.Start.Equal(bins[i-1].End), "bins must be contiguous")
		}
	}
	assert.Equal(t, len(s.Times), total, "every sample lands in exactly one bin")
	assert.True(t, bins[0].Start.Equal(base))
	assert.True(t, bins[len(bins)-1].End.Equal(base.Add(100*time.Second)))
}

func TestHistogramBinsRespectCap(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s := sampleOfSeconds(base, 0, 1, 2)

	bins := HistogramBins(s, 50)
	assert.LessOrEqual(t, len(bins), 3, "never more bins than samples")
}

func TestHistogramBinsNoSpread(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s := sampleOfSeconds(base, 7, 7, 7, 7)

	bins := HistogramBins(s, 50)
	require.Len(t, bins, 1)
	assert.Equal(t, 4, bins[0].Count)
}

func TestHistogramBinsEmpty(t *testing.T) {
	assert.Nil(t, HistogramBins(Sample{}, 50))
}
