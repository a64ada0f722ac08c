package timeline

import (
	"math/rand"
	"testing"
	"time"
)

func TestHorizonLengthAndFirstEvent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	current := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	delay := 10 * time.Minute

	times := Horizon(rng, 5, current, delay)
	if len(times) != 6 {
		t.Fatalf("expected n+1 = 6 events, got %d", len(times))
	}
	if !times[0].Equal(current.Add(delay)) {
		t.Fatalf("expected first event at current+delay, got %s", times[0])
	}
}

func TestHorizonGapsInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	current := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	times := Horizon(rng, 200, current, time.Minute)
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			t.Fatalf("sequence not strictly ascending at %d", i)
		}
		gap := int(times[i].Sub(times[i-1]) / time.Second)
		if gap < MinHuntGapSeconds || gap >= MaxHuntGapSeconds {
			t.Fatalf("gap %d at position %d outside [%d, %d)", gap, i, MinHuntGapSeconds, MaxHuntGapSeconds)
		}
	}
}

func TestHorizonSeedDeterminism(t *testing.T) {
	current := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	a := Horizon(rand.New(rand.NewSource(7)), 20, current, time.Minute)
	b := Horizon(rand.New(rand.NewSource(7)), 20, current, time.Minute)
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
	}
}
