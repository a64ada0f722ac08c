package timeline

import (
	"testing"
	"time"
)

func intLess(a, b int) bool { return a < b }

func TestMergeInterleaves(t *testing.T) {
	got := Merge([]int{1, 4, 9}, []int{2, 3, 10, 11}, intLess)
	want := []int{1, 2, 3, 4, 9, 10, 11}
	if len(got) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestMergeKeepsDuplicates(t *testing.T) {
	got := Merge([]int{1, 2, 2}, []int{2, 2, 3}, intLess)
	if len(got) != 6 {
		t.Fatalf("expected multiset union of length 6, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("result not ascending at %d: %v", i, got)
		}
	}
}

func TestMergeEmptySides(t *testing.T) {
	if got := Merge(nil, []int{1, 2}, intLess); len(got) != 2 {
		t.Fatalf("expected ys copied through, got %v", got)
	}
	if got := Merge([]int{1, 2}, nil, intLess); len(got) != 2 {
		t.Fatalf("expected xs copied through, got %v", got)
	}
	if got := Merge[int](nil, nil, intLess); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

type taggedValue struct {
	key int
	src string
}

func TestMergeTieBreakFavorsSecond(t *testing.T) {
	less := func(a, b taggedValue) bool { return a.key < b.key }
	got := Merge([]taggedValue{{5, "xs"}}, []taggedValue{{5, "ys"}}, less)
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %v", got)
	}
	if got[0].src != "ys" || got[1].src != "xs" {
		t.Fatalf("expected ys element first on tie, got %v", got)
	}
}

func TestMergeTimes(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	xs := []time.Time{base, base.Add(30 * time.Minute)}
	ys := []time.Time{base.Add(15 * time.Minute), base.Add(45 * time.Minute)}
	got := MergeTimes(xs, ys)
	for i := 1; i < len(got); i++ {
		if got[i].Before(got[i-1]) {
			t.Fatalf("result not ascending: %v", got)
		}
	}
	if !got[1].Equal(base.Add(15 * time.Minute)) {
		t.Fatalf("expected 10:15 second, got %s", got[1])
	}
}
