package timeline

import (
	"fmt"
	"time"
)

type checkKey struct {
	current time.Time
	offset  time.Duration
}

// CheckCache memoizes NextCheckTime results keyed by the exact
// (current time, offset) argument pair. Entries are immutable once stored and
// are never evicted, so the cache grows for as long as it is kept. Not safe
// for concurrent use.
type CheckCache struct {
	entries map[checkKey]time.Time
}

// NewCheckCache returns an empty cache.
func NewCheckCache() *CheckCache {
	return &CheckCache{entries: make(map[checkKey]time.Time)}
}

// Len reports how many distinct argument pairs have been resolved.
func (c *CheckCache) Len() int {
	return len(c.entries)
}

// NextCheckTime returns the first trap check time strictly after current.
// Trap checks land on the hour boundary plus offset, so the result is either
// start-of-hour + offset or that plus one hour. The error is a defensive
// invariant check and should be unreachable: the second candidate is always
// at least an hour past the start of the current hour.
func (c *CheckCache) NextCheckTime(current time.Time, offset time.Duration) (time.Time, error) {
	key := checkKey{current: current, offset: offset}
	if cached, ok := c.entries[key]; ok {
		return cached, nil
	}

	hourTime := time.Date(current.Year(), current.Month(), current.Day(), current.Hour(), 0, 0, 0, current.Location()).Add(offset)
	for _, candidate := range []time.Time{hourTime, hourTime.Add(time.Hour)} {
		if candidate.After(current) {
			c.entries[key] = candidate
			return candidate, nil
		}
	}
	return time.Time{}, fmt.Errorf("no trap check time after %s with offset %s", current.Format(time.RFC3339), offset)
}
