// Package timeline builds and combines the event timelines that drive the
// hunt-timing estimate: randomly spaced hunt events and hourly-aligned trap
// checks. Everything here is deterministic given the injected random source
// and check-time cache.
package timeline
