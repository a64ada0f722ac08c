// Package sim runs repeated completion-time trials and aggregates them into
// an empirical distribution with summary statistics and histogram bins.
// Rendering lives elsewhere; everything here returns plain values.
package sim
