// Package config loads and validates the YAML scenario file consumed by the
// CLI. All knobs have flag equivalents; the file is just a convenient way to
// keep a scenario around.
package config

import (
	"errors"
	"fmt"
	"time"

	"hunt-timing-lab/internal/sim"
)

// Config is the on-disk scenario description. Durations are plain integers
// (seconds and minutes) so the file stays readable.
type Config struct {
	Events                 int    `yaml:"events"`
	CurrentTime            string `yaml:"current_time"` // RFC 3339; empty means now
	HuntDelaySeconds       int    `yaml:"hunt_delay_seconds"`
	TrapCheckOffsetMinutes int    `yaml:"trap_check_offset_minutes"`
	SampleSize             int    `yaml:"sample_size"`
}

// Sample is a ready-to-edit scenario file.
const Sample = `# hunt-timing-lab scenario
events: 10
current_time: ""        # RFC 3339, e.g. 2024-06-01T08:00:00Z; empty means now
hunt_delay_seconds: 600
trap_check_offset_minutes: 15
sample_size: 1000
`

// ApplyDefaults fills unset fields with the standard scenario values.
func (c *Config) ApplyDefaults() {
	if c.Events == 0 {
		c.Events = 10
	}
	if c.SampleSize == 0 {
		c.SampleSize = sim.DefaultSampleSize
	}
}

// Validate checks field bounds. Time parsing is deferred to Scenario.
func (c *Config) Validate() error {
	if c.Events < 1 {
		return errors.New("events must be >= 1")
	}
	if c.HuntDelaySeconds < 0 {
		return errors.New("hunt_delay_seconds must be >= 0")
	}
	if c.TrapCheckOffsetMinutes < 0 || c.TrapCheckOffsetMinutes >= 60 {
		return errors.New("trap_check_offset_minutes must be in [0, 60)")
	}
	if c.SampleSize < 1 {
		return errors.New("sample_size must be >= 1")
	}
	if c.CurrentTime != "" {
		if _, err := time.Parse(time.RFC3339, c.CurrentTime); err != nil {
			return fmt.Errorf("current_time must be RFC 3339: %w", err)
		}
	}
	return nil
}

// Scenario converts the config into simulation inputs. An empty current_time
// resolves to now, truncated to whole seconds.
func (c *Config) Scenario() (sim.Scenario, error) {
	current := time.Now().Truncate(time.Second)
	if c.CurrentTime != "" {
		parsed, err := time.Parse(time.RFC3339, c.CurrentTime)
		if err != nil {
			return sim.Scenario{}, fmt.Errorf("parse current_time: %w", err)
		}
		current = parsed
	}
	return sim.Scenario{
		Events:       c.Events,
		CurrentTime:  current,
		CurrentDelay: time.Duration(c.HuntDelaySeconds) * time.Second,
		CheckOffset:  time.Duration(c.TrapCheckOffsetMinutes) * time.Minute,
		SampleSize:   c.SampleSize,
	}, nil
}
