// Package config loads the small amount of environment-driven
// configuration the clock subsystem and its host process need.
package config

import (
	"fmt"
	"os"
	"time"
)

// ClockConfig controls how the host process boots its Clock and logger.
type ClockConfig struct {
	// DefaultLogLevel is passed to tradelog.New: "debug", "info", "warn",
	// or "error".
	DefaultLogLevel string

	// TestClockEpoch seeds a TestClock's initial "now" when the process is
	// run in test mode. Zero means unset; cmd/clockdemo then seeds the
	// TestClock at 2020-01-01T00:00:00Z.
	TestClockEpoch time.Time

	// UseTestClock selects TestClock over LiveClock.
	UseTestClock bool
}

// Load reads configuration from the environment:
//
//	CLOCK_LOG_LEVEL  - default log level (default "info")
//	CLOCK_TEST_CLOCK - "1" to boot a TestClock instead of a LiveClock
//	CLOCK_TEST_EPOCH - RFC3339 instant to seed the TestClock (optional)
func Load() (ClockConfig, error) {
	cfg := ClockConfig{
		DefaultLogLevel: "info",
	}

	if level := os.Getenv("CLOCK_LOG_LEVEL"); level != "" {
		cfg.DefaultLogLevel = level
	}

	cfg.UseTestClock = os.Getenv("CLOCK_TEST_CLOCK") == "1"

	if epoch := os.Getenv("CLOCK_TEST_EPOCH"); epoch != "" {
		t, err := time.Parse(time.RFC3339, epoch)
		if err != nil {
			return ClockConfig{}, fmt.Errorf("config: invalid CLOCK_TEST_EPOCH %q: %w", epoch, err)
		}
		cfg.TestClockEpoch = t
	}

	return cfg, nil
}
