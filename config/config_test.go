package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLOCK_LOG_LEVEL", "")
	t.Setenv("CLOCK_TEST_CLOCK", "")
	t.Setenv("CLOCK_TEST_EPOCH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultLogLevel != "info" {
		t.Fatalf("got log level %q, want %q", cfg.DefaultLogLevel, "info")
	}
	if cfg.UseTestClock {
		t.Fatal("expected UseTestClock to default to false")
	}
	if !cfg.TestClockEpoch.IsZero() {
		t.Fatal("expected zero TestClockEpoch by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLOCK_LOG_LEVEL", "debug")
	t.Setenv("CLOCK_TEST_CLOCK", "1")
	t.Setenv("CLOCK_TEST_EPOCH", "2020-01-01T00:00:00Z")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultLogLevel != "debug" {
		t.Fatalf("got log level %q, want %q", cfg.DefaultLogLevel, "debug")
	}
	if !cfg.UseTestClock {
		t.Fatal("expected UseTestClock to be true")
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.TestClockEpoch.Equal(want) {
		t.Fatalf("got epoch %v, want %v", cfg.TestClockEpoch, want)
	}
}

func TestLoadRejectsInvalidEpoch(t *testing.T) {
	t.Setenv("CLOCK_TEST_EPOCH", "not-a-time")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid CLOCK_TEST_EPOCH")
	}
}
