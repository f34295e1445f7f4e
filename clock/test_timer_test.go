package clock

import (
	"testing"
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

var t0 = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTestTimerOneShot(t *testing.T) {
	alert := t0.Add(5 * time.Second)
	timer := newTestTimer(label.MustNew("a"), alert.Sub(t0), t0, nil, true)

	events := timer.Advance(t0.Add(10 * time.Second))
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !events[0].Timestamp.Equal(alert) {
		t.Fatalf("got timestamp %v, want %v", events[0].Timestamp, alert)
	}
	if !timer.expired {
		t.Fatal("expected one-shot timer to be expired after firing")
	}

	if more := timer.Advance(t0.Add(time.Hour)); more != nil {
		t.Fatalf("expected no further events from an expired timer, got %v", more)
	}
}

func TestTestTimerRepeatingWithStop(t *testing.T) {
	stop := t0.Add(3 * time.Second)
	timer := newTestTimer(label.MustNew("r"), time.Second, t0, &stop, false)

	events := timer.Advance(t0.Add(10 * time.Second))
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	want := []time.Time{t0.Add(time.Second), t0.Add(2 * time.Second), t0.Add(3 * time.Second)}
	for i, ev := range events {
		if !ev.Timestamp.Equal(want[i]) {
			t.Errorf("event %d: got %v, want %v", i, ev.Timestamp, want[i])
		}
	}
	if !timer.expired {
		t.Fatal("expected timer to expire once next_time exceeds stop_time")
	}
}

func TestTestTimerNoEventsBeforeFirstFire(t *testing.T) {
	timer := newTestTimer(label.MustNew("a"), 10*time.Second, t0, nil, false)
	if events := timer.Advance(t0.Add(5 * time.Second)); events != nil {
		t.Fatalf("expected nil, got %v", events)
	}
}

func TestTestTimerIdempotentReplay(t *testing.T) {
	stop := t0.Add(5 * time.Second)
	timer := newTestTimer(label.MustNew("r"), time.Second, t0, &stop, false)

	to := t0.Add(2 * time.Second)
	first := timer.Advance(to)
	if len(first) != 2 {
		t.Fatalf("got %d events, want 2", len(first))
	}

	second := timer.Advance(to)
	if second != nil {
		t.Fatalf("expected no events on repeat call with same `to`, got %v", second)
	}
}

func TestTestTimerCancelStopsFutureAdvances(t *testing.T) {
	timer := newTestTimer(label.MustNew("a"), time.Second, t0, nil, false)
	timer.Cancel()

	if events := timer.Advance(t0.Add(time.Hour)); events != nil {
		t.Fatalf("expected no events after cancel, got %v", events)
	}
}

// TestTestTimerConcatenationEquivalence checks that advancing in several
// small steps yields the same events, in the same order, as a single
// advance to the final time.
func TestTestTimerConcatenationEquivalence(t *testing.T) {
	stop := t0.Add(10 * time.Second)

	stepwise := newTestTimer(label.MustNew("r"), time.Second, t0, &stop, false)
	var stepwiseEvents []TimeEvent
	for _, to := range []time.Time{
		t0.Add(2 * time.Second),
		t0.Add(4 * time.Second),
		t0.Add(9 * time.Second),
		t0.Add(20 * time.Second),
	} {
		stepwiseEvents = append(stepwiseEvents, stepwise.Advance(to)...)
	}

	oneShot := newTestTimer(label.MustNew("r"), time.Second, t0, &stop, false)
	singleEvents := oneShot.Advance(t0.Add(20 * time.Second))

	if len(stepwiseEvents) != len(singleEvents) {
		t.Fatalf("got %d stepwise events, %d single-call events", len(stepwiseEvents), len(singleEvents))
	}
	for i := range stepwiseEvents {
		if !stepwiseEvents[i].Timestamp.Equal(singleEvents[i].Timestamp) {
			t.Errorf("event %d: got %v, want %v", i, stepwiseEvents[i].Timestamp, singleEvents[i].Timestamp)
		}
	}
}
