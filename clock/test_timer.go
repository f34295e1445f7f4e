package clock

import (
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// testTimer is a pure value-advancing Timer: given a target time, it
// enumerates all fire events up to it. It performs no I/O and owns no OS
// resources.
type testTimer struct {
	timerCore
	expired bool
}

func newTestTimer(l label.Label, interval time.Duration, start time.Time, stop *time.Time, oneShot bool) *testTimer {
	tt := &testTimer{timerCore: newTimerCore(l, interval, start, stop)}
	tt.oneShot = oneShot
	return tt
}

// Advance produces, in ascending NextTime order, one event per moment where
// NextTime <= to, provided the timer has not expired. After emitting each
// event, NextTime is advanced by Interval. A one-shot timer latches expired
// immediately after its single event; a repeating timer latches expired
// once the advanced NextTime exceeds a configured stop time. Once expired,
// this and all later calls return nil.
func (t *testTimer) Advance(to time.Time) []TimeEvent {
	if t.expired {
		return nil
	}

	var events []TimeEvent
	for !t.nextTime.After(to) {
		events = append(events, newTimeEvent(t.label, t.nextTime))
		t.IterateNext()

		if t.oneShot || t.pastStop(t.nextTime) {
			t.expired = true
			break
		}
	}
	return events
}

// Cancel latches the timer as expired; no further events will be produced.
func (t *testTimer) Cancel() {
	t.expired = true
}
