package clock

import (
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// Timer is the base contract shared by TestTimer and LiveTimer: it holds
// label, interval, start/stop bookkeeping, and computes successor fire
// times. Cancel is specialized per variant.
type Timer interface {
	Label() label.Label
	Interval() time.Duration
	StartTime() time.Time
	NextTime() time.Time
	StopTime() (time.Time, bool)

	// IterateNext sets NextTime to NextTime + Interval. Must not be called
	// on an expired timer.
	IterateNext()

	// Cancel permanently disables further fires.
	Cancel()
}

// timerCore holds the attributes and bookkeeping shared by every Timer
// variant. It is embedded, never used directly as a Timer.
type timerCore struct {
	label     label.Label
	interval  time.Duration
	startTime time.Time
	nextTime  time.Time
	stopTime  time.Time
	hasStop   bool

	// oneShot marks an alert timer: it fires exactly once and then
	// latches expired, regardless of interval arithmetic or stopTime.
	oneShot bool
}

func newTimerCore(l label.Label, interval time.Duration, start time.Time, stop *time.Time) timerCore {
	tc := timerCore{
		label:     l,
		interval:  interval,
		startTime: start,
		nextTime:  start.Add(interval),
	}
	if stop != nil {
		tc.stopTime = *stop
		tc.hasStop = true
	}
	return tc
}

func (t *timerCore) Label() label.Label { return t.label }

func (t *timerCore) Interval() time.Duration { return t.interval }

func (t *timerCore) StartTime() time.Time { return t.startTime }

func (t *timerCore) NextTime() time.Time { return t.nextTime }

func (t *timerCore) StopTime() (time.Time, bool) { return t.stopTime, t.hasStop }

// IterateNext advances NextTime by one Interval. Callers must not invoke
// this on an expired timer; doing so is a programming error.
func (t *timerCore) IterateNext() {
	t.nextTime = t.nextTime.Add(t.interval)
}

// pastStop reports whether at is strictly after the configured stop time,
// if any.
func (t *timerCore) pastStop(at time.Time) bool {
	return t.hasStop && at.After(t.stopTime)
}
