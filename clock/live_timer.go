package clock

import (
	"time"

	"github.com/makeroftools/nautilus-trader/label"
	"github.com/makeroftools/nautilus-trader/ostime"
)

// liveTimer wraps a host-provided delayed callback (via ostime.Clock) keyed
// to NextTime - now. The callback it arms is never the user handler
// directly; it is always one of LiveClock's trampolines, which construct
// the TimeEvent and dispatch the user handler themselves.
//
// Cancel and Repeat are intentionally not serialized beyond ostime.Timer's
// own guarantees: a race between a firing callback and a concurrent Cancel
// can let one final event through, which is an accepted, documented race.
type liveTimer struct {
	timerCore
	osClock ostime.Clock
	osTimer ostime.Timer
	fire    func()
}

// newLiveTimer constructs a liveTimer and arms its first delayed callback.
// If start is nil it defaults to now. fn is the Clock-internal trampoline;
// it is invoked on the host scheduler's goroutine when the delay elapses.
func newLiveTimer(l label.Label, interval time.Duration, now time.Time, start *time.Time, stop *time.Time, oneShot bool, fn func()) *liveTimer {
	startTime := now
	if start != nil {
		startTime = *start
	}

	lt := &liveTimer{
		timerCore: newTimerCore(l, interval, startTime, stop),
		osClock:   ostime.New(),
		fire:      fn,
	}
	lt.oneShot = oneShot
	lt.osTimer = lt.osClock.AfterFunc(lt.nextTime.Sub(now), fn)
	return lt
}

// Repeat re-arms a fresh delayed callback for NextTime - now, superseding
// whatever callback (already fired) preceded it. Called by LiveClock after
// a successful fire of a repeating timer.
func (t *liveTimer) Repeat(now time.Time) {
	t.osTimer = t.osClock.AfterFunc(t.nextTime.Sub(now), t.fire)
}

// Cancel stops any pending delayed callback. Subsequent expiries, if the
// callback had already begun running past the point of Cancel, may still
// deliver one final event (see the liveTimer type comment).
func (t *liveTimer) Cancel() {
	t.osTimer.Stop()
}
