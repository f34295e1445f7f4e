package clock

import (
	"sort"
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// TestClock is a deterministic clock driven by explicit time advancement.
// It is single-threaded and purely cooperative: all time progression and
// event delivery happen inside the caller's invocation of AdvanceTime, with
// no suspension points. TestClock is not safe for concurrent use from
// multiple goroutines; callers needing that should serialize their own
// access.
type TestClock struct {
	base
	now time.Time
}

// NewTestClock returns a TestClock with now set to the Unix epoch.
func NewTestClock() *TestClock {
	return NewTestClockAt(time.Unix(0, 0).UTC())
}

// NewTestClockAt returns a TestClock with now set to the given instant.
func NewTestClockAt(now time.Time) *TestClock {
	return &TestClock{base: newBase(), now: now.UTC()}
}

// IsTestClock is always true for TestClock.
func (c *TestClock) IsTestClock() bool { return true }

// TimeNow returns the clock's current idea of "now".
func (c *TestClock) TimeNow() time.Time {
	return c.now
}

// GetDelta returns TimeNow() - t.
func (c *TestClock) GetDelta(t time.Time) time.Duration {
	return c.now.Sub(t)
}

// SetTime overwrites the clock's current time without firing any events.
// It is intended only for initialization in isolated tests; it must not be
// used between SetTimer calls in production-equivalent paths, since it
// bypasses the event delivery AdvanceTime otherwise guarantees.
func (c *TestClock) SetTime(to time.Time) {
	c.now = to.UTC()
}

// SetTimeAlert registers a one-shot timer that fires exactly once at
// alertTime. handler may be nil, in which case the clock's registered
// default handler is used.
func (c *TestClock) SetTimeAlert(l label.Label, alertTime time.Time, handler Handler) error {
	if _, exists := c.timers[l]; exists {
		return invalidArgument("SetTimeAlert", "label already registered: "+l.String())
	}
	if alertTime.Before(c.now) {
		return invalidArgument("SetTimeAlert", "alertTime is before time_now()")
	}
	h, ok := c.resolveHandler(handler)
	if !ok {
		return invalidArgument("SetTimeAlert", "no handler supplied and no default handler registered")
	}

	interval := alertTime.Sub(c.now)
	timer := newTestTimer(l, interval, c.now, nil, true)
	c.put(l, timer, h)
	return nil
}

// SetTimer registers a repeating timer. If start is nil it defaults to
// TimeNow(). If stop is non-nil, no fire is emitted past it.
func (c *TestClock) SetTimer(l label.Label, interval time.Duration, start, stop *time.Time, handler Handler) error {
	if _, exists := c.timers[l]; exists {
		return invalidArgument("SetTimer", "label already registered: "+l.String())
	}
	if interval <= 0 {
		return invalidArgument("SetTimer", "interval must be positive")
	}

	startTime := c.now
	startWasDefaulted := start == nil
	if start != nil {
		startTime = *start
	}
	if startWasDefaulted && startTime.Add(interval).Before(c.now) {
		return invalidArgument("SetTimer", "start_time + interval is before time_now()")
	}
	if stop != nil {
		if !startTime.Before(*stop) {
			return invalidArgument("SetTimer", "start_time must be before stop_time")
		}
		if startTime.Add(interval).After(*stop) {
			return invalidArgument("SetTimer", "start_time + interval must not be after stop_time")
		}
	}

	h, ok := c.resolveHandler(handler)
	if !ok {
		return invalidArgument("SetTimer", "no handler supplied and no default handler registered")
	}

	timer := newTestTimer(l, interval, startTime, stop, false)
	c.put(l, timer, h)
	return nil
}

// CancelTimer removes and cancels the timer registered under l. An unknown
// label logs a warning but is not an error.
func (c *TestClock) CancelTimer(l label.Label) {
	t, exists := c.timers[l]
	if !exists {
		c.warn("cancel_timer: unknown label " + l.String())
		return
	}
	t.Cancel()
	c.remove(l)
}

// CancelAllTimers cancels every currently registered timer. Timers added
// after the snapshot is taken are not cancelled.
func (c *TestClock) CancelAllTimers() {
	for _, l := range c.GetTimerLabels() {
		c.CancelTimer(l)
	}
}

// firedEvent pairs a fired TimeEvent with the handler that must receive it.
type firedEvent struct {
	event   TimeEvent
	handler Handler
}

// AdvanceTime is the TestClock workhorse. It iterates a snapshot of the
// current timers, harvesting every due TimeEvent up to and including to,
// removes any timer that latches expired, and delivers the full set of
// fired events to their handlers in a single globally ascending-timestamp
// order (ties broken by label). If to is before NextEventTime, it is a
// no-op: the clock's idea of now is left unchanged.
//
// AdvanceTime is idempotent if called again with the same to: a timer that
// has already advanced past to produces no further events for that call.
func (c *TestClock) AdvanceTime(to time.Time) []TimeEvent {
	if !c.hasTimers || to.Before(c.nextEventTime) {
		return nil
	}

	labels := c.GetTimerLabels()
	var fired []firedEvent
	for _, l := range labels {
		t, ok := c.timers[l].(*testTimer)
		if !ok {
			continue
		}
		h := c.handlers[l]
		for _, ev := range t.Advance(to) {
			fired = append(fired, firedEvent{event: ev, handler: h})
		}
		if t.expired {
			c.remove(l)
		}
	}

	sort.SliceStable(fired, func(i, j int) bool { return fired[i].event.Less(fired[j].event) })

	c.now = to.UTC()

	events := make([]TimeEvent, 0, len(fired))
	for _, f := range fired {
		events = append(events, f.event)
		if f.handler != nil {
			f.handler(f.event)
		}
	}
	return events
}
