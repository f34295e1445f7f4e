package clock

import (
	"sync"
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// LiveClock is driven by the operating system's UTC time and real OS
// timers. Its registries are shared mutable state accessed from the
// registering goroutine and from trampolines running on the host
// scheduler's goroutines; all registry reads/writes are serialized by mu.
// Handlers execute outside mu, so a handler that itself calls back into
// the Clock (e.g. to schedule another timer) cannot self-deadlock.
type LiveClock struct {
	mu sync.Mutex
	base
}

// NewLiveClock returns a ready-to-use LiveClock.
func NewLiveClock() *LiveClock {
	return &LiveClock{base: newBase()}
}

// IsTestClock is always false for LiveClock.
func (c *LiveClock) IsTestClock() bool { return false }

// TimeNow returns the OS's current UTC time.
func (c *LiveClock) TimeNow() time.Time {
	return time.Now().UTC()
}

// GetDelta returns TimeNow() - t.
func (c *LiveClock) GetDelta(t time.Time) time.Duration {
	return c.TimeNow().Sub(t)
}

// SetTimeAlert registers a one-shot timer that fires exactly once at
// alertTime. handler may be nil, in which case the clock's registered
// default handler is used.
func (c *LiveClock) SetTimeAlert(l label.Label, alertTime time.Time, handler Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()

	if _, exists := c.timers[l]; exists {
		return invalidArgument("SetTimeAlert", "label already registered: "+l.String())
	}
	if alertTime.Before(now) {
		return invalidArgument("SetTimeAlert", "alertTime is before time_now()")
	}
	h, ok := c.resolveHandler(handler)
	if !ok {
		return invalidArgument("SetTimeAlert", "no handler supplied and no default handler registered")
	}

	interval := alertTime.Sub(now)
	var timer *liveTimer
	timer = newLiveTimer(l, interval, now, nil, nil, true, func() {
		c.raiseTimeEvent(l)
	})
	c.put(l, timer, h)
	return nil
}

// SetTimer registers a repeating timer. If start is nil it defaults to
// time.Now(). If stop is non-nil, no fire is emitted past it.
func (c *LiveClock) SetTimer(l label.Label, interval time.Duration, start, stop *time.Time, handler Handler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()

	if _, exists := c.timers[l]; exists {
		return invalidArgument("SetTimer", "label already registered: "+l.String())
	}
	if interval <= 0 {
		return invalidArgument("SetTimer", "interval must be positive")
	}

	startTime := now
	startWasDefaulted := start == nil
	if start != nil {
		startTime = *start
	}
	if startWasDefaulted && startTime.Add(interval).Before(now) {
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

	var start2 *time.Time
	if !startWasDefaulted {
		start2 = &startTime
	}

	timer := newLiveTimer(l, interval, now, start2, stop, false, func() {
		c.raiseTimeEventRepeating(l)
	})
	c.put(l, timer, h)
	return nil
}

// CancelTimer removes and cancels the timer registered under l. An unknown
// label logs a warning but is not an error. Idempotent and safe to call
// concurrently with a pending fire: if the OS callback has already begun
// executing its trampoline past lock acquisition, one final event may
// still be delivered.
func (c *LiveClock) CancelTimer(l label.Label) {
	c.mu.Lock()
	t, exists := c.timers[l]
	if !exists {
		c.warn("cancel_timer: unknown label " + l.String())
		c.mu.Unlock()
		return
	}
	c.remove(l)
	c.mu.Unlock()

	t.Cancel()
}

// CancelAllTimers cancels every currently registered timer, as a bulk
// application of CancelTimer over a snapshot. Timers added after the
// snapshot is taken are not cancelled.
func (c *LiveClock) CancelAllTimers() {
	c.mu.Lock()
	labels := c.GetTimerLabels()
	c.mu.Unlock()

	for _, l := range labels {
		c.CancelTimer(l)
	}
}

// raiseTimeEvent is the one-shot trampoline: it builds the TimeEvent,
// removes the timer from the registry, and dispatches the user handler
// outside the lock.
func (c *LiveClock) raiseTimeEvent(l label.Label) {
	c.mu.Lock()
	t, exists := c.timers[l]
	if !exists {
		c.mu.Unlock()
		return
	}
	h := c.handlers[l]
	eventTime := t.NextTime()
	c.remove(l)
	c.mu.Unlock()

	if h != nil {
		h(newTimeEvent(l, eventTime))
	}
}

// raiseTimeEventRepeating is the repeating trampoline: it builds the
// TimeEvent and dispatches the user handler outside the lock; if a stop
// time is configured and either reached by this fire or passed by the
// next one, the timer is removed, otherwise it is advanced and re-armed.
func (c *LiveClock) raiseTimeEventRepeating(l label.Label) {
	c.mu.Lock()
	t, exists := c.timers[l]
	if !exists {
		c.mu.Unlock()
		return
	}
	lt, ok := t.(*liveTimer)
	if !ok {
		c.mu.Unlock()
		return
	}
	h := c.handlers[l]
	eventTime := lt.NextTime()

	stop, hasStop := lt.StopTime()
	done := hasStop && !eventTime.Before(stop)

	if done {
		c.remove(l)
	} else {
		lt.IterateNext()
		if lt.pastStop(lt.NextTime()) {
			c.remove(l)
		} else {
			lt.Repeat(time.Now().UTC())
			c.refresh()
		}
	}
	c.mu.Unlock()

	if h != nil {
		h(newTimeEvent(l, eventTime))
	}
}
