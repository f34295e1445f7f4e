package clock

import (
	"sort"
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// base holds the registries and derived cache shared by TestClock and
// LiveClock: label -> Timer, label -> Handler, an optional default
// handler, and an optional logger. Concrete clocks embed base and supply
// time_now() plus the Timer variant their SetTimeAlert/SetTimer manufacture.
type base struct {
	timers   map[label.Label]Timer
	handlers map[label.Label]Handler

	defaultHandler Handler
	logger         Logger

	hasTimers     bool
	nextEventTime time.Time
}

func newBase() base {
	return base{
		timers:   make(map[label.Label]Timer),
		handlers: make(map[label.Label]Handler),
	}
}

// HasTimers reports whether any timer is currently registered.
func (b *base) HasTimers() bool {
	return b.hasTimers
}

// NextEventTime returns the earliest NextTime across all registered
// timers. The second return value is false when no timer is registered.
func (b *base) NextEventTime() (time.Time, bool) {
	if !b.hasTimers {
		return time.Time{}, false
	}
	return b.nextEventTime, true
}

// GetTimerLabels returns a snapshot of the currently registered labels.
func (b *base) GetTimerLabels() []label.Label {
	labels := make([]label.Label, 0, len(b.timers))
	for l := range b.timers {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].String() < labels[j].String() })
	return labels
}

// RegisterLogger attaches a logger, replacing any previously registered
// one. Idempotent.
func (b *base) RegisterLogger(logger Logger) {
	b.logger = logger
}

// RegisterDefaultHandler sets the handler used by SetTimeAlert/SetTimer
// calls that omit one. h must be non-nil.
func (b *base) RegisterDefaultHandler(h Handler) error {
	if h == nil {
		return invalidArgument("RegisterDefaultHandler", "handler must not be nil")
	}
	b.defaultHandler = h
	return nil
}

// resolveHandler returns h if non-nil, else the default handler. It
// reports false if neither is available.
func (b *base) resolveHandler(h Handler) (Handler, bool) {
	if h != nil {
		return h, true
	}
	if b.defaultHandler != nil {
		return b.defaultHandler, true
	}
	return nil, false
}

// put registers timer t and its handler under label l, then refreshes the
// derived cache. Callers must hold any lock the concrete clock requires.
func (b *base) put(l label.Label, t Timer, h Handler) {
	b.timers[l] = t
	b.handlers[l] = h
	b.refresh()
}

// remove drops label l from both registries and refreshes the derived
// cache. Callers must hold any lock the concrete clock requires.
func (b *base) remove(l label.Label) {
	delete(b.timers, l)
	delete(b.handlers, l)
	b.refresh()
}

// refresh recomputes hasTimers and nextEventTime by scanning all
// registered timers. For large registries an ordered priority structure
// keyed by NextTime would avoid the scan; not required for correctness.
func (b *base) refresh() {
	b.hasTimers = len(b.timers) > 0
	if !b.hasTimers {
		return
	}

	first := true
	for _, t := range b.timers {
		if first || t.NextTime().Before(b.nextEventTime) {
			b.nextEventTime = t.NextTime()
			first = false
		}
	}
}

func (b *base) warn(msg string) {
	if b.logger != nil {
		b.logger.Warning(msg)
	}
}
