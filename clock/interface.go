package clock

import (
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

// Clock is the capability set shared by TestClock and LiveClock: a
// registry of labeled timers, a dispatcher to per-timer handlers, a
// provider of "now", and a coordinator of cancellation and teardown.
type Clock interface {
	TimeNow() time.Time
	GetDelta(t time.Time) time.Duration
	GetTimerLabels() []label.Label
	HasTimers() bool
	NextEventTime() (time.Time, bool)
	IsTestClock() bool

	RegisterLogger(logger Logger)
	RegisterDefaultHandler(h Handler) error

	SetTimeAlert(l label.Label, alertTime time.Time, handler Handler) error
	SetTimer(l label.Label, interval time.Duration, start, stop *time.Time, handler Handler) error
	CancelTimer(l label.Label)
	CancelAllTimers()
}

var (
	_ Clock = (*TestClock)(nil)
	_ Clock = (*LiveClock)(nil)
)
