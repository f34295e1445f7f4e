// Package ostime wraps the parts of the standard time package a LiveTimer
// needs to arm and re-arm a delayed callback: *time.Timer construction,
// its channel, and Stop/Reset. It exists so the clock package's liveTimer depends on a
// narrow interface rather than the concrete standard-library type,
// matching the wrap-don't-call-directly discipline used throughout this
// module for OS-facing primitives.
package ostime

import "time"

// Timer is the subset of *time.Timer's behavior a re-armable delayed
// callback needs.
type Timer interface {
	// Channel returns the timer's channel. For a timer made by
	// Clock.AfterFunc it is nil: the callback runs instead.
	Channel() <-chan time.Time
	// Stop prevents the timer from firing, reporting whether it was
	// active.
	Stop() bool
	// Reset changes the timer's duration, reporting whether it was
	// active before the reset.
	Reset(d time.Duration) bool
}

// Clock backs directly to the operating system's time functions.
type Clock struct{}

// New returns a Clock backed by the standard library.
func New() Clock {
	return Clock{}
}

// Now wraps time.Now.
func (Clock) Now() time.Time {
	return time.Now()
}

// AfterFunc wraps time.AfterFunc, returning something conforming to Timer.
func (Clock) AfterFunc(d time.Duration, f func()) Timer {
	return timerWrap{time.AfterFunc(d, f)}
}

type timerWrap struct {
	t *time.Timer
}

func (tw timerWrap) Channel() <-chan time.Time { return tw.t.C }
func (tw timerWrap) Stop() bool                { return tw.t.Stop() }
func (tw timerWrap) Reset(d time.Duration) bool { return tw.t.Reset(d) }
