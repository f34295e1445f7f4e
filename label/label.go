// Package label provides the identity value used to key timers and their
// handlers within a single clock.
package label

import "errors"

// ErrEmpty is returned by New when given an empty string.
var ErrEmpty = errors.New("label: value must not be empty")

// Label is a non-empty string identifier. Within one Clock instance, a
// Label uniquely identifies at most one active timer and at most one
// handler at any moment.
type Label struct {
	value string
}

// New constructs a Label from s, rejecting the empty string.
func New(s string) (Label, error) {
	if s == "" {
		return Label{}, ErrEmpty
	}
	return Label{value: s}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// constants and tests, not for values derived from external input.
func MustNew(s string) Label {
	l, err := New(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the underlying value.
func (l Label) String() string {
	return l.value
}

// Zero reports whether l is the zero Label (never produced by New).
func (l Label) Zero() bool {
	return l.value == ""
}
