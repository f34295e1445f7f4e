package clock

import (
	"time"

	"github.com/makeroftools/nautilus-trader/guid"
	"github.com/makeroftools/nautilus-trader/label"
)

// Handler is invoked synchronously with a TimeEvent when a timer fires.
type Handler func(TimeEvent)

// TimeEvent is the immutable value delivered to a Handler when a timer
// fires. Two events are ordered by Timestamp, then by Label for stable
// sorting; ID is informational only.
type TimeEvent struct {
	Label     label.Label
	ID        guid.GUID
	Timestamp time.Time
}

// newTimeEvent constructs a TimeEvent, normalizing the timestamp to UTC.
func newTimeEvent(l label.Label, ts time.Time) TimeEvent {
	return TimeEvent{
		Label:     l,
		ID:        guid.New(),
		Timestamp: ts.UTC(),
	}
}

// Less reports whether e sorts before other: ascending by Timestamp, tying
// broken by Label for deterministic replay.
func (e TimeEvent) Less(other TimeEvent) bool {
	if !e.Timestamp.Equal(other.Timestamp) {
		return e.Timestamp.Before(other.Timestamp)
	}
	return e.Label.String() < other.Label.String()
}
