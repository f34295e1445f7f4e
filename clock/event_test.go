package clock

import (
	"testing"
	"time"

	"github.com/makeroftools/nautilus-trader/label"
)

func TestTimeEventLessByTimestamp(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	a := newTimeEvent(label.MustNew("a"), base)
	b := newTimeEvent(label.MustNew("b"), base.Add(time.Second))

	if !a.Less(b) {
		t.Fatal("expected earlier timestamp to sort first")
	}
	if b.Less(a) {
		t.Fatal("expected later timestamp not to sort first")
	}
}

func TestTimeEventLessTieBreaksByLabel(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	a := newTimeEvent(label.MustNew("a"), base)
	z := newTimeEvent(label.MustNew("z"), base)

	if !a.Less(z) {
		t.Fatal("expected lexicographically smaller label to sort first on tie")
	}
}

func TestTimeEventTimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2020, 1, 1, 10, 0, 0, 0, loc)

	e := newTimeEvent(label.MustNew("a"), local)
	if e.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", e.Timestamp.Location())
	}
}
