package clock

import "testing"

func TestInvalidArgumentErrorMessage(t *testing.T) {
	err := invalidArgument("SetTimer", "interval must be positive")
	want := "clock: SetTimer: interval must be positive"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
