package guid

import "testing"

func TestNewUnique(t *testing.T) {
	a := New()
	b := New()
	if a.String() == b.String() {
		t.Fatal("expected two freshly generated GUIDs to differ")
	}
}

func TestStringNonEmpty(t *testing.T) {
	if New().String() == "" {
		t.Fatal("expected non-empty string representation")
	}
}
