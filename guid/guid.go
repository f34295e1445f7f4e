// Package guid provides the informational identifier attached to each
// TimeEvent at construction.
package guid

import "github.com/google/uuid"

// GUID is a universally unique identifier. It is informational only: two
// TimeEvents are never ordered or deduplicated by GUID, only by timestamp
// and label.
type GUID struct {
	value uuid.UUID
}

// New draws a fresh random (v4) GUID.
func New() GUID {
	return GUID{value: uuid.New()}
}

// String returns the canonical string form.
func (g GUID) String() string {
	return g.value.String()
}
