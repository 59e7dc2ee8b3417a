package ledger

import "github.com/google/uuid"

// newID returns a UUIDv7: a millisecond timestamp followed by random bits,
// so ids sort by creation time and never collide in practice.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
