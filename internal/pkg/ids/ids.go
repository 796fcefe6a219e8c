package ids

import "github.com/google/uuid"

// New returns a time-ordered UUIDv7 so ids sort by creation.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
