package types

import "time"

// ActionEntry is one store transition queued for the action journal
type ActionEntry struct {
	Sequence  uint64
	Action    string
	Payload   string
	Outcome   string
	BookingID string
	Status    string
	CreatedAt time.Time
}
