package booking

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition is allowed by the workflows
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusRejected || bs == BookingStatusCancelled
}

// CanBeCancelled returns true if the tourist may still cancel the booking
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed
}

// CanTransitionTo reports whether moving to next follows the booking state machine:
// pending -> confirmed | rejected | cancelled, confirmed -> cancelled.
func (bs BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case BookingStatusConfirmed, BookingStatusRejected:
		return bs == BookingStatusPending
	case BookingStatusCancelled:
		return bs.CanBeCancelled()
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusRejected,
		BookingStatusCancelled,
	}
}
