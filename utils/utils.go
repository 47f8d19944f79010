package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"marhaba/models/booking"
)

// Clock returns the current time; services take one so tests can pin the date
type Clock func() time.Time

// NewID generates a prefixed unique identifier such as "booking-9f1c2ab4e07d"
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + id[:12]
}

// NewUserID generates a numeric user id from the clock, the way sign-up does
func NewUserID(clock Clock) int64 {
	return clock().UnixMilli()
}

// FormatDate formats t as a booking calendar date
func FormatDate(t time.Time) string {
	return t.Format(booking.DateLayout)
}

// SplitList splits a comma separated form value, trimming blanks
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
