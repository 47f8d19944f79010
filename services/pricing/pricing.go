package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/jinzhu/now"

	"marhaba/apperrors"
	"marhaba/models/booking"
	"marhaba/models/offer"
)

// ParseDate parses a calendar date in the booking date layout
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(booking.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return t, nil
}

// Nights counts the calendar nights between check-in and check-out. A
// check-out on or before check-in yields 0.
func Nights(start, end time.Time) int {
	from := now.With(start).BeginningOfDay()
	to := now.With(end).BeginningOfDay()
	nights := int(math.Ceil(to.Sub(from).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// Quote computes the total price of a booking: tours are charged per person,
// stays per night between startDate and endDate.
func Quote(o offer.Offer, guests int, startDate, endDate string) (float64, error) {
	if o.Category == offer.CategoryTour {
		if guests < 1 {
			return 0, apperrors.NewValidationError("guests must be at least 1")
		}
		return o.PriceOf() * float64(guests), nil
	}

	if startDate == "" || endDate == "" {
		return 0, apperrors.NewValidationError("check-in and check-out dates are required")
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	return o.PriceOf() * float64(Nights(start, end)), nil
}
