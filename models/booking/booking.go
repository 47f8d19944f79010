package booking

// Companion is a person travelling with the booking user
type Companion struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Booking is a tourist's reservation against an offer. Bookings are never
// physically deleted, only moved between statuses.
//
// StartDate and EndDate use the DateLayout format and are set for stays only.
type Booking struct {
	ID          string        `json:"id"`
	OfferID     string        `json:"offer_id"`
	UserID      int64         `json:"user_id"`
	StartDate   *string       `json:"start_date,omitempty"`
	EndDate     *string       `json:"end_date,omitempty"`
	Guests      int           `json:"guests"`
	Companions  []Companion   `json:"companions"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	BookingDate string        `json:"booking_date"`
	RoomType    *string       `json:"room_type,omitempty"`
}

// DateLayout is the calendar date format used by bookings and inquiries
const DateLayout = "2006-01-02"

// HasDateRange returns true if both ends of the stay are set
func (b Booking) HasDateRange() bool {
	return b.StartDate != nil && b.EndDate != nil
}

// Find returns the booking with the given id
func Find(bookings []Booking, id string) (Booking, bool) {
	for _, b := range bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}
