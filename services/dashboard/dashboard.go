package dashboard

import (
	"slices"

	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/models/user"
	"marhaba/services/catalog"
	"marhaba/store"
)

// BookingRow is a booking joined with its offer and the booking user.
// Offer is nil when the offer was deleted after the booking was made;
// User is nil when the user is unknown.
type BookingRow struct {
	Booking booking.Booking `json:"booking"`
	Offer   *offer.Offer    `json:"offer"`
	User    *user.User      `json:"user,omitempty"`
}

// OfferAvailable returns false for bookings whose offer no longer exists
func (r BookingRow) OfferAvailable() bool {
	return r.Offer != nil
}

// InquiryRow is an inquiry joined with its offer and the asking user
type InquiryRow struct {
	Inquiry inquiry.Inquiry `json:"inquiry"`
	Offer   *offer.Offer    `json:"offer"`
	User    *user.User      `json:"user,omitempty"`
}

// TouristView is what a tourist sees on the dashboard
type TouristView struct {
	Bookings  []BookingRow `json:"bookings"`
	Inquiries []InquiryRow `json:"inquiries"`
}

// ProviderView is what a provider sees on the dashboard
type ProviderView struct {
	Offers    []offer.Offer `json:"offers"`
	Bookings  []BookingRow  `json:"bookings"`
	Inquiries []InquiryRow  `json:"inquiries"`
}

// ForTourist lists the tourist's own bookings and inquiries
func ForTourist(state store.AppState, userID int64) TouristView {
	view := TouristView{Bookings: []BookingRow{}, Inquiries: []InquiryRow{}}
	for _, b := range state.Bookings {
		if b.UserID == userID {
			view.Bookings = append(view.Bookings, bookingRow(state, b))
		}
	}
	for _, q := range state.Inquiries {
		if q.UserID == userID {
			view.Inquiries = append(view.Inquiries, inquiryRow(state, q))
		}
	}
	return view
}

// ForProvider lists the provider's offers and every booking and inquiry made
// against them
func ForProvider(state store.AppState, providerID int64) ProviderView {
	mine := catalog.ByProvider(state.Offers, providerID)
	offerIDs := make([]string, 0, len(mine))
	for _, o := range mine {
		offerIDs = append(offerIDs, o.ID)
	}

	view := ProviderView{Offers: mine, Bookings: []BookingRow{}, Inquiries: []InquiryRow{}}
	for _, b := range state.Bookings {
		if slices.Contains(offerIDs, b.OfferID) {
			view.Bookings = append(view.Bookings, bookingRow(state, b))
		}
	}
	for _, q := range state.Inquiries {
		if slices.Contains(offerIDs, q.OfferID) {
			view.Inquiries = append(view.Inquiries, inquiryRow(state, q))
		}
	}
	return view
}

func bookingRow(state store.AppState, b booking.Booking) BookingRow {
	row := BookingRow{Booking: b}
	if o, ok := state.Offer(b.OfferID); ok {
		row.Offer = &o
	}
	if u, ok := state.User(b.UserID); ok {
		row.User = &u
	}
	return row
}

func inquiryRow(state store.AppState, q inquiry.Inquiry) InquiryRow {
	row := InquiryRow{Inquiry: q}
	if o, ok := state.Offer(q.OfferID); ok {
		row.Offer = &o
	}
	if u, ok := state.User(q.UserID); ok {
		row.User = &u
	}
	return row
}
