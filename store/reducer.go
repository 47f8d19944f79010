package store

import (
	"slices"

	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
)

// Outcome tells the caller whether an action found its target
type Outcome string

const (
	// Applied means the action produced the next state
	Applied Outcome = "applied"
	// NoTarget means the action referenced nothing (unknown id, modal or
	// preference value) and the state is unchanged
	NoTarget Outcome = "no_target"
)

// Reduce is the pure state transition function. It never fails: actions that
// reference nothing return the state unchanged with the NoTarget outcome.
func Reduce(state AppState, action Action) (AppState, Outcome) {
	switch a := action.(type) {
	case SetInitialData:
		state.Offers = slices.Clone(a.Offers)
		state.Bookings = slices.Clone(a.Bookings)
		state.Inquiries = slices.Clone(a.Inquiries)
		if a.Users != nil {
			state.Users = slices.Clone(a.Users)
		}
		return state, Applied

	case SetLanguage:
		if !a.Language.IsValid() {
			return state, NoTarget
		}
		state.Language = a.Language
		return state, Applied

	case SetTheme:
		if !a.Theme.IsValid() {
			return state, NoTarget
		}
		state.Theme = a.Theme
		return state, Applied

	case SetUser:
		if a.User == nil {
			state.CurrentUser = nil
			return state, Applied
		}
		u := *a.User
		state.CurrentUser = &u
		return state, Applied

	case RegisterUser:
		state.Users = appendCopy(state.Users, a.User)
		return state, Applied

	case AddOffer:
		state.Offers = appendCopy(state.Offers, a.Offer.NormalizePrice())
		return state, Applied

	case DeleteOffer:
		kept := slices.DeleteFunc(slices.Clone(state.Offers), func(o offer.Offer) bool {
			return o.ID == a.OfferID
		})
		if len(kept) == len(state.Offers) {
			return state, NoTarget
		}
		state.Offers = kept
		return state, Applied

	case AddBooking:
		b := a.Booking
		b.Status = booking.BookingStatusPending
		state.Bookings = appendCopy(state.Bookings, b)
		return state, Applied

	case UpdateBookingStatus:
		i := slices.IndexFunc(state.Bookings, func(b booking.Booking) bool {
			return b.ID == a.BookingID
		})
		if i < 0 {
			return state, NoTarget
		}
		state.Bookings = slices.Clone(state.Bookings)
		state.Bookings[i].Status = a.Status
		return state, Applied

	case AddInquiry:
		state.Inquiries = appendCopy(state.Inquiries, a.Inquiry)
		return state, Applied

	case AddReplyToInquiry:
		i := slices.IndexFunc(state.Inquiries, func(q inquiry.Inquiry) bool {
			return q.ID == a.InquiryID
		})
		if i < 0 {
			return state, NoTarget
		}
		answer := a.Answer
		state.Inquiries = slices.Clone(state.Inquiries)
		state.Inquiries[i].Answer = &answer
		return state, Applied

	case SetPage:
		state.Navigation = Navigation{Page: a.Page, Payload: a.Payload}
		return state, Applied

	case OpenModal:
		return setModal(state, a.Modal, true)

	case CloseModal:
		return setModal(state, a.Modal, false)

	default:
		return state, NoTarget
	}
}

func setModal(state AppState, name ModalName, open bool) (AppState, Outcome) {
	f := state.Modals.flag(name)
	if f == nil {
		return state, NoTarget
	}
	*f = open
	return state, Applied
}

// appendCopy appends to a fresh backing array so published snapshots never share
// storage with the next state.
func appendCopy[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}
