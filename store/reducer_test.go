package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/models/user"
)

func strPtr(s string) *string { return &s }

func seededState() AppState {
	state, _ := Reduce(InitialState(), SetInitialData{
		Users: []user.User{
			{ID: 1, Name: "Ahmed Ali", Email: "tourist@example.com", Type: user.UserTypeTourist},
			{ID: 2, Name: "Sahara Adventures", Email: "provider@example.com", Type: user.UserTypeProvider},
		},
		Offers: []offer.Offer{
			{ID: "offer-1", ProviderID: 2, Category: offer.CategoryTour, PricePerPerson: offer.Price(1200)},
			{ID: "offer-2", ProviderID: 2, Category: offer.CategoryHotel, PricePerNight: offer.Price(250)},
		},
		Bookings: []booking.Booking{
			{
				ID: "booking-1", OfferID: "offer-2", UserID: 1,
				StartDate: strPtr("2024-09-10"), EndDate: strPtr("2024-09-15"),
				Guests: 2, Companions: []booking.Companion{{Name: "Jane Doe", Age: 30}},
				TotalPrice: 1250, Status: booking.BookingStatusConfirmed, BookingDate: "2024-07-20",
			},
			{
				ID: "booking-2", OfferID: "offer-1", UserID: 1, Guests: 1,
				TotalPrice: 1200, Status: booking.BookingStatusPending, BookingDate: "2024-07-22",
			},
		},
		Inquiries: []inquiry.Inquiry{
			{ID: "inquiry-1", OfferID: "offer-2", UserID: 1, Question: "Airport shuttle?", Date: "2024-07-21"},
		},
	})
	return state
}

func TestReduce_IsDeterministic(t *testing.T) {
	actions := []Action{
		SetLanguage{Language: LanguageAR},
		OpenModal{Modal: ModalBooking},
		AddBooking{Booking: booking.Booking{ID: "booking-3", OfferID: "offer-1", UserID: 1, Guests: 2}},
		UpdateBookingStatus{BookingID: "booking-3", Status: booking.BookingStatusConfirmed},
		SetPage{Page: PageReceipt, Payload: BookingRef{BookingID: "booking-3"}},
	}

	run := func() AppState {
		state := seededState()
		for _, a := range actions {
			state, _ = Reduce(state, a)
		}
		return state
	}

	assert.Equal(t, run(), run())
}

func TestReduce_SetInitialDataReplacesCollections(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, SetInitialData{
		Offers: []offer.Offer{{ID: "offer-9", Category: offer.CategoryGuesthouse, PricePerNight: offer.Price(80)}},
	})

	assert.Equal(t, Applied, outcome)
	require.Len(t, next.Offers, 1)
	assert.Equal(t, "offer-9", next.Offers[0].ID)
	assert.Empty(t, next.Bookings)
	assert.Empty(t, next.Inquiries)
	assert.Len(t, next.Users, 2, "users are kept when the seed carries none")
}

func TestReduce_Preferences(t *testing.T) {
	state := InitialState()

	state, outcome := Reduce(state, SetLanguage{Language: LanguageAR})
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, LanguageAR, state.Language)

	state, outcome = Reduce(state, SetTheme{Theme: ThemeDark})
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, ThemeDark, state.Theme)

	next, outcome := Reduce(state, SetLanguage{Language: "fr"})
	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)

	next, outcome = Reduce(state, SetTheme{Theme: "sepia"})
	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)
}

func TestReduce_SetUserAndClear(t *testing.T) {
	u := user.User{ID: 1, Name: "Ahmed Ali", Type: user.UserTypeTourist}

	state, _ := Reduce(InitialState(), SetUser{User: &u})
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, int64(1), state.CurrentUser.ID)

	u.Name = "changed after dispatch"
	assert.Equal(t, "Ahmed Ali", state.CurrentUser.Name)

	state, _ = Reduce(state, SetUser{User: nil})
	assert.Nil(t, state.CurrentUser)
}

func TestReduce_RegisterUserAppends(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, RegisterUser{User: user.User{ID: 3, Email: "new@example.com"}})

	assert.Equal(t, Applied, outcome)
	assert.Len(t, next.Users, 3)
	assert.Len(t, state.Users, 2)
}

func TestReduce_AddOfferTourKeepsPerPersonPrice(t *testing.T) {
	state := seededState()

	next, _ := Reduce(state, AddOffer{Offer: offer.Offer{ID: "offer-5", Category: offer.CategoryTour, PricePerPerson: offer.Price(500)}})

	added, ok := next.Offer("offer-5")
	require.True(t, ok)
	require.NotNil(t, added.PricePerPerson)
	assert.Equal(t, 500.0, *added.PricePerPerson)
	assert.Nil(t, added.PricePerNight)
}

func TestReduce_AddOfferNormalizesMisplacedPrice(t *testing.T) {
	state := seededState()

	next, _ := Reduce(state, AddOffer{Offer: offer.Offer{ID: "offer-6", Category: offer.CategoryTour, PricePerNight: offer.Price(300)}})

	added, ok := next.Offer("offer-6")
	require.True(t, ok)
	require.NotNil(t, added.PricePerPerson)
	assert.Equal(t, 300.0, *added.PricePerPerson)
	assert.Nil(t, added.PricePerNight)
}

func TestReduce_AddOfferDoesNotCheckIDUniqueness(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, AddOffer{Offer: offer.Offer{ID: "offer-1", Category: offer.CategoryHotel, PricePerNight: offer.Price(1)}})

	assert.Equal(t, Applied, outcome)
	assert.Len(t, next.Offers, 3)
}

func TestReduce_DeleteOfferLeavesDanglingBookings(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, DeleteOffer{OfferID: "offer-1"})

	assert.Equal(t, Applied, outcome)
	b, ok := next.Booking("booking-2")
	require.True(t, ok, "booking survives the deletion of its offer")
	_, ok = next.Offer(b.OfferID)
	assert.False(t, ok)
	assert.Len(t, state.Offers, 2, "previous snapshot is untouched")
}

func TestReduce_DeleteUnknownOfferIsNoTarget(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, DeleteOffer{OfferID: "offer-404"})

	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)
}

func TestReduce_AddBookingIsPending(t *testing.T) {
	state := seededState()

	next, _ := Reduce(state, AddBooking{Booking: booking.Booking{ID: "booking-3", Status: booking.BookingStatusConfirmed}})

	b, ok := next.Booking("booking-3")
	require.True(t, ok)
	assert.Equal(t, booking.BookingStatusPending, b.Status)
}

func TestReduce_UpdateBookingStatusOnlyChangesStatus(t *testing.T) {
	state := seededState()
	before, _ := state.Booking("booking-1")

	next, outcome := Reduce(state, UpdateBookingStatus{BookingID: "booking-1", Status: booking.BookingStatusCancelled})

	assert.Equal(t, Applied, outcome)
	after, _ := next.Booking("booking-1")
	assert.Equal(t, booking.BookingStatusCancelled, after.Status)

	after.Status = before.Status
	assert.Equal(t, before, after)

	other, _ := next.Booking("booking-2")
	original, _ := state.Booking("booking-2")
	assert.Equal(t, original, other)

	unchanged, _ := state.Booking("booking-1")
	assert.Equal(t, booking.BookingStatusConfirmed, unchanged.Status)
}

func TestReduce_UpdateBookingStatusHasNoLegalityGuard(t *testing.T) {
	state := seededState()

	state, _ = Reduce(state, UpdateBookingStatus{BookingID: "booking-2", Status: booking.BookingStatusRejected})
	state, outcome := Reduce(state, UpdateBookingStatus{BookingID: "booking-2", Status: booking.BookingStatusConfirmed})

	assert.Equal(t, Applied, outcome)
	b, _ := state.Booking("booking-2")
	assert.Equal(t, booking.BookingStatusConfirmed, b.Status)
}

func TestReduce_UpdateUnknownBookingIsNoTarget(t *testing.T) {
	state := seededState()

	next, outcome := Reduce(state, UpdateBookingStatus{BookingID: "booking-404", Status: booking.BookingStatusConfirmed})

	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)
}

func TestReduce_InquiryReplyCanBeOverwritten(t *testing.T) {
	state := seededState()

	state, _ = Reduce(state, AddReplyToInquiry{InquiryID: "inquiry-1", Answer: "first"})
	state, outcome := Reduce(state, AddReplyToInquiry{InquiryID: "inquiry-1", Answer: "second"})

	assert.Equal(t, Applied, outcome)
	q, _ := state.Inquiry("inquiry-1")
	require.NotNil(t, q.Answer)
	assert.Equal(t, "second", *q.Answer)
}

func TestReduce_AddInquiryAndUnknownReply(t *testing.T) {
	state := seededState()

	state, outcome := Reduce(state, AddInquiry{Inquiry: inquiry.Inquiry{ID: "inquiry-2", OfferID: "offer-1", UserID: 1, Question: "Vegetarian meals?"}})
	assert.Equal(t, Applied, outcome)
	assert.Len(t, state.Inquiries, 2)

	next, outcome := Reduce(state, AddReplyToInquiry{InquiryID: "inquiry-404", Answer: "?"})
	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)
}

func TestReduce_SetPagePayloadDefaultsToNone(t *testing.T) {
	state, _ := Reduce(InitialState(), SetPage{Page: PageOfferDetails, Payload: OfferRef{OfferID: "offer-1"}})

	id, ok := state.Navigation.OfferID()
	assert.True(t, ok)
	assert.Equal(t, "offer-1", id)

	state, _ = Reduce(state, SetPage{Page: PageDashboard})
	assert.Equal(t, PageDashboard, state.Navigation.Page)
	assert.Nil(t, state.Navigation.Payload)
	_, ok = state.Navigation.BookingID()
	assert.False(t, ok)
}

func TestReduce_CloseModalIsIdempotent(t *testing.T) {
	state, _ := Reduce(InitialState(), OpenModal{Modal: ModalAuth})

	once, _ := Reduce(state, CloseModal{Modal: ModalAuth})
	twice, _ := Reduce(once, CloseModal{Modal: ModalAuth})

	assert.Equal(t, once, twice)
}

func TestReduce_OpenThenCloseRestoresModals(t *testing.T) {
	state, _ := Reduce(InitialState(), OpenModal{Modal: ModalPayment})
	before := state.Modals

	state, _ = Reduce(state, OpenModal{Modal: ModalAuth})
	assert.True(t, state.Modals.Auth)
	state, _ = Reduce(state, CloseModal{Modal: ModalAuth})

	assert.Equal(t, before, state.Modals)
}

func TestReduce_ModalFlagsAreIndependent(t *testing.T) {
	state, _ := Reduce(InitialState(), OpenModal{Modal: ModalBooking})
	state, _ = Reduce(state, OpenModal{Modal: ModalPayment})

	assert.True(t, state.Modals.IsOpen(ModalBooking))
	assert.True(t, state.Modals.IsOpen(ModalPayment))
	assert.False(t, state.Modals.IsOpen(ModalAuth))
}

func TestReduce_UnknownModalIsNoTarget(t *testing.T) {
	state := InitialState()

	next, outcome := Reduce(state, OpenModal{Modal: "sidebar"})

	assert.Equal(t, NoTarget, outcome)
	assert.Equal(t, state, next)
	assert.False(t, next.Modals.IsOpen("sidebar"))
}
