package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/models/booking"
)

func TestStore_DispatchReplacesState(t *testing.T) {
	s := New(seededState())

	outcome := s.Dispatch(UpdateBookingStatus{BookingID: "booking-2", Status: booking.BookingStatusConfirmed})

	assert.Equal(t, Applied, outcome)
	b, ok := s.GetState().Booking("booking-2")
	require.True(t, ok)
	assert.Equal(t, booking.BookingStatusConfirmed, b.Status)
}

func TestStore_SnapshotsAreImmutable(t *testing.T) {
	s := New(seededState())
	snapshot := s.GetState()

	s.Dispatch(AddBooking{Booking: booking.Booking{ID: "booking-3"}})
	s.Dispatch(UpdateBookingStatus{BookingID: "booking-1", Status: booking.BookingStatusCancelled})

	assert.Len(t, snapshot.Bookings, 2)
	b, _ := snapshot.Booking("booking-1")
	assert.Equal(t, booking.BookingStatusConfirmed, b.Status)
}

func TestStore_SubscribersSeeEveryTransitionInOrder(t *testing.T) {
	s := New(InitialState())

	var seen []ActionType
	var outcomes []Outcome
	unsubscribe := s.Subscribe(func(a Action, o Outcome, state AppState) {
		seen = append(seen, a.Type())
		outcomes = append(outcomes, o)
	})

	s.Dispatch(SetTheme{Theme: ThemeDark})
	s.Dispatch(OpenModal{Modal: "unknown"})
	unsubscribe()
	unsubscribe()
	s.Dispatch(SetTheme{Theme: ThemeLight})

	assert.Equal(t, []ActionType{ActionSetTheme, ActionOpenModal}, seen)
	assert.Equal(t, []Outcome{Applied, NoTarget}, outcomes)
}

func TestStore_ListenerReceivesPostDispatchState(t *testing.T) {
	s := New(InitialState())

	var got Language
	s.Subscribe(func(a Action, o Outcome, state AppState) {
		got = state.Language
		assert.Equal(t, state, s.GetState())
	})

	s.Dispatch(SetLanguage{Language: LanguageAR})

	assert.Equal(t, LanguageAR, got)
}

func TestStore_ListenersNotifiedInSubscriptionOrder(t *testing.T) {
	s := New(InitialState())

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		s.Subscribe(func(Action, Outcome, AppState) { order = append(order, i) })
	}

	s.Dispatch(SetTheme{Theme: ThemeDark})

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestStore_ConcurrentDispatchesAreSerialized(t *testing.T) {
	s := New(seededState())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(AddBooking{Booking: booking.Booking{OfferID: "offer-1"}})
		}()
	}
	wg.Wait()

	assert.Len(t, s.GetState().Bookings, 52)
}
