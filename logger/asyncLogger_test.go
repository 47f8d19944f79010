package logger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/models/booking"
	"marhaba/store"
	"marhaba/types"
)

type memorySink struct {
	mu      sync.Mutex
	entries []types.ActionEntry
	fail    bool
}

func (s *memorySink) Write(entry types.ActionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink unavailable")
	}
	s.entries = append(s.entries, entry)
	return nil
}

func TestAsyncLogger_JournalsDispatches(t *testing.T) {
	sink := &memorySink{}
	journal := NewAsyncLogger(sink)
	go journal.ProcessLog()

	st := store.New(store.InitialState())
	st.Subscribe(journal.Listener())

	st.Dispatch(store.AddBooking{Booking: booking.Booking{ID: "booking-9", OfferID: "offer-1", UserID: 1, Guests: 2}})
	st.Dispatch(store.UpdateBookingStatus{BookingID: "booking-9", Status: booking.BookingStatusConfirmed})
	st.Dispatch(store.UpdateBookingStatus{BookingID: "booking-404", Status: booking.BookingStatusCancelled})
	st.Dispatch(store.OpenModal{Modal: store.ModalPayment})

	journal.Close()

	require.Len(t, sink.entries, 4)

	first := sink.entries[0]
	assert.Equal(t, uint64(1), first.Sequence)
	assert.Equal(t, "ADD_BOOKING", first.Action)
	assert.Equal(t, "applied", first.Outcome)
	assert.Equal(t, "booking-9", first.BookingID)
	assert.Equal(t, "pending", first.Status)
	assert.Contains(t, first.Payload, `"booking-9"`)

	assert.Equal(t, "confirmed", sink.entries[1].Status)

	missed := sink.entries[2]
	assert.Equal(t, "no_target", missed.Outcome)
	assert.Empty(t, missed.BookingID, "status events are only recorded for applied changes")

	modal := sink.entries[3]
	assert.Equal(t, "OPEN_MODAL", modal.Action)
	assert.Equal(t, `{"modal":"payment"}`, modal.Payload)
	assert.Equal(t, uint64(4), modal.Sequence)
}

func TestAsyncLogger_SinkFailureDoesNotStopJournal(t *testing.T) {
	sink := &memorySink{fail: true}
	journal := NewAsyncLogger(sink)
	go journal.ProcessLog()

	journal.Log(types.ActionEntry{Action: "SET_THEME"})
	journal.Log(types.ActionEntry{Action: "SET_LANGUAGE"})
	journal.Close()

	assert.Empty(t, sink.entries)
}
