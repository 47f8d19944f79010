package receipt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/apperrors"
	"marhaba/database/seeders"
	"marhaba/i18n"
	"marhaba/models/booking"
	"marhaba/store"
)

func seeded() *store.Store {
	st := store.New(store.InitialState())
	st.Dispatch(seeders.InitialData())
	return st
}

func loginAs(t *testing.T, st *store.Store, id int64) {
	t.Helper()
	u, ok := st.GetState().User(id)
	require.True(t, ok)
	st.Dispatch(store.SetUser{User: &u})
}

func TestBuild_StayReceipt(t *testing.T) {
	r, err := Build(seeded().GetState(), "booking-1", store.LanguageEN)
	require.NoError(t, err)

	assert.Equal(t, "Ahmed Ali", r.CustomerName)
	assert.Equal(t, "Luxury Stay at Oasis Palace", r.OfferTitle)
	assert.Equal(t, "2024-09-10 - 2024-09-15", r.Dates)
	assert.Equal(t, 2, r.Guests)
	assert.Equal(t, 1250.0, r.Total)
	assert.Equal(t, "$1250.00", r.TotalLabel)
	assert.Equal(t, "ltr", r.Direction)
	assert.Equal(t, "receipt-booking-1", r.FileName)
	require.Len(t, r.Lines, 1)
	assert.Equal(t, r.OfferTitle, r.Lines[0].Label)
}

func TestBuild_TourUsesBookingDate(t *testing.T) {
	r, err := Build(seeded().GetState(), "booking-2", store.LanguageAR)
	require.NoError(t, err)

	assert.Equal(t, "2024-07-22", r.Dates)
	assert.Equal(t, "رحلة 10 أيام في طاسيلي ناجر", r.OfferTitle)
	assert.Equal(t, "rtl", r.Direction)
	assert.Equal(t, i18n.T("pending", store.LanguageAR), r.StatusLabel)
}

func TestBuild_Errors(t *testing.T) {
	st := seeded()

	_, err := Build(st.GetState(), "booking-404", store.LanguageEN)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotFound))
	assert.False(t, errors.Is(err, ErrIncomplete))

	st.Dispatch(store.DeleteOffer{OfferID: "offer-2"})
	_, err = Build(st.GetState(), "booking-1", store.LanguageEN)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), i18n.T("receiptError", store.LanguageEN))

	st.Dispatch(store.AddBooking{Booking: booking.Booking{ID: "booking-x", OfferID: "offer-1", UserID: 42}})
	_, err = Build(st.GetState(), "booking-x", store.LanguageEN)
	assert.ErrorIs(t, err, ErrIncomplete, "unknown customer")
}

func TestSimulatedExporter(t *testing.T) {
	e := NewSimulatedExporter(nil)

	_, err := e.Export(context.Background(), "receipt-content-booking-1", "receipt-booking-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotFound))

	e.Register("receipt-content-booking-1")
	res, err := e.Export(context.Background(), "receipt-content-booking-1", "receipt-booking-1")
	require.NoError(t, err)
	assert.True(t, res.Simulated)
	assert.Equal(t, "receipt-booking-1.pdf", res.FileName)
	assert.Equal(t, i18n.T("pdfSimulated", store.LanguageEN), res.Message)

	_, err = e.Export(context.Background(), "", "x")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Export(ctx, "receipt-content-booking-1", "receipt-booking-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_ExportAfterViewing(t *testing.T) {
	st := seeded()
	st.Dispatch(store.SetLanguage{Language: store.LanguageAR})
	exporter := NewSimulatedExporter(func() store.Language { return st.GetState().Language })
	svc := NewService(st, exporter)
	loginAs(t, st, 1)

	_, err := svc.Export(context.Background(), "booking-1")
	assert.Error(t, err, "nothing rendered yet")

	r, err := svc.Receipt("booking-1")
	require.NoError(t, err)
	assert.Equal(t, "rtl", r.Direction)

	res, err := svc.Export(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, i18n.T("pdfSimulated", store.LanguageAR), res.Message)
}

func TestService_ReceiptAccess(t *testing.T) {
	st := seeded()
	svc := NewService(st, NewSimulatedExporter(func() store.Language { return store.LanguageEN }))

	_, err := svc.Receipt("booking-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeUnauthorized))

	// booking-1 belongs to tourist 1 and is on an offer of provider 2
	loginAs(t, st, 3)
	_, err = svc.Receipt("booking-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeForbidden))
	_, err = svc.Export(context.Background(), "booking-1")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeForbidden))

	loginAs(t, st, 2)
	r, err := svc.Receipt("booking-1")
	require.NoError(t, err)
	assert.Equal(t, "tourist@example.com", r.CustomerEmail)

	loginAs(t, st, 1)
	_, err = svc.Receipt("booking-1")
	assert.NoError(t, err)

	_, err = svc.Receipt("booking-404")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeNotFound))
}
