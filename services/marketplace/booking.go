package marketplace

import (
	"marhaba/apperrors"
	"marhaba/models/booking"
	"marhaba/services/pricing"
	"marhaba/store"
	bookingTypes "marhaba/types/booking"
)

type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionReject  Decision = "reject"
)

// OpenOffer navigates to the details page of an offer
func (s *Service) OpenOffer(offerID string) error {
	if _, ok := s.State().Offer(offerID); !ok {
		return apperrors.NewNotFoundError("offer not found")
	}
	s.Navigate(store.PageOfferDetails, store.OfferRef{OfferID: offerID})
	return nil
}

// OpenBooking shows the booking form for an offer
func (s *Service) OpenBooking(offerID string) error {
	if err := s.OpenOffer(offerID); err != nil {
		return err
	}
	s.OpenModal(store.ModalBooking)
	return nil
}

// Quote computes the total the booking form displays
func (s *Service) Quote(req bookingTypes.BookingQuoteRequest) (float64, error) {
	o, ok := s.State().Offer(req.OfferID)
	if !ok {
		return 0, apperrors.NewNotFoundError("offer not found")
	}
	guests := req.Guests
	if guests == 0 {
		guests = 1
	}
	return pricing.Quote(o, guests, req.StartDate, req.EndDate)
}

// SubmitBooking records a pending booking for the session user and moves on
// to the payment step
func (s *Service) SubmitBooking(req bookingTypes.BookingCreateRequest) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	u, err := s.sessionUser(state)
	if err != nil {
		return booking.Booking{}, s.promptLogin(store.ModalBooking)
	}
	if req.Guests < 1 {
		return booking.Booking{}, apperrors.NewValidationError("at least one guest is required")
	}

	o, ok := state.Offer(req.OfferID)
	if !ok {
		return booking.Booking{}, apperrors.NewNotFoundError("offer not found")
	}

	b := booking.Booking{
		ID:          s.newID("booking"),
		OfferID:     o.ID,
		UserID:      u.ID,
		Guests:      req.Guests,
		Companions:  req.Companions,
		Status:      booking.BookingStatusPending,
		BookingDate: s.today(),
	}
	if b.Companions == nil {
		b.Companions = []booking.Companion{}
	}

	if o.Category.IsStay() {
		if err := validateStay(req); err != nil {
			return booking.Booking{}, err
		}
		start, end := req.StartDate, req.EndDate
		b.StartDate, b.EndDate = &start, &end
		if req.RoomType != "" {
			roomType := req.RoomType
			b.RoomType = &roomType
		}
	}

	total, err := pricing.Quote(o, req.Guests, req.StartDate, req.EndDate)
	if err != nil {
		return booking.Booking{}, err
	}
	b.TotalPrice = total

	s.store.Dispatch(store.AddBooking{Booking: b})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalBooking})
	s.store.Dispatch(store.OpenModal{Modal: store.ModalPayment})

	return b, nil
}

func validateStay(req bookingTypes.BookingCreateRequest) error {
	if req.StartDate == "" || req.EndDate == "" {
		return apperrors.NewValidationError("check-in and check-out dates are required")
	}
	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		return err
	}
	if pricing.Nights(start, end) < 1 {
		return apperrors.NewValidationError("check-out must be after check-in")
	}
	return nil
}

// Pay simulates the payment of a pending booking, confirming it and showing
// the receipt
func (s *Service) Pay(bookingID string) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	u, err := s.sessionUser(state)
	if err != nil {
		return booking.Booking{}, err
	}
	b, ok := state.Booking(bookingID)
	if !ok {
		return booking.Booking{}, apperrors.NewNotFoundError("booking not found")
	}
	if b.UserID != u.ID {
		return booking.Booking{}, apperrors.NewForbiddenError("booking belongs to another user")
	}
	if b.Status != booking.BookingStatusPending {
		return booking.Booking{}, apperrors.NewConflictError("booking is " + b.Status.String() + ", only pending bookings can be paid")
	}

	s.store.Dispatch(store.UpdateBookingStatus{BookingID: b.ID, Status: booking.BookingStatusConfirmed})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalPayment})
	s.store.Dispatch(store.SetPage{Page: store.PageReceipt, Payload: store.BookingRef{BookingID: b.ID}})

	b.Status = booking.BookingStatusConfirmed
	return b, nil
}

// DecideBooking lets the provider owning the offer confirm or reject a
// pending booking
func (s *Service) DecideBooking(bookingID string, decision Decision) (booking.Booking, error) {
	var next booking.BookingStatus
	switch decision {
	case DecisionConfirm:
		next = booking.BookingStatusConfirmed
	case DecisionReject:
		next = booking.BookingStatusRejected
	default:
		return booking.Booking{}, apperrors.NewValidationError("decision must be confirm or reject")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	provider, err := s.sessionProvider(state)
	if err != nil {
		return booking.Booking{}, err
	}
	b, ok := state.Booking(bookingID)
	if !ok {
		return booking.Booking{}, apperrors.NewNotFoundError("booking not found")
	}
	if err := ownsOffer(state, b.OfferID, provider.ID); err != nil {
		return booking.Booking{}, err
	}
	if b.Status != booking.BookingStatusPending {
		return booking.Booking{}, apperrors.NewConflictError("booking is " + b.Status.String() + ", only pending bookings can be decided")
	}

	s.store.Dispatch(store.UpdateBookingStatus{BookingID: b.ID, Status: next})
	b.Status = next
	return b, nil
}

// RequestCancellation opens the cancel confirmation for a booking the
// session user owns
func (s *Service) RequestCancellation(bookingID string) error {
	state := s.State()
	if _, err := s.cancellable(state, bookingID); err != nil {
		return err
	}
	s.OpenModal(store.ModalCancelBooking)
	return nil
}

// CancelBooking cancels a pending or confirmed booking of the session user
// and closes the confirmation
func (s *Service) CancelBooking(bookingID string) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.cancellable(s.State(), bookingID)
	if err != nil {
		return booking.Booking{}, err
	}
	s.store.Dispatch(store.UpdateBookingStatus{BookingID: b.ID, Status: booking.BookingStatusCancelled})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalCancelBooking})

	b.Status = booking.BookingStatusCancelled
	return b, nil
}

func (s *Service) cancellable(state store.AppState, bookingID string) (booking.Booking, error) {
	u, err := s.sessionUser(state)
	if err != nil {
		return booking.Booking{}, err
	}
	b, ok := state.Booking(bookingID)
	if !ok {
		return booking.Booking{}, apperrors.NewNotFoundError("booking not found")
	}
	if b.UserID != u.ID {
		return booking.Booking{}, apperrors.NewForbiddenError("booking belongs to another user")
	}
	if !b.Status.CanBeCancelled() {
		return booking.Booking{}, apperrors.NewConflictError("booking is " + b.Status.String() + " and cannot be cancelled")
	}
	return b, nil
}

func ownsOffer(state store.AppState, offerID string, providerID int64) error {
	o, ok := state.Offer(offerID)
	if !ok {
		return apperrors.NewNotFoundError("offer no longer available")
	}
	if o.ProviderID != providerID {
		return apperrors.NewForbiddenError("offer belongs to another provider")
	}
	return nil
}
