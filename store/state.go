package store

import (
	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/models/user"
)

// Language is the UI language preference
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageAR
}

// Theme is the UI color scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Page identifies a destination of the navigation state
type Page string

const (
	PageHome         Page = "HOME"
	PageOffers       Page = "OFFERS"
	PageOfferDetails Page = "OFFER_DETAILS"
	PageDashboard    Page = "DASHBOARD"
	PageAddOffer     Page = "ADD_OFFER"
	PageReceipt      Page = "RECEIPT"
)

func (p Page) IsValid() bool {
	switch p {
	case PageHome, PageOffers, PageOfferDetails, PageDashboard, PageAddOffer, PageReceipt:
		return true
	}
	return false
}

// PagePayload is the data a destination page needs. The concrete variants are
// OfferRef and BookingRef; pages that need nothing carry a nil payload.
type PagePayload interface {
	isPagePayload()
}

// OfferRef points the offer details page at an offer
type OfferRef struct {
	OfferID string `json:"offer_id"`
}

// BookingRef points the receipt page at a booking
type BookingRef struct {
	BookingID string `json:"booking_id"`
}

func (OfferRef) isPagePayload()   {}
func (BookingRef) isPagePayload() {}

// Navigation is the active page and its payload
type Navigation struct {
	Page    Page        `json:"page"`
	Payload PagePayload `json:"payload"`
}

// OfferID returns the referenced offer when the payload is an OfferRef
func (n Navigation) OfferID() (string, bool) {
	ref, ok := n.Payload.(OfferRef)
	return ref.OfferID, ok
}

// BookingID returns the referenced booking when the payload is a BookingRef
func (n Navigation) BookingID() (string, bool) {
	ref, ok := n.Payload.(BookingRef)
	return ref.BookingID, ok
}

// ModalName identifies one of the modal dialogs
type ModalName string

const (
	ModalAuth               ModalName = "auth"
	ModalBooking            ModalName = "booking"
	ModalPayment            ModalName = "payment"
	ModalInquiry            ModalName = "inquiry"
	ModalYoutube            ModalName = "youtube"
	ModalDeleteConfirmation ModalName = "deleteConfirmation"
	ModalCancelBooking      ModalName = "cancelBooking"
)

// Modals holds the visibility flag of every modal. Flags are independent:
// several modals may be open at the same time.
type Modals struct {
	Auth               bool `json:"auth"`
	Booking            bool `json:"booking"`
	Payment            bool `json:"payment"`
	Inquiry            bool `json:"inquiry"`
	Youtube            bool `json:"youtube"`
	DeleteConfirmation bool `json:"deleteConfirmation"`
	CancelBooking      bool `json:"cancelBooking"`
}

// flag returns a pointer to the named flag, nil for unknown names
func (m *Modals) flag(name ModalName) *bool {
	switch name {
	case ModalAuth:
		return &m.Auth
	case ModalBooking:
		return &m.Booking
	case ModalPayment:
		return &m.Payment
	case ModalInquiry:
		return &m.Inquiry
	case ModalYoutube:
		return &m.Youtube
	case ModalDeleteConfirmation:
		return &m.DeleteConfirmation
	case ModalCancelBooking:
		return &m.CancelBooking
	default:
		return nil
	}
}

// IsOpen reports the flag of the named modal; unknown names are closed
func (m Modals) IsOpen(name ModalName) bool {
	if f := m.flag(name); f != nil {
		return *f
	}
	return false
}

// AppState is the whole application state. Values returned by the store are
// snapshots: the reducer never mutates a slice it has already published.
type AppState struct {
	Language    Language          `json:"language"`
	Theme       Theme             `json:"theme"`
	CurrentUser *user.User        `json:"current_user"`
	Users       []user.User       `json:"users"`
	Offers      []offer.Offer     `json:"offers"`
	Bookings    []booking.Booking `json:"bookings"`
	Inquiries   []inquiry.Inquiry `json:"inquiries"`
	Navigation  Navigation        `json:"navigation"`
	Modals      Modals            `json:"modals"`
}

// InitialState is the state before any data has been seeded
func InitialState() AppState {
	return AppState{
		Language:   LanguageEN,
		Theme:      ThemeLight,
		Navigation: Navigation{Page: PageHome},
	}
}

// Offer looks up an offer by id
func (s AppState) Offer(id string) (offer.Offer, bool) {
	return offer.Find(s.Offers, id)
}

// Booking looks up a booking by id
func (s AppState) Booking(id string) (booking.Booking, bool) {
	return booking.Find(s.Bookings, id)
}

// Inquiry looks up an inquiry by id
func (s AppState) Inquiry(id string) (inquiry.Inquiry, bool) {
	return inquiry.Find(s.Inquiries, id)
}

// User looks up a user by id
func (s AppState) User(id int64) (user.User, bool) {
	return user.Find(s.Users, id)
}
