package store

import (
	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/models/user"
)

// ActionType names a state transition request
type ActionType string

const (
	ActionSetInitialData      ActionType = "SET_INITIAL_DATA"
	ActionSetLanguage         ActionType = "SET_LANGUAGE"
	ActionSetTheme            ActionType = "SET_THEME"
	ActionSetUser             ActionType = "SET_USER"
	ActionRegisterUser        ActionType = "REGISTER_USER"
	ActionAddOffer            ActionType = "ADD_OFFER"
	ActionDeleteOffer         ActionType = "DELETE_OFFER"
	ActionAddBooking          ActionType = "ADD_BOOKING"
	ActionUpdateBookingStatus ActionType = "UPDATE_BOOKING_STATUS"
	ActionAddInquiry          ActionType = "ADD_INQUIRY"
	ActionAddReplyToInquiry   ActionType = "ADD_REPLY_TO_INQUIRY"
	ActionSetPage             ActionType = "SET_PAGE"
	ActionOpenModal           ActionType = "OPEN_MODAL"
	ActionCloseModal          ActionType = "CLOSE_MODAL"
)

// Action is a request for a state transition. The set of actions is closed:
// only the types declared in this file implement it.
type Action interface {
	Type() ActionType
	isAction()
}

// SetInitialData replaces the collections wholesale. Users is only replaced
// when non-nil.
type SetInitialData struct {
	Users     []user.User       `json:"users,omitempty"`
	Offers    []offer.Offer     `json:"offers"`
	Bookings  []booking.Booking `json:"bookings"`
	Inquiries []inquiry.Inquiry `json:"inquiries"`
}

type SetLanguage struct {
	Language Language `json:"language"`
}

type SetTheme struct {
	Theme Theme `json:"theme"`
}

// SetUser sets the session user; a nil User clears the session
type SetUser struct {
	User *user.User `json:"user"`
}

type RegisterUser struct {
	User user.User `json:"user"`
}

type AddOffer struct {
	Offer offer.Offer `json:"offer"`
}

type DeleteOffer struct {
	OfferID string `json:"offer_id"`
}

type AddBooking struct {
	Booking booking.Booking `json:"booking"`
}

type UpdateBookingStatus struct {
	BookingID string                `json:"booking_id"`
	Status    booking.BookingStatus `json:"status"`
}

type AddInquiry struct {
	Inquiry inquiry.Inquiry `json:"inquiry"`
}

type AddReplyToInquiry struct {
	InquiryID string `json:"inquiry_id"`
	Answer    string `json:"answer"`
}

// SetPage navigates; a nil Payload means the page needs no data
type SetPage struct {
	Page    Page        `json:"page"`
	Payload PagePayload `json:"payload,omitempty"`
}

type OpenModal struct {
	Modal ModalName `json:"modal"`
}

type CloseModal struct {
	Modal ModalName `json:"modal"`
}

func (SetInitialData) Type() ActionType      { return ActionSetInitialData }
func (SetLanguage) Type() ActionType         { return ActionSetLanguage }
func (SetTheme) Type() ActionType            { return ActionSetTheme }
func (SetUser) Type() ActionType             { return ActionSetUser }
func (RegisterUser) Type() ActionType        { return ActionRegisterUser }
func (AddOffer) Type() ActionType            { return ActionAddOffer }
func (DeleteOffer) Type() ActionType         { return ActionDeleteOffer }
func (AddBooking) Type() ActionType          { return ActionAddBooking }
func (UpdateBookingStatus) Type() ActionType { return ActionUpdateBookingStatus }
func (AddInquiry) Type() ActionType          { return ActionAddInquiry }
func (AddReplyToInquiry) Type() ActionType   { return ActionAddReplyToInquiry }
func (SetPage) Type() ActionType             { return ActionSetPage }
func (OpenModal) Type() ActionType           { return ActionOpenModal }
func (CloseModal) Type() ActionType          { return ActionCloseModal }

func (SetInitialData) isAction()      {}
func (SetLanguage) isAction()         {}
func (SetTheme) isAction()            {}
func (SetUser) isAction()             {}
func (RegisterUser) isAction()        {}
func (AddOffer) isAction()            {}
func (DeleteOffer) isAction()         {}
func (AddBooking) isAction()          {}
func (UpdateBookingStatus) isAction() {}
func (AddInquiry) isAction()          {}
func (AddReplyToInquiry) isAction()   {}
func (SetPage) isAction()             {}
func (OpenModal) isAction()           {}
func (CloseModal) isAction()          {}
