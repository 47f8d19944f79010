package app

import (
	"fmt"

	"marhaba/store"
)

type LanguageRequest struct {
	Language store.Language `json:"language" validate:"required,oneof=en ar"`
}

type ThemeRequest struct {
	Theme store.Theme `json:"theme" validate:"required,oneof=light dark"`
}

// NavigationRequest names a page and its reference: an offer for
// OFFER_DETAILS, a booking for RECEIPT, nothing for the other pages
type NavigationRequest struct {
	Page      store.Page `json:"page" validate:"required,oneof=HOME OFFERS OFFER_DETAILS DASHBOARD ADD_OFFER RECEIPT"`
	OfferID   string     `json:"offer_id,omitempty"`
	BookingID string     `json:"booking_id,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

func (n NavigationRequest) Validate() error {
	if !n.Page.IsValid() {
		return fmt.Errorf("unknown page %q", n.Page)
	}
	switch n.Page {
	case store.PageOfferDetails:
		if n.OfferID == "" || n.BookingID != "" {
			return fmt.Errorf("%s needs offer_id only", n.Page)
		}
	case store.PageReceipt:
		if n.BookingID == "" || n.OfferID != "" {
			return fmt.Errorf("%s needs booking_id only", n.Page)
		}
	default:
		if n.OfferID != "" || n.BookingID != "" {
			return fmt.Errorf("%s takes no offer_id or booking_id", n.Page)
		}
	}
	return nil
}

// Payload converts the request into the page payload union. The payload
// variant follows the page, never the fields that happen to be set.
func (n NavigationRequest) Payload() store.PagePayload {
	switch n.Page {
	case store.PageOfferDetails:
		return store.OfferRef{OfferID: n.OfferID}
	case store.PageReceipt:
		return store.BookingRef{BookingID: n.BookingID}
	default:
		return nil
	}
}

func (c ChatRequest) Validate() error {
	if c.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
