package booking

import (
	"fmt"

	"marhaba/models/booking"
)

// BookingCreateRequest represents the request payload for creating a booking
type BookingCreateRequest struct {
	OfferID    string              `json:"offer_id" validate:"required"`
	StartDate  string              `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string              `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Guests     int                 `json:"guests" validate:"required,min=1"`
	Companions []booking.Companion `json:"companions"`
	RoomType   string              `json:"room_type" validate:"omitempty,max=100"`
}

// BookingQuoteRequest asks for the total of a booking before submitting it
type BookingQuoteRequest struct {
	OfferID   string `json:"offer_id" validate:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Guests    int    `json:"guests"`
}

func (b BookingCreateRequest) Validate() error {
	if b.OfferID == "" {
		return fmt.Errorf("offer_id is required")
	}
	if b.Guests < 1 {
		return fmt.Errorf("guests must be at least 1")
	}
	if (b.StartDate == "") != (b.EndDate == "") {
		return fmt.Errorf("start_date and end_date must be given together")
	}
	for i, c := range b.Companions {
		if c.Name == "" {
			return fmt.Errorf("companion %d name is required", i+1)
		}
		if c.Age < 0 {
			return fmt.Errorf("companion %d age is invalid", i+1)
		}
	}
	return nil
}

func (b BookingQuoteRequest) Validate() error {
	if b.OfferID == "" {
		return fmt.Errorf("offer_id is required")
	}
	return nil
}
