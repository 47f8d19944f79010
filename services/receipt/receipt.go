package receipt

import (
	"errors"
	"fmt"

	"marhaba/apperrors"
	"marhaba/i18n"
	"marhaba/models/booking"
	"marhaba/store"
)

// ErrIncomplete marks a receipt whose offer or customer is missing
var ErrIncomplete = errors.New("receipt details unavailable")

type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Receipt is the printable summary of a booking in one language
type Receipt struct {
	ContentRef    string                `json:"content_ref"`
	FileName      string                `json:"file_name"`
	Title         string                `json:"title"`
	Brand         string                `json:"brand"`
	Tagline       string                `json:"tagline"`
	Direction     string                `json:"direction"`
	BookingID     string                `json:"booking_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	OfferTitle    string                `json:"offer_title"`
	Dates         string                `json:"dates"`
	Guests        int                   `json:"guests"`
	Status        booking.BookingStatus `json:"status"`
	StatusLabel   string                `json:"status_label"`
	Lines         []Line                `json:"lines"`
	Total         float64               `json:"total"`
	TotalLabel    string                `json:"total_label"`
}

// ContentRef names the rendered receipt of a booking for export
func ContentRef(bookingID string) string {
	return "receipt-content-" + bookingID
}

func FileName(bookingID string) string {
	return "receipt-" + bookingID
}

// Build renders the receipt of a booking. A missing booking is NotFound; a
// booking whose offer or customer is gone wraps ErrIncomplete.
func Build(state store.AppState, bookingID string, lang store.Language) (Receipt, error) {
	b, ok := state.Booking(bookingID)
	if !ok {
		return Receipt{}, apperrors.NewNotFoundError(i18n.T("bookingNotFound", lang))
	}
	o, offerOK := state.Offer(b.OfferID)
	u, userOK := state.User(b.UserID)
	if !offerOK || !userOK {
		return Receipt{}, &apperrors.AppError{
			Type:    apperrors.ErrorTypeNotFound,
			Message: i18n.T("receiptError", lang),
			Err:     ErrIncomplete,
		}
	}

	title := i18n.Text(o.Title, lang)
	dates := b.BookingDate
	if b.HasDateRange() {
		dates = *b.StartDate + " - " + *b.EndDate
	}

	return Receipt{
		ContentRef:    ContentRef(b.ID),
		FileName:      FileName(b.ID),
		Title:         i18n.T("bookingReceipt", lang),
		Brand:         i18n.T("marhaba", lang),
		Tagline:       i18n.T("desertTourism", lang),
		Direction:     i18n.Direction(lang),
		BookingID:     b.ID,
		CustomerName:  u.Name,
		CustomerEmail: u.Email,
		OfferTitle:    title,
		Dates:         dates,
		Guests:        b.Guests,
		Status:        b.Status,
		StatusLabel:   i18n.T(b.Status.String(), lang),
		Lines:         []Line{{Label: title, Amount: b.TotalPrice}},
		Total:         b.TotalPrice,
		TotalLabel:    fmt.Sprintf("$%.2f", b.TotalPrice),
	}, nil
}
