package inquiry

// Inquiry is a tourist's question about an offer. The offer's provider
// attaches an answer once.
type Inquiry struct {
	ID       string  `json:"id"`
	OfferID  string  `json:"offer_id"`
	UserID   int64   `json:"user_id"`
	Question string  `json:"question"`
	Answer   *string `json:"answer,omitempty"`
	Date     string  `json:"date"`
}

// IsAnswered returns true if the provider already replied
func (i Inquiry) IsAnswered() bool {
	return i.Answer != nil
}

// Find returns the inquiry with the given id
func Find(inquiries []Inquiry, id string) (Inquiry, bool) {
	for _, i := range inquiries {
		if i.ID == id {
			return i, true
		}
	}
	return Inquiry{}, false
}
