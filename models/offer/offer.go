package offer

// Category is the kind of product an offer sells
type Category string

const (
	CategoryTour       Category = "tour"
	CategoryHotel      Category = "hotel"
	CategoryGuesthouse Category = "guesthouse"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryTour, CategoryHotel, CategoryGuesthouse:
		return true
	default:
		return false
	}
}

// IsStay returns true for categories priced per night and booked with a date range
func (c Category) IsStay() bool {
	return c == CategoryHotel || c == CategoryGuesthouse
}

// GetAllCategories returns all offer categories
func GetAllCategories() []Category {
	return []Category{CategoryTour, CategoryHotel, CategoryGuesthouse}
}

// LocalizedText holds the English and Arabic variants of a text field
type LocalizedText struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// LocalizedList holds the English and Arabic variants of a list field
type LocalizedList struct {
	EN []string `json:"en"`
	AR []string `json:"ar"`
}

// ItineraryItem is one day of a tour program
type ItineraryItem struct {
	Day         int           `json:"day"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
}

// Offer is a bookable product published by a provider.
// Exactly one of PricePerNight and PricePerPerson is set: tours are priced
// per person, hotels and guesthouses per night.
type Offer struct {
	ID                 string          `json:"id"`
	ProviderID         int64           `json:"provider_id"`
	Title              LocalizedText   `json:"title"`
	Description        LocalizedText   `json:"description"`
	Category           Category        `json:"category"`
	Location           LocalizedText   `json:"location"`
	PricePerNight      *float64        `json:"price_per_night,omitempty"`
	PricePerPerson     *float64        `json:"price_per_person,omitempty"`
	Images             []string        `json:"images"`
	Rating             float64         `json:"rating"`
	Reviews            int             `json:"reviews"`
	IncludedServices   LocalizedList   `json:"included_services"`
	CancellationPolicy LocalizedText   `json:"cancellation_policy"`
	Itinerary          []ItineraryItem `json:"itinerary,omitempty"`
	Featured           bool            `json:"featured,omitempty"`
}

// PriceOf reports whichever of the two price fields is present, 0 if neither is
func (o Offer) PriceOf() float64 {
	if o.PricePerNight != nil {
		return *o.PricePerNight
	}
	if o.PricePerPerson != nil {
		return *o.PricePerPerson
	}
	return 0
}

// HasConsistentPrice checks that exactly one price is set and that it matches the category
func (o Offer) HasConsistentPrice() bool {
	if o.Category == CategoryTour {
		return o.PricePerPerson != nil && o.PricePerNight == nil
	}
	return o.PricePerNight != nil && o.PricePerPerson == nil
}

// NormalizePrice moves the offer's price into the field its category uses and
// clears the other one.
func (o Offer) NormalizePrice() Offer {
	if o.HasConsistentPrice() {
		return o
	}
	price := o.PriceOf()
	if o.Category == CategoryTour && o.PricePerPerson != nil {
		price = *o.PricePerPerson
	}
	if o.Category.IsStay() && o.PricePerNight != nil {
		price = *o.PricePerNight
	}
	o.PricePerNight = nil
	o.PricePerPerson = nil
	if o.Category == CategoryTour {
		o.PricePerPerson = &price
	} else {
		o.PricePerNight = &price
	}
	return o
}

// Price returns a pointer to v, for building offers in place
func Price(v float64) *float64 {
	return &v
}

// Find returns the offer with the given id
func Find(offers []Offer, id string) (Offer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}
