package catalog

import (
	"marhaba/i18n"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/store"
)

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Detail is an offer rendered in one language for the details page
type Detail struct {
	Offer              offer.Offer       `json:"offer"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Location           string            `json:"location"`
	CategoryLabel      string            `json:"category_label"`
	Price              float64           `json:"price"`
	PriceUnit          string            `json:"price_unit"`
	ReviewsLabel       string            `json:"reviews_label"`
	IncludedServices   []string          `json:"included_services"`
	CancellationPolicy string            `json:"cancellation_policy"`
	Itinerary          []ItineraryDay    `json:"itinerary"`
	Questions          []inquiry.Inquiry `json:"questions"`
}

// Describe renders an offer with the questions asked about it
func Describe(state store.AppState, o offer.Offer, lang store.Language) Detail {
	unit := "perNight"
	if o.Category == offer.CategoryTour {
		unit = "perPerson"
	}

	d := Detail{
		Offer:              o,
		Title:              i18n.Text(o.Title, lang),
		Description:        i18n.Text(o.Description, lang),
		Location:           i18n.Text(o.Location, lang),
		CategoryLabel:      i18n.CategoryLabel(o.Category, lang),
		Price:              o.PriceOf(),
		PriceUnit:          i18n.T(unit, lang),
		ReviewsLabel:       i18n.T("reviews", lang),
		IncludedServices:   i18n.List(o.IncludedServices, lang),
		CancellationPolicy: i18n.Text(o.CancellationPolicy, lang),
		Itinerary:          []ItineraryDay{},
		Questions:          []inquiry.Inquiry{},
	}
	for _, item := range o.Itinerary {
		d.Itinerary = append(d.Itinerary, ItineraryDay{
			Day:         item.Day,
			Title:       i18n.Text(item.Title, lang),
			Description: i18n.Text(item.Description, lang),
		})
	}
	for _, q := range state.Inquiries {
		if q.OfferID == o.ID {
			d.Questions = append(d.Questions, q)
		}
	}
	return d
}
