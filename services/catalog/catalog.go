package catalog

import (
	"slices"
	"strings"

	"marhaba/i18n"
	"marhaba/models/offer"
	"marhaba/store"
)

// SortOrder selects how search results are ordered
type SortOrder string

const (
	SortByRating  SortOrder = "rating"
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
)

// AllCategories disables the category filter
const AllCategories = "all"

// previewSize is how many offers the home page shows per section
const previewSize = 4

// Query describes an offer search
type Query struct {
	Term     string    `query:"q"`
	Category string    `query:"category"`
	Sort     SortOrder `query:"sort"`
}

// Search filters offers whose title or location (in the current language)
// contains the term, restricts them to a category and orders them. An unknown
// sort order keeps the original order.
func Search(offers []offer.Offer, q Query, lang store.Language) []offer.Offer {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	out := make([]offer.Offer, 0, len(offers))
	for _, o := range offers {
		if term != "" &&
			!strings.Contains(strings.ToLower(i18n.Text(o.Title, lang)), term) &&
			!strings.Contains(strings.ToLower(i18n.Text(o.Location, lang)), term) {
			continue
		}
		if q.Category != "" && q.Category != AllCategories && string(o.Category) != q.Category {
			continue
		}
		out = append(out, o)
	}

	sortOrder := q.Sort
	if sortOrder == "" {
		sortOrder = SortByRating
	}
	switch sortOrder {
	case SortByRating:
		slices.SortStableFunc(out, func(a, b offer.Offer) int { return compare(b.Rating, a.Rating) })
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b offer.Offer) int { return compare(a.PriceOf(), b.PriceOf()) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b offer.Offer) int { return compare(b.PriceOf(), a.PriceOf()) })
	}
	return out
}

// Featured returns the first featured offers for the home page
func Featured(offers []offer.Offer) []offer.Offer {
	return firstN(offers, previewSize, func(o offer.Offer) bool { return o.Featured })
}

// Tours returns the first tours for the home page
func Tours(offers []offer.Offer) []offer.Offer {
	return firstN(offers, previewSize, func(o offer.Offer) bool { return o.Category == offer.CategoryTour })
}

// ByProvider returns the offers a provider published
func ByProvider(offers []offer.Offer, providerID int64) []offer.Offer {
	return firstN(offers, len(offers), func(o offer.Offer) bool { return o.ProviderID == providerID })
}

func firstN(offers []offer.Offer, n int, keep func(offer.Offer) bool) []offer.Offer {
	out := make([]offer.Offer, 0, n)
	for _, o := range offers {
		if len(out) == n {
			break
		}
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
