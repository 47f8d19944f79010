package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marhaba/models/offer"
	"marhaba/store"
)

func fixtures() []offer.Offer {
	return []offer.Offer{
		{
			ID: "offer-1", ProviderID: 2, Category: offer.CategoryTour, PricePerPerson: offer.Price(1200), Rating: 4.9, Featured: true,
			Title:    offer.LocalizedText{EN: "Tassili n'Ajjer 10-Day Trek", AR: "رحلة 10 أيام في طاسيلي ناجر"},
			Location: offer.LocalizedText{EN: "Djanet", AR: "جانت"},
		},
		{
			ID: "offer-2", ProviderID: 2, Category: offer.CategoryHotel, PricePerNight: offer.Price(250), Rating: 4.8, Featured: true,
			Title:    offer.LocalizedText{EN: "Luxury Stay at Oasis Palace", AR: "إقامة فاخرة في قصر الواحة"},
			Location: offer.LocalizedText{EN: "Taghit", AR: "تاغيت"},
		},
		{
			ID: "offer-3", ProviderID: 5, Category: offer.CategoryGuesthouse, PricePerNight: offer.Price(80), Rating: 4.9,
			Title:    offer.LocalizedText{EN: "Authentic Guesthouse in Ghardaia", AR: "دار ضيافة أصيلة في غرداية"},
			Location: offer.LocalizedText{EN: "Ghardaia", AR: "غرداية"},
		},
		{
			ID: "offer-4", ProviderID: 2, Category: offer.CategoryTour, PricePerPerson: offer.Price(500), Rating: 5.0, Featured: true,
			Title:    offer.LocalizedText{EN: "Assekrem at Sunrise", AR: "أسكرام عند شروق الشمس"},
			Location: offer.LocalizedText{EN: "Tamanrasset", AR: "تمنراست"},
		},
	}
}

func ids(offers []offer.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}

func TestSearch_DefaultsToRatingOrder(t *testing.T) {
	got := Search(fixtures(), Query{}, store.LanguageEN)

	assert.Equal(t, []string{"offer-4", "offer-1", "offer-3", "offer-2"}, ids(got))
}

func TestSearch_MatchesTitleOrLocationInCurrentLanguage(t *testing.T) {
	assert.Equal(t, []string{"offer-3"}, ids(Search(fixtures(), Query{Term: "ghardaia"}, store.LanguageEN)))
	assert.Equal(t, []string{"offer-2"}, ids(Search(fixtures(), Query{Term: "OASIS"}, store.LanguageEN)))
	assert.Equal(t, []string{"offer-1"}, ids(Search(fixtures(), Query{Term: "جانت"}, store.LanguageAR)))
	assert.Empty(t, Search(fixtures(), Query{Term: "Djanet"}, store.LanguageAR))
}

func TestSearch_FiltersCategory(t *testing.T) {
	got := Search(fixtures(), Query{Category: "tour", Sort: SortPriceAsc}, store.LanguageEN)
	assert.Equal(t, []string{"offer-4", "offer-1"}, ids(got))

	got = Search(fixtures(), Query{Category: AllCategories, Sort: SortPriceDesc}, store.LanguageEN)
	assert.Equal(t, []string{"offer-1", "offer-4", "offer-2", "offer-3"}, ids(got))
}

func TestSearch_UnknownSortKeepsOrder(t *testing.T) {
	got := Search(fixtures(), Query{Sort: "newest"}, store.LanguageEN)

	assert.Equal(t, []string{"offer-1", "offer-2", "offer-3", "offer-4"}, ids(got))
}

func TestHomePageSections(t *testing.T) {
	assert.Equal(t, []string{"offer-1", "offer-2", "offer-4"}, ids(Featured(fixtures())))
	assert.Equal(t, []string{"offer-1", "offer-4"}, ids(Tours(fixtures())))
	assert.Equal(t, []string{"offer-3"}, ids(ByProvider(fixtures(), 5)))
}
