package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marhaba/apperrors"
	"marhaba/models/offer"
)

func TestQuote_TourChargesPerPerson(t *testing.T) {
	tour := offer.Offer{Category: offer.CategoryTour, PricePerPerson: offer.Price(500)}

	total, err := Quote(tour, 3, "", "")

	require.NoError(t, err)
	assert.Equal(t, 1500.0, total)
}

func TestQuote_HotelChargesPerNight(t *testing.T) {
	hotel := offer.Offer{Category: offer.CategoryHotel, PricePerNight: offer.Price(250)}

	total, err := Quote(hotel, 2, "2024-09-10", "2024-09-15")

	require.NoError(t, err)
	assert.Equal(t, 1250.0, total)
}

func TestQuote_ReversedRangeCostsNothing(t *testing.T) {
	guesthouse := offer.Offer{Category: offer.CategoryGuesthouse, PricePerNight: offer.Price(80)}

	total, err := Quote(guesthouse, 1, "2024-09-15", "2024-09-10")

	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestQuote_Validation(t *testing.T) {
	tour := offer.Offer{Category: offer.CategoryTour, PricePerPerson: offer.Price(500)}
	hotel := offer.Offer{Category: offer.CategoryHotel, PricePerNight: offer.Price(250)}

	_, err := Quote(tour, 0, "", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation))

	_, err = Quote(hotel, 1, "", "2024-09-15")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation))

	_, err = Quote(hotel, 1, "10/09/2024", "2024-09-15")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation))
}

func TestNights_CountsCalendarDays(t *testing.T) {
	start := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, Nights(start, start.AddDate(0, 0, 5)))
	assert.Equal(t, 0, Nights(start, start))
	assert.Equal(t, 1, Nights(start, start.Add(30*time.Hour)))
}
