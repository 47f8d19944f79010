package seeders

import (
	"log"

	"marhaba/models/booking"
	"marhaba/models/inquiry"
	"marhaba/models/offer"
	"marhaba/models/user"
	"marhaba/store"
)

func str(s string) *string { return &s }

// Users returns the demo accounts: two tourists and one provider
func Users() []user.User {
	return []user.User{
		{ID: 1, Name: "Ahmed Ali", Email: "tourist@example.com", Type: user.UserTypeTourist},
		{ID: 2, Name: "Sahara Adventures", Email: "provider@example.com", Type: user.UserTypeProvider},
		{ID: 3, Name: "Fatima Zahra", Email: "tourist2@example.com", Type: user.UserTypeTourist},
	}
}

func Offers() []offer.Offer {
	return []offer.Offer{
		{
			ID:         "offer-1",
			ProviderID: 2,
			Title:      offer.LocalizedText{EN: "Tassili n'Ajjer 10-Day Trek", AR: "رحلة 10 أيام في طاسيلي ناجر"},
			Description: offer.LocalizedText{
				EN: "An unforgettable journey through the stunning landscapes of Tassili n'Ajjer National Park. Discover ancient rock art and sleep under the stars.",
				AR: "رحلة لا تُنسى عبر المناظر الطبيعية الخلابة لمنتزه طاسيلي ناجر الوطني. اكتشف الفن الصخري القديم ونم تحت النجوم.",
			},
			Category:       offer.CategoryTour,
			Location:       offer.LocalizedText{EN: "Djanet", AR: "جانت"},
			PricePerPerson: offer.Price(1200),
			Images: []string{
				"https://picsum.photos/seed/desert1/800/600",
				"https://picsum.photos/seed/desert2/800/600",
				"https://picsum.photos/seed/desert3/800/600",
			},
			Rating:   4.9,
			Reviews:  120,
			Featured: true,
			IncludedServices: offer.LocalizedList{
				EN: []string{"4x4 Transport", "Professional Guide", "All Meals", "Camping Gear", "Park Fees"},
				AR: []string{"نقل بالدفع الرباعي", "دليل محترف", "جميع الوجبات", "معدات التخييم", "رسوم المنتزه"},
			},
			CancellationPolicy: offer.LocalizedText{
				EN: "Full refund if canceled 30 days before the trip. 50% refund if canceled 15 days before.",
				AR: "استرداد كامل المبلغ في حالة الإلغاء قبل 30 يومًا من الرحلة. استرداد 50٪ في حالة الإلغاء قبل 15 يومًا.",
			},
			Itinerary: []offer.ItineraryItem{
				{
					Day:         1,
					Title:       offer.LocalizedText{EN: "Arrival in Djanet", AR: "الوصول إلى جانت"},
					Description: offer.LocalizedText{EN: "Welcome and transfer to the campsite.", AR: "الاستقبال والنقل إلى المخيم."},
				},
				{
					Day:         2,
					Title:       offer.LocalizedText{EN: "Discovering Rock Art", AR: "اكتشاف الفن الصخري"},
					Description: offer.LocalizedText{EN: "Visit the famous rock art sites of Jabbaren.", AR: "زيارة مواقع الفن الصخري الشهيرة في جبّارين."},
				},
			},
		},
		{
			ID:         "offer-2",
			ProviderID: 2,
			Title:      offer.LocalizedText{EN: "Luxury Stay at Oasis Palace", AR: "إقامة فاخرة في قصر الواحة"},
			Description: offer.LocalizedText{
				EN: "Experience luxury in the heart of the desert. Our hotel offers premium amenities with breathtaking views of the dunes.",
				AR: "جرب الفخامة في قلب الصحراء. يقدم فندقنا وسائل راحة ممتازة مع إطلالات خلابة على الكثبان الرملية.",
			},
			Category:      offer.CategoryHotel,
			Location:      offer.LocalizedText{EN: "Taghit", AR: "تاغيت"},
			PricePerNight: offer.Price(250),
			Images: []string{
				"https://picsum.photos/seed/hotel1/800/600",
				"https://picsum.photos/seed/hotel2/800/600",
				"https://picsum.photos/seed/hotel3/800/600",
			},
			Rating:   4.8,
			Reviews:  340,
			Featured: true,
			IncludedServices: offer.LocalizedList{
				EN: []string{"Swimming Pool", "Breakfast Included", "Wi-Fi", "Air Conditioning"},
				AR: []string{"مسبح", "شامل الإفطار", "واي فاي", "تكييف هواء"},
			},
			CancellationPolicy: offer.LocalizedText{
				EN: "Free cancellation up to 7 days before check-in.",
				AR: "إلغاء مجاني حتى 7 أيام قبل تاريخ الوصول.",
			},
		},
		{
			ID:         "offer-3",
			ProviderID: 2,
			Title:      offer.LocalizedText{EN: "Authentic Guesthouse in Ghardaia", AR: "دار ضيافة أصيلة في غرداية"},
			Description: offer.LocalizedText{
				EN: "Stay with a local family in a traditional M'zabite house. A unique cultural immersion experience.",
				AR: "أقم مع عائلة محلية في منزل مزابي تقليدي. تجربة انغماس ثقافي فريدة من نوعها.",
			},
			Category:      offer.CategoryGuesthouse,
			Location:      offer.LocalizedText{EN: "Ghardaia", AR: "غرداية"},
			PricePerNight: offer.Price(80),
			Images: []string{
				"https://picsum.photos/seed/house1/800/600",
				"https://picsum.photos/seed/house2/800/600",
			},
			Rating:   4.9,
			Reviews:  95,
			Featured: true,
			IncludedServices: offer.LocalizedList{
				EN: []string{"Home-cooked Dinner & Breakfast", "Guided tour of the city", "Mint Tea Ceremony"},
				AR: []string{"عشاء و فطور منزلي", "جولة مع مرشد في المدينة", "جلسة شاي بالنعناع"},
			},
			CancellationPolicy: offer.LocalizedText{
				EN: "Full refund if canceled 14 days before check-in.",
				AR: "استرداد كامل المبلغ في حالة الإلغاء قبل 14 يومًا من تاريخ الوصول.",
			},
		},
		{
			ID:         "offer-4",
			ProviderID: 2,
			Title:      offer.LocalizedText{EN: "Assekrem at Sunrise", AR: "أسكرام عند شروق الشمس"},
			Description: offer.LocalizedText{
				EN: "A 3-day trip to the Hoggar Mountains, culminating in the breathtaking sunrise view from the Assekrem plateau.",
				AR: "رحلة لمدة 3 أيام إلى جبال الهقار، تبلغ ذروتها بمشهد شروق الشمس الخلاب من هضبة أسكرام.",
			},
			Category:       offer.CategoryTour,
			Location:       offer.LocalizedText{EN: "Tamanrasset", AR: "تمنراست"},
			PricePerPerson: offer.Price(500),
			Images: []string{
				"https://picsum.photos/seed/assekrem1/800/600",
				"https://picsum.photos/seed/assekrem2/800/600",
			},
			Rating:   5.0,
			Reviews:  210,
			Featured: true,
			IncludedServices: offer.LocalizedList{
				EN: []string{"Transport", "Guide", "Meals", "Accommodation in a refuge"},
				AR: []string{"النقل", "مرشد", "وجبات", "إقامة في ملجأ"},
			},
			CancellationPolicy: offer.LocalizedText{
				EN: "50% refund if canceled 15 days before.",
				AR: "استرداد 50٪ في حالة الإلغاء قبل 15 يومًا.",
			},
		},
	}
}

func Bookings() []booking.Booking {
	return []booking.Booking{
		{
			ID:          "booking-1",
			OfferID:     "offer-2",
			UserID:      1,
			StartDate:   str("2024-09-10"),
			EndDate:     str("2024-09-15"),
			Guests:      2,
			Companions:  []booking.Companion{{Name: "Jane Doe", Age: 30}},
			TotalPrice:  1250,
			Status:      booking.BookingStatusConfirmed,
			BookingDate: "2024-07-20",
			RoomType:    str("suite"),
		},
		{
			ID:          "booking-2",
			OfferID:     "offer-1",
			UserID:      3,
			Guests:      1,
			Companions:  []booking.Companion{},
			TotalPrice:  1200,
			Status:      booking.BookingStatusPending,
			BookingDate: "2024-07-22",
		},
	}
}

func Inquiries() []inquiry.Inquiry {
	return []inquiry.Inquiry{
		{
			ID:       "inquiry-1",
			OfferID:  "offer-1",
			UserID:   1,
			Question: "Is it possible to have vegetarian meals during the trek?",
			Answer:   str("Yes, absolutely! We can cater to all dietary requirements. Please let us know in advance."),
			Date:     "2024-07-15",
		},
		{
			ID:       "inquiry-2",
			OfferID:  "offer-2",
			UserID:   3,
			Question: "Do you have an airport shuttle service from Taghit airport?",
			Date:     "2024-07-21",
		},
	}
}

// InitialData is the SET_INITIAL_DATA action carrying the demo catalog
func InitialData() store.SetInitialData {
	return store.SetInitialData{
		Users:     Users(),
		Offers:    Offers(),
		Bookings:  Bookings(),
		Inquiries: Inquiries(),
	}
}

// SeedMarketplace loads the demo catalog into the store once at startup
func SeedMarketplace(st *store.Store) {
	log.Printf("🌱 Seeding marketplace data...")

	data := InitialData()
	if outcome := st.Dispatch(data); outcome != store.Applied {
		log.Printf("❌ Failed to seed marketplace data: %s", outcome)
		return
	}

	log.Printf("📊 Loaded %d users, %d offers, %d bookings, %d inquiries",
		len(data.Users), len(data.Offers), len(data.Bookings), len(data.Inquiries))
	log.Printf("🎉 Seeding completed!")
}
