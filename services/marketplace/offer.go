package marketplace

import (
	"marhaba/apperrors"
	"marhaba/i18n"
	"marhaba/models/offer"
	"marhaba/store"
	offerTypes "marhaba/types/offer"
	"marhaba/utils"
)

var defaultPolicy = offer.LocalizedText{
	EN: i18n.T("standardPolicy", store.LanguageEN),
	AR: i18n.T("standardPolicy", store.LanguageAR),
}

// PublishOffer adds a new offer for the session provider and returns to the
// dashboard
func (s *Service) PublishOffer(req offerTypes.OfferCreateRequest) (offer.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider, err := s.sessionProvider(s.State())
	if err != nil {
		return offer.Offer{}, err
	}

	o := offer.Offer{
		ID:          s.newID("offer"),
		ProviderID:  provider.ID,
		Title:       offer.LocalizedText{EN: req.TitleEN, AR: req.TitleAR},
		Description: offer.LocalizedText{EN: req.DescEN, AR: req.DescAR},
		Category:    req.Category,
		Location:    offer.LocalizedText{EN: req.LocationEN, AR: req.LocationAR},
		Images:      utils.SplitList(req.Images),
		IncludedServices: offer.LocalizedList{
			EN: utils.SplitList(req.ServicesEN),
			AR: utils.SplitList(req.ServicesAR),
		},
		CancellationPolicy: offer.LocalizedText{EN: req.PolicyEN, AR: req.PolicyAR},
		Featured:           req.Featured,
	}
	if o.CancellationPolicy.EN == "" && o.CancellationPolicy.AR == "" {
		o.CancellationPolicy = defaultPolicy
	}
	if o.Category == offer.CategoryTour {
		o.PricePerPerson = offer.Price(req.Price)
	} else {
		o.PricePerNight = offer.Price(req.Price)
	}
	o = o.NormalizePrice()

	s.store.Dispatch(store.AddOffer{Offer: o})
	s.store.Dispatch(store.SetPage{Page: store.PageDashboard})
	return o, nil
}

// RequestOfferDeletion opens the delete confirmation for an offer the
// session provider owns
func (s *Service) RequestOfferDeletion(offerID string) error {
	state := s.State()
	provider, err := s.sessionProvider(state)
	if err != nil {
		return err
	}
	if err := ownsOffer(state, offerID, provider.ID); err != nil {
		return err
	}
	s.OpenModal(store.ModalDeleteConfirmation)
	return nil
}

// DeleteOffer removes an offer of the session provider. Bookings and
// inquiries on it are kept and show it as unavailable.
func (s *Service) DeleteOffer(offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	provider, err := s.sessionProvider(state)
	if err != nil {
		return err
	}
	if err := ownsOffer(state, offerID, provider.ID); err != nil {
		if apperrors.Is(err, apperrors.ErrorTypeNotFound) {
			return apperrors.NewNotFoundError("offer not found")
		}
		return err
	}

	s.store.Dispatch(store.DeleteOffer{OfferID: offerID})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalDeleteConfirmation})
	return nil
}
