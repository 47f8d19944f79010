package marketplace

import (
	"strings"

	"marhaba/apperrors"
	"marhaba/models/inquiry"
	"marhaba/store"
	inquiryTypes "marhaba/types/inquiry"
)

// AskQuestion posts a question from the session user about an offer
func (s *Service) AskQuestion(req inquiryTypes.InquiryCreateRequest) (inquiry.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	u, err := s.sessionUser(state)
	if err != nil {
		return inquiry.Inquiry{}, s.promptLogin(store.ModalInquiry)
	}
	if _, ok := state.Offer(req.OfferID); !ok {
		return inquiry.Inquiry{}, apperrors.NewNotFoundError("offer not found")
	}

	q := inquiry.Inquiry{
		ID:       s.newID("inquiry"),
		OfferID:  req.OfferID,
		UserID:   u.ID,
		Question: strings.TrimSpace(req.Question),
		Date:     s.today(),
	}
	s.store.Dispatch(store.AddInquiry{Inquiry: q})
	s.store.Dispatch(store.CloseModal{Modal: store.ModalInquiry})
	return q, nil
}

// Reply answers an inquiry on one of the provider's offers. An inquiry is
// answered once; a second reply is a conflict.
func (s *Service) Reply(inquiryID string, req inquiryTypes.InquiryReplyRequest) (inquiry.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.State()
	provider, err := s.sessionProvider(state)
	if err != nil {
		return inquiry.Inquiry{}, err
	}
	q, ok := state.Inquiry(inquiryID)
	if !ok {
		return inquiry.Inquiry{}, apperrors.NewNotFoundError("inquiry not found")
	}
	if err := ownsOffer(state, q.OfferID, provider.ID); err != nil {
		return inquiry.Inquiry{}, err
	}
	if q.IsAnswered() {
		return inquiry.Inquiry{}, apperrors.NewConflictError("inquiry already answered")
	}

	answer := strings.TrimSpace(req.Answer)
	s.store.Dispatch(store.AddReplyToInquiry{InquiryID: q.ID, Answer: answer})
	q.Answer = &answer
	return q, nil
}
