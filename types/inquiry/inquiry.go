package inquiry

import (
	"fmt"
	"strings"
)

type InquiryCreateRequest struct {
	OfferID  string `json:"offer_id" validate:"required"`
	Question string `json:"question" validate:"required,min=1"`
}

type InquiryReplyRequest struct {
	Answer string `json:"answer" validate:"required,min=1"`
}

func (r InquiryCreateRequest) Validate() error {
	if r.OfferID == "" {
		return fmt.Errorf("offer_id is required")
	}
	if strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question is required")
	}
	return nil
}

func (r InquiryReplyRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return fmt.Errorf("answer is required")
	}
	return nil
}
