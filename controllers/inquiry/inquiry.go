package inquiry

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/i18n"
	"marhaba/logger"
	"marhaba/middleware"
	"marhaba/services/marketplace"
	"marhaba/store"
	"marhaba/types"
	inquiryTypes "marhaba/types/inquiry"
	"marhaba/utils"
)

type InquiryController struct {
	svc *marketplace.Service
}

func NewInquiryController(svc *marketplace.Service) *InquiryController {
	return &InquiryController{svc: svc}
}

// Store posts a question for the session user. A caller without a token is
// sent to the login modal.
func (ic *InquiryController) Store(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentClaims(c); !ok {
		return utils.ErrorResponse(c, "Question needs a session", ic.svc.PromptLogin(store.ModalInquiry))
	}

	var req inquiryTypes.InquiryCreateRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid question", err)
	}

	q, err := ic.svc.AskQuestion(req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to send question", err)
	}

	logger.Success("Inquiry created successfully. id: " + q.ID)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: i18n.T("questionSent", ic.svc.State().Language),
		Status:  fiber.StatusCreated,
		Data:    q,
	})
}

func (ic *InquiryController) Reply(c *fiber.Ctx) error {
	var req inquiryTypes.InquiryReplyRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid reply", err)
	}

	q, err := ic.svc.Reply(c.Params("id"), req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to reply", err)
	}

	logger.Success("Inquiry answered successfully. id: " + q.ID)
	return utils.Success(c, "Reply sent", q)
}
