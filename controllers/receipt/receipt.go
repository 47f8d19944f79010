package receipt

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"marhaba/logger"
	"marhaba/services/receipt"
	"marhaba/utils"
)

const exportTimeout = 30 * time.Second

type ReceiptController struct {
	svc *receipt.Service
}

func NewReceiptController(svc *receipt.Service) *ReceiptController {
	return &ReceiptController{svc: svc}
}

func (rc *ReceiptController) Show(c *fiber.Ctx) error {
	r, err := rc.svc.Receipt(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, "Failed to load receipt", err)
	}
	return utils.Success(c, r.Title, r)
}

// Export downloads a receipt that has been shown
func (rc *ReceiptController) Export(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	res, err := rc.svc.Export(ctx, c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, "Failed to export receipt", err)
	}
	logger.Success("Receipt exported: " + res.FileName)
	return utils.Success(c, res.Message, res)
}
