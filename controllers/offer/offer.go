package offer

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/apperrors"
	"marhaba/logger"
	"marhaba/services/catalog"
	"marhaba/services/marketplace"
	"marhaba/types"
	offerTypes "marhaba/types/offer"
	"marhaba/utils"
)

type OfferController struct {
	svc *marketplace.Service
}

func NewOfferController(svc *marketplace.Service) *OfferController {
	return &OfferController{svc: svc}
}

// Index searches the catalog: ?q=&category=&sort=
func (oc *OfferController) Index(c *fiber.Ctx) error {
	var q catalog.Query
	if err := c.QueryParser(&q); err != nil {
		return utils.ErrorResponse(c, "Invalid query", apperrors.NewValidationError("Invalid query parameters"))
	}
	state := oc.svc.State()
	return utils.Success(c, "Offers fetched successfully", catalog.Search(state.Offers, q, state.Language))
}

func (oc *OfferController) Featured(c *fiber.Ctx) error {
	return utils.Success(c, "Featured offers fetched successfully", catalog.Featured(oc.svc.State().Offers))
}

func (oc *OfferController) Tours(c *fiber.Ctx) error {
	return utils.Success(c, "Tours fetched successfully", catalog.Tours(oc.svc.State().Offers))
}

func (oc *OfferController) Show(c *fiber.Ctx) error {
	state := oc.svc.State()
	o, ok := state.Offer(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Offer not found",
			Status:  fiber.StatusNotFound,
		})
	}
	return utils.Success(c, "Offer fetched successfully", catalog.Describe(state, o, state.Language))
}

// Open navigates to the offer details page
func (oc *OfferController) Open(c *fiber.Ctx) error {
	if err := oc.svc.OpenOffer(c.Params("id")); err != nil {
		return utils.ErrorResponse(c, "Failed to open offer", err)
	}
	return utils.Success(c, "Offer opened", oc.svc.State().Navigation)
}

// Book opens the booking form for the offer
func (oc *OfferController) Book(c *fiber.Ctx) error {
	if err := oc.svc.OpenBooking(c.Params("id")); err != nil {
		return utils.ErrorResponse(c, "Failed to open booking", err)
	}
	return utils.Success(c, "Booking form opened", oc.svc.State().Modals)
}

func (oc *OfferController) Store(c *fiber.Ctx) error {
	var req offerTypes.OfferCreateRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid offer", err)
	}

	o, err := oc.svc.PublishOffer(req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to publish offer", err)
	}

	logger.Success("Offer published successfully. id: " + o.ID)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Offer added successfully!",
		Status:  fiber.StatusCreated,
		Data:    o,
	})
}

// RequestDelete opens the delete confirmation
func (oc *OfferController) RequestDelete(c *fiber.Ctx) error {
	if err := oc.svc.RequestOfferDeletion(c.Params("id")); err != nil {
		return utils.ErrorResponse(c, "Failed to request offer deletion", err)
	}
	return utils.Success(c, "Confirm deletion", oc.svc.State().Modals)
}

func (oc *OfferController) Destroy(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := oc.svc.DeleteOffer(id); err != nil {
		return utils.ErrorResponse(c, "Failed to delete offer", err)
	}
	logger.Success("Offer deleted successfully. id: " + id)
	return utils.Success(c, "Offer deleted successfully", nil)
}
