package booking

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/i18n"
	"marhaba/logger"
	"marhaba/middleware"
	"marhaba/services/marketplace"
	"marhaba/store"
	"marhaba/types"
	bookingTypes "marhaba/types/booking"
	"marhaba/utils"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	svc *marketplace.Service
}

// NewBookingController creates a new booking controller
func NewBookingController(svc *marketplace.Service) *BookingController {
	return &BookingController{svc: svc}
}

// Quote returns the total for a prospective booking
func (bc *BookingController) Quote(c *fiber.Ctx) error {
	var req bookingTypes.BookingQuoteRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid quote request", err)
	}
	total, err := bc.svc.Quote(req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to quote booking", err)
	}
	return utils.Success(c, "Quote computed", fiber.Map{"total_price": total})
}

// Store creates a pending booking for the session user. A caller without a
// token is sent to the login modal.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	if _, ok := middleware.CurrentClaims(c); !ok {
		return utils.ErrorResponse(c, "Booking needs a session", bc.svc.PromptLogin(store.ModalBooking))
	}

	var req bookingTypes.BookingCreateRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid booking request", err)
	}

	b, err := bc.svc.SubmitBooking(req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to create booking", err)
	}

	logger.Success("Booking created successfully. id: " + b.ID)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created successfully",
		Status:  fiber.StatusCreated,
		Data:    b,
	})
}

// Pay simulates the payment and confirms the booking
func (bc *BookingController) Pay(c *fiber.Ctx) error {
	b, err := bc.svc.Pay(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, "Payment failed", err)
	}
	logger.Success("Booking paid successfully. id: " + b.ID)
	return utils.Success(c, i18n.T("paymentSuccess", bc.svc.State().Language), b)
}

func (bc *BookingController) Confirm(c *fiber.Ctx) error {
	return bc.decide(c, marketplace.DecisionConfirm)
}

func (bc *BookingController) Reject(c *fiber.Ctx) error {
	return bc.decide(c, marketplace.DecisionReject)
}

func (bc *BookingController) decide(c *fiber.Ctx, decision marketplace.Decision) error {
	b, err := bc.svc.DecideBooking(c.Params("id"), decision)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to update booking", err)
	}
	logger.Success("Booking " + b.ID + " is now " + b.Status.String())
	return utils.Success(c, "Booking "+b.Status.String(), b)
}

// RequestCancel opens the cancel confirmation
func (bc *BookingController) RequestCancel(c *fiber.Ctx) error {
	if err := bc.svc.RequestCancellation(c.Params("id")); err != nil {
		return utils.ErrorResponse(c, "Failed to request cancellation", err)
	}
	return utils.Success(c, "Confirm cancellation", bc.svc.State().Modals)
}

func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	b, err := bc.svc.CancelBooking(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, "Failed to cancel booking", err)
	}
	logger.Success("Booking cancelled successfully. id: " + b.ID)
	return utils.Success(c, "Booking cancelled", b)
}
