package app

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/apperrors"
	"marhaba/i18n"
	"marhaba/logger"
	"marhaba/services/marketplace"
	"marhaba/store"
	"marhaba/types"
	appTypes "marhaba/types/app"
	"marhaba/utils"
)

// AppController serves the UI state: preferences, navigation and modals
type AppController struct {
	svc *marketplace.Service
}

func NewAppController(svc *marketplace.Service) *AppController {
	return &AppController{svc: svc}
}

type stateView struct {
	store.AppState
	Direction string `json:"direction"`
}

func view(state store.AppState) stateView {
	return stateView{AppState: state, Direction: i18n.Direction(state.Language)}
}

// GetState returns the current snapshot with the document direction
func (ac *AppController) GetState(c *fiber.Ctx) error {
	return utils.Success(c, "State fetched successfully", view(ac.svc.State()))
}

func (ac *AppController) SetLanguage(c *fiber.Ctx) error {
	var req appTypes.LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Failed to parse request body", apperrors.NewValidationError("Invalid request body"))
	}
	if ac.svc.SetLanguage(req.Language) == store.NoTarget {
		return utils.ErrorResponse(c, "Unsupported language", apperrors.NewValidationError("language must be en or ar"))
	}
	logger.Success("Language set to " + string(req.Language))
	return utils.Success(c, "Language updated", view(ac.svc.State()))
}

func (ac *AppController) SetTheme(c *fiber.Ctx) error {
	var req appTypes.ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Failed to parse request body", apperrors.NewValidationError("Invalid request body"))
	}
	if ac.svc.SetTheme(req.Theme) == store.NoTarget {
		return utils.ErrorResponse(c, "Unsupported theme", apperrors.NewValidationError("theme must be light or dark"))
	}
	return utils.Success(c, "Theme updated", view(ac.svc.State()))
}

func (ac *AppController) Navigate(c *fiber.Ctx) error {
	var req appTypes.NavigationRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid navigation request", err)
	}
	ac.svc.Navigate(req.Page, req.Payload())
	return utils.Success(c, "Navigation updated", ac.svc.State().Navigation)
}

func (ac *AppController) OpenModal(c *fiber.Ctx) error {
	return ac.toggleModal(c, ac.svc.OpenModal)
}

func (ac *AppController) CloseModal(c *fiber.Ctx) error {
	return ac.toggleModal(c, ac.svc.CloseModal)
}

func (ac *AppController) toggleModal(c *fiber.Ctx, apply func(store.ModalName) store.Outcome) error {
	name := store.ModalName(c.Params("name"))
	if apply(name) == store.NoTarget {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Unknown modal " + string(name),
			Status:  fiber.StatusNotFound,
		})
	}
	return utils.Success(c, "Modals updated", ac.svc.State().Modals)
}
