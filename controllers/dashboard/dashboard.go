package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/middleware"
	"marhaba/models/user"
	"marhaba/services/dashboard"
	"marhaba/store"
	"marhaba/types"
	"marhaba/utils"
)

type DashboardController struct {
	store *store.Store
}

func NewDashboardController(st *store.Store) *DashboardController {
	return &DashboardController{store: st}
}

// Show returns the provider or tourist dashboard, depending on the role in
// the session token
func (dc *DashboardController) Show(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	state := dc.store.GetState()
	if claims.Role == user.UserTypeProvider {
		return utils.Success(c, "Dashboard fetched successfully", dashboard.ForProvider(state, claims.UserID))
	}
	return utils.Success(c, "Dashboard fetched successfully", dashboard.ForTourist(state, claims.UserID))
}
