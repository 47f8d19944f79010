package user

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/middleware"
	"marhaba/store"
	"marhaba/types"
	"marhaba/utils"
)

type UserController struct {
	store *store.Store
}

func NewUserController(st *store.Store) *UserController {
	return &UserController{store: st}
}

// GetUserInfo returns the session user behind the token
func (uc *UserController) GetUserInfo(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid token data",
			Status:  fiber.StatusUnauthorized,
		})
	}

	u, ok := uc.store.GetState().User(claims.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}
	return utils.Success(c, "User fetched successfully", fiber.Map{
		"user":       u,
		"expires_at": claims.ExpiresAt.Time,
	})
}
