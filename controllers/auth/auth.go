package auth

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/constants"
	"marhaba/logger"
	"marhaba/services/auth"
	"marhaba/types"
	authTypes "marhaba/types/auth"
	"marhaba/utils"
)

type AuthController struct {
	svc          *auth.Service
	isProduction bool
}

func NewAuthController(svc *auth.Service, isProduction bool) *AuthController {
	return &AuthController{svc: svc, isProduction: isProduction}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   h.isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid login request", err)
	}

	result, err := h.svc.Login(req)
	if err != nil {
		return utils.ErrorResponse(c, "Failed to start session", err)
	}

	switch result.Status {
	case auth.LoginUserNotFound:
		logger.Warning("Login failed, user not found: " + req.Email)
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found!",
			Status:  fiber.StatusNotFound,
			Data:    result,
		})
	case auth.LoginInvalidCredentials:
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
			Data:    result,
		})
	}

	h.setSecureCookie(c, constants.AccessCookie, result.Token, result.ExpiresIn)
	logger.Success("User logged in successfully. email: " + req.Email)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   result.Token,
		Data:    result,
	})
}

func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.ErrorResponse(c, "Invalid registration request", err)
	}

	result, err := h.svc.SignUp(req)
	if err != nil {
		return utils.ErrorResponse(c, "Registration failed", err)
	}

	h.setSecureCookie(c, constants.AccessCookie, result.Token, result.ExpiresIn)
	logger.Success("User registered successfully. email: " + req.Email)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful",
		Status:  fiber.StatusCreated,
		Token:   result.Token,
		Data:    result,
	})
}

func (h *AuthController) LogOut(c *fiber.Ctx) error {
	h.svc.Logout()
	h.setSecureCookie(c, constants.AccessCookie, "", -1)

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logout successful",
		Status:  fiber.StatusOK,
	})
}
