package middleware

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"marhaba/constants"
	"marhaba/logger"
	"marhaba/services/auth"
	"marhaba/store"
	"marhaba/types"
)

// Authenticator verifies session tokens against the store's session user
type Authenticator struct {
	tokens *auth.TokenIssuer
	store  *store.Store
}

func NewAuthenticator(tokens *auth.TokenIssuer, st *store.Store) *Authenticator {
	return &Authenticator{tokens: tokens, store: st}
}

// RequireRoles allows access to sessions with any of the given roles
func (a *Authenticator) RequireRoles(roles ...string) fiber.Handler {
	return a.IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid session
func (a *Authenticator) RequireAuthentication() fiber.Handler {
	return a.IsAuthenticated([]string{constants.RoleAny})
}

// OptionalAuthentication lets guests through without claims. A request that
// carries a token is checked like RequireAuthentication.
func (a *Authenticator) OptionalAuthentication() fiber.Handler {
	authenticated := a.RequireAuthentication()
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" && c.Cookies(constants.AccessCookie) == "" {
			return c.Next()
		}
		return authenticated(c)
	}
}

// IsAuthenticated is a middleware that checks for a valid JWT token
func (a *Authenticator) IsAuthenticated(requiredRoles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractToken(c)
		if err != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: err,
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, parseErr := a.tokens.Parse(token)
		if parseErr != nil {
			logger.Error("JWT verification failed", parseErr)
			return sessionExpired(c)
		}

		// a token outlives a logout or a login as someone else
		session := a.store.GetState().CurrentUser
		if session == nil || session.ID != claims.UserID {
			return sessionExpired(c)
		}

		if !hasRole(claims, requiredRoles) {
			logger.Warning("Access denied - insufficient permissions")
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// CurrentClaims returns the claims stored by IsAuthenticated
func CurrentClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals("user").(*auth.Claims)
	return claims, ok
}

func extractToken(c *fiber.Ctx) (string, string) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return "", "Invalid authorization header format"
		}
		return tokenParts[1], ""
	}

	token := c.Cookies(constants.AccessCookie)
	if token == "" {
		return "", "Authorization token missing"
	}
	return token, ""
}

func hasRole(claims *auth.Claims, requiredRoles []string) bool {
	if slices.Contains(requiredRoles, constants.RoleAny) {
		return true
	}
	return slices.Contains(requiredRoles, string(claims.Role))
}

func sessionExpired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: "Session expired. Login again.",
		Status:  fiber.StatusUnauthorized,
	})
}
