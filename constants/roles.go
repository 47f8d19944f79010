package constants

import "marhaba/models/user"

// Roles carried in session tokens
const (
	RoleTourist  = string(user.UserTypeTourist)
	RoleProvider = string(user.UserTypeProvider)

	// Special roles
	RoleAny = "any"
)

// AccessCookie holds the session token for browser clients
const AccessCookie = "access"
