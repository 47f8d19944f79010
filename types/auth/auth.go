package auth

import (
	"fmt"
	"strings"

	"marhaba/models/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// RememberMe extends the session to the long-lived token lifetime
	RememberMe bool `json:"remember_me"`
}

type RegisterRequest struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Password string        `json:"password" validate:"required"`
	Type     user.UserType `json:"type" validate:"required,oneof=tourist provider"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("type must be tourist or provider")
	}
	return nil
}
