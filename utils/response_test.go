package utils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"marhaba/apperrors"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperrors.NewNotFoundError("x"):      fiber.StatusNotFound,
		apperrors.NewValidationError("x"):    fiber.StatusBadRequest,
		apperrors.NewConflictError("x"):      fiber.StatusConflict,
		apperrors.NewUnauthorizedError("x"):  fiber.StatusUnauthorized,
		apperrors.NewForbiddenError("x"):     fiber.StatusForbidden,
		apperrors.NewExternalError("x", nil): fiber.StatusBadGateway,
		errors.New("boom"):                   fiber.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, StatusFor(err), err.Error())
	}
}

type taggedRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Guests int    `json:"guests" validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(taggedRequest{Email: "a@b.com", Guests: 1}))

	err := ValidateStruct(taggedRequest{Email: "not-an-email", Guests: 1})
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "email failed email")

	err = ValidateStruct(taggedRequest{Email: "a@b.com"})
	assert.Contains(t, err.Error(), "guests failed min=1")
}
