package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"marhaba/apperrors"
	"marhaba/logger"
	"marhaba/types"
)

// Validatable is a request body with its own validation
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseBody decodes the JSON body into req and validates it, first with the
// request's own rules and then with its validate tags
func ParseBody(c *fiber.Ctx, req Validatable) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return ValidateStruct(req)
}

// ValidateStruct checks the validate tags of req
func ValidateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("Invalid request body")
	}
	fe := fieldErrs[0]
	if fe.Param() != "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return apperrors.NewValidationError(fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		return fiber.StatusNotFound
	case apperrors.ErrorTypeValidation:
		return fiber.StatusBadRequest
	case apperrors.ErrorTypeConflict:
		return fiber.StatusConflict
	case apperrors.ErrorTypeUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.ErrorTypeForbidden:
		return fiber.StatusForbidden
	case apperrors.ErrorTypeExternal:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse logs err under context and writes it as an ApiResponse.
// Internal errors are reported without their details.
func ErrorResponse(c *fiber.Ctx, context string, err error) error {
	status := StatusFor(err)
	message := "Internal server error"

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= fiber.StatusInternalServerError {
		logger.Error(context, err)
	} else {
		logger.Warning(context + ": " + message)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Message: message,
		Status:  status,
	})
}

// Success writes a 200 ApiResponse
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
		Data:    data,
	})
}
