// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by every handler's Bind+Validate pair.
func New() echo.Validator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate runs struct tag validation and maps failures onto the domain
// validation error so the error middleware answers with a structured body.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
