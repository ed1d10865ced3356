// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "venuebook/internal/domain/errors"
)

// requestValidator implements echo.Validator.
type requestValidator struct {
	validate *playground.Validate
}

// New creates the Echo validator backed by go-playground/validator.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the validation domain
// error so the central error handler renders a 400.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidation.WithDetails(err.Error())
	}

	return nil
}
