// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by struct tags. Handlers decide how a
// validation failure maps onto the response envelope.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
