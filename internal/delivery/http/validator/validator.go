// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so Echo can call it via c.Validate.
type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo-compatible request validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
