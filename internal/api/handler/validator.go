package handler

import (
	"github.com/userhub/accounts-api/internal/core/validation"
)

// requestValidator plugs the core validation contract into echo so handlers
// can call c.Validate(req). Violations propagate as *domain.ValidationError
// and are rendered by the central error handler.
type requestValidator struct{}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	return &requestValidator{}
}

// Validate satisfies the echo.Validator interface.
func (*requestValidator) Validate(i any) error {
	return validation.Validate(i)
}
