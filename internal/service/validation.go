package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/etec-portal-api/internal/identity"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
)

// NewValidator builds the shared validator with the portal's custom tags
// registered. portal_email applies the same fixed pattern the original form
// fields used, not the library's RFC-flavored email rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name.
	_ = v.RegisterValidation("portal_email", func(fl validator.FieldLevel) bool {
		return identity.IsEmail(fl.Field().String())
	})
	return v
}

// ValidationError carries per-field messages alongside the typed error so
// handlers can surface them inline next to the offending fields.
type ValidationError struct {
	Fields map[string]string
	err    *appErrors.Error
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.err.Error() }

// Unwrap exposes the typed error for FromError normalization.
func (e *ValidationError) Unwrap() error { return e.err }

func invalid(err error, message string) error {
	return &ValidationError{
		Fields: fieldErrors(err),
		err:    appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message),
	}
}

// fieldErrors flattens validator output into per-field inline messages,
// keeping the original form's error copy.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "portal_email":
			fields[fe.Field()] = "Enter a valid email"
		default:
			fields[fe.Field()] = "Required"
		}
	}
	return fields
}
