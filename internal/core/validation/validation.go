// Package validation evaluates declarative per-field constraints against
// input payloads. Rules are the struct tags on the domain types (required,
// min, email, url, e164); the result is either nil or a
// *domain.ValidationError listing every violation keyed by field.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/userhub/accounts-api/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the external field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks every declared rule on the payload and collects all
// failures. A nil return means the payload is acceptable. The function is
// pure: it never mutates its input and has no side effects.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-field error (e.g. a nil payload) is a programming mistake, not
		// caller input; let it surface as-is.
		return err
	}

	violations := make([]domain.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domain.Violation{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return &domain.ValidationError{Violations: violations}
}
