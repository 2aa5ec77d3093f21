package domain

import (
	"fmt"
	"strings"
)

// Violation records a single failed rule on a single field. Param carries the
// rule's bound where one exists (e.g. the minimum length).
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError aggregates every violation found in a payload, not just the
// first. It is caller-fixable and surfaced verbatim; never a server error.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Rule))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldFailed reports whether any violation names the given field.
func (e *ValidationError) FieldFailed(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
