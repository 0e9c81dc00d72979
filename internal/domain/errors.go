// domain/errors.go
package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed request value. It maps to a
// client error at the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CategoryError reports a category outside the supported set. It maps to
// a client error at the HTTP boundary.
type CategoryError struct {
	Category  string
	Supported []string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("invalid category '%s'. Supported: %s", e.Category, strings.Join(e.Supported, ", "))
}

// UnitError reports a unit name that does not exist within its category.
// Field tells the caller which side of the conversion was wrong.
type UnitError struct {
	Field     string // "from_unit" or "to_unit"
	Category  string
	Unit      string
	Supported []string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s '%s' not valid for category '%s'. Supported: %s",
		e.Field, e.Unit, e.Category, strings.Join(e.Supported, ", "))
}

// UpstreamError wraps a failure talking to the exchange-rate provider:
// transport errors, non-2xx responses, or responses missing required
// fields. It maps to 502 at the HTTP boundary.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("currency API error: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UpstreamFailure is a logical failure reported by the provider itself
// in an otherwise well-formed response. It maps to 400, carrying the
// provider's message.
type UpstreamFailure struct {
	Message string
}

func (e *UpstreamFailure) Error() string {
	return fmt.Sprintf("currency conversion failed: %s", e.Message)
}
