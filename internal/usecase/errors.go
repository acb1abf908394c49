package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"medicompare/internal/domain/entity"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrHospitalNotFound  = errors.New("hospital not found")
	ErrResultNotInSearch = errors.New("hospital and treatment are not part of the last search")
	ErrGuardRedirect     = errors.New("screen is not reachable yet")
)

// Validation fields
const (
	FieldPhone     = "phone"
	FieldOTP       = "otp"
	FieldCity      = "city"
	FieldTreatment = "treatment"
	FieldBudget    = "budget"
)

// ValidationError carries user-facing messages keyed by input field.
// It is an expected outcome of user input, not a fault.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// GuardError reports that a screen's entry condition failed and where to go instead
type GuardError struct {
	Decision entity.GuardDecision
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s: %s redirects to %s", ErrGuardRedirect, e.Decision.Screen, e.Decision.RedirectTo)
}

func (e *GuardError) Unwrap() error {
	return ErrGuardRedirect
}
