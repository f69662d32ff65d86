// ABOUTME: Tagged error variants derived from validation results
// ABOUTME: Maps classifications onto structural, degenerate and warning kinds
package validator

import (
	"errors"
	"fmt"

	"github.com/harper/vectorguard/internal/models"
)

// ErrorKind tags a ValidationError with its place in the error taxonomy
type ErrorKind string

// Error kinds
const (
	// KindCriticalStructural covers malformed input and wrong dimensions
	KindCriticalStructural ErrorKind = "critical_structural"
	// KindCriticalDegenerate covers all-zero, mostly-zero, NaN and Inf vectors
	KindCriticalDegenerate ErrorKind = "critical_degenerate"
	// KindWarning covers non-fatal findings; never raised by the monitor
	KindWarning ErrorKind = "warning"
)

// ValidationError is the single error type produced from a ValidationResult
type ValidationError struct {
	Kind      ErrorKind
	IssueType models.IssueType
	Severity  models.Severity
	Details   string
	Context   string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s embedding (%s): %s", e.Context, e.Kind, e.IssueType, e.Details)
	}
	return fmt.Sprintf("%s embedding (%s): %s", e.Kind, e.IssueType, e.Details)
}

// CreateError maps a ValidationResult to its error variant. Valid results
// map to nil. Warnings map to a KindWarning value that callers may inspect
// but the monitor never raises.
func (v *Validator) CreateError(result models.ValidationResult, context string) error {
	if result.IsValid {
		return nil
	}

	kind := KindWarning
	if result.Severity == models.SeverityCritical {
		kind = KindCriticalDegenerate
		if result.IssueType == models.IssueInvalidDimensions {
			kind = KindCriticalStructural
		}
	}

	return &ValidationError{
		Kind:      kind,
		IssueType: result.IssueType,
		Severity:  result.Severity,
		Details:   result.Details,
		Context:   context,
	}
}

// IsStructuralError reports whether err is a structural validation error
func IsStructuralError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == KindCriticalStructural
}

// IsDegenerateError reports whether err is a degenerate-vector error
func IsDegenerateError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == KindCriticalDegenerate
}

// IsWarningError reports whether err is a non-fatal warning value
func IsWarningError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == KindWarning
}
