package curves

import (
	"fmt"
)

// ErrorCategory groups curve errors by the kind of failure.
type ErrorCategory string

const (
	ErrorCategoryCapability ErrorCategory = "capability"
	ErrorCategoryParameter  ErrorCategory = "parameter"
	ErrorCategoryArithmetic ErrorCategory = "arithmetic"
	ErrorCategoryLookup     ErrorCategory = "lookup"
)

// CurveError is a structured error carrying a category and a stable
// code alongside the human-readable message. Callers match on the
// sentinel values below with errors.Is, or on whole categories with
// IsErrorCategory.
type CurveError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Details  string
	Cause    error
}

// Error implements the error interface.
func (e *CurveError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *CurveError) Unwrap() error {
	return e.Cause
}

// Is matches errors by category and code, so that detailed copies of a
// sentinel still satisfy errors.Is against it.
func (e *CurveError) Is(target error) bool {
	t, ok := target.(*CurveError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithDetails returns a copy of the error with details attached.
func (e *CurveError) WithDetails(format string, args ...any) *CurveError {
	clone := *e
	clone.Details = fmt.Sprintf(format, args...)
	return &clone
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *CurveError) WithCause(cause error) *CurveError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// NewCurveError creates a new structured curve error.
func NewCurveError(category ErrorCategory, code, message string) *CurveError {
	return &CurveError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// IsErrorCategory reports whether err is a CurveError of the given
// category.
func IsErrorCategory(err error, category ErrorCategory) bool {
	if curveErr, ok := err.(*CurveError); ok {
		return curveErr.Category == category
	}
	return false
}

var (
	// ErrNotImplemented signals an operation intentionally unsupported
	// for the curve's family. Use a different code path; the error is
	// never transient.
	ErrNotImplemented = NewCurveError(
		ErrorCategoryCapability, "NOT_IMPLEMENTED",
		"operation not supported for this curve family")

	// ErrNoSuchPoint signals that no point on the curve has the
	// requested x-coordinate.
	ErrNoSuchPoint = NewCurveError(
		ErrorCategoryArithmetic, "NO_SUCH_POINT",
		"no point on the curve has this x-coordinate")

	// ErrNonResidue signals that a value has no square root mod p.
	ErrNonResidue = NewCurveError(
		ErrorCategoryArithmetic, "NON_RESIDUE",
		"value is not a quadratic residue modulo p")

	// ErrInvalidParameters signals malformed curve parameters.
	ErrInvalidParameters = NewCurveError(
		ErrorCategoryParameter, "INVALID_PARAMETERS",
		"curve parameters are invalid")

	// ErrInvalidPoint signals a malformed point argument.
	ErrInvalidPoint = NewCurveError(
		ErrorCategoryParameter, "INVALID_POINT",
		"point is invalid")

	// ErrUnknownCurve signals a failed named-curve lookup.
	ErrUnknownCurve = NewCurveError(
		ErrorCategoryLookup, "UNKNOWN_CURVE",
		"curve name is not registered")
)
