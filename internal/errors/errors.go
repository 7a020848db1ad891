// Package errors provides a lightweight structured error type (SettingsError)
// for category-based classification of settings evaluation failures in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCategory represents the category of a settings error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External system integration errors
	CategoryVCS ErrorCategory = "vcs"

	// Output and processing errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// SettingsError is a structured error with category, severity, and context
type SettingsError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SettingsError
type ContextFields map[string]any

// Error implements the error interface
func (e *SettingsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping
func (e *SettingsError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SettingsError) WithContext(key string, value any) *SettingsError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SettingsError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SettingsError {
	return &SettingsError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SettingsError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SettingsError {
	return &SettingsError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the first SettingsError in err's chain.
func As(err error) (*SettingsError, bool) {
	var se *SettingsError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := As(err); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a SettingsError
func GetCategory(err error) ErrorCategory {
	if se, ok := As(err); ok {
		return se.Category
	}
	return CategoryInternal
}

// ValidationErrors aggregates the problems found by a validation pass.
type ValidationErrors []*SettingsError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual problems to errors.Is / errors.As.
func (v ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(v))
	for _, e := range v {
		out = append(out, e)
	}
	return out
}

// OrNil returns nil when no problems were collected.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
