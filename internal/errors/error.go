package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryPlatform Category = "platform"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// NiberError is a structured error with a code, an explanation and a hint.
type NiberError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *NiberError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *NiberError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code. This lets callers match
// against a template such as errors.New("E002") with the standard errors.Is.
func (e *NiberError) Is(target error) bool {
	t, ok := target.(*NiberError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *NiberError) WithSuggestion(s string) *NiberError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *NiberError) WithExample(ex string) *NiberError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *NiberError) WithDetail(d string) *NiberError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *NiberError) Wrap(err error) *NiberError {
	e.Wrapped = err
	return e
}

// New creates a NiberError from a registered error code.
func New(code string) *NiberError {
	template, ok := registry[code]
	if !ok {
		return &NiberError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &NiberError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new NiberError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *NiberError {
	return &NiberError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a NiberError.
func FromError(err error, code string) *NiberError {
	if err == nil {
		return nil
	}
	if ne, ok := err.(*NiberError); ok {
		return ne
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error it wraps, is a NiberError with
// the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if ne, ok := err.(*NiberError); ok && ne.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
