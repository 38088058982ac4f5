// Package errors provides error types with actionable suggestions for mp.
// Every failure in the scan pipeline is terminal, so each error carries
// enough context to be printed as a single human-readable message.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates a scan root or manifest could not be found.
	ErrNotFound = errors.New("not found")
	// ErrParse indicates a manifest that is not valid structured data.
	ErrParse = errors.New("parse error")
	// ErrRead indicates a file or directory could not be read during a walk.
	ErrRead = errors.New("read error")
	// ErrUsage indicates the command line did not match a recognised form.
	ErrUsage = errors.New("usage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrInstall indicates the package manager install command failed.
	ErrInstall = errors.New("install error")
)

// MPError is the base error type for mp errors.
// It wraps an underlying error and provides additional context.
type MPError struct {
	// Kind is the category of error (e.g., ErrNotFound, ErrParse).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, command output).
	Details map[string]string
}

// Error implements the error interface.
func (e *MPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *MPError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *MPError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *MPError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *MPError) WithDetails(key, value string) *MPError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *MPError) WithCause(cause error) *MPError {
	e.Cause = cause
	return e
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *MPError {
	return &MPError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *MPError {
	return &MPError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Format renders any error for the terminal. MPErrors get their full
// formatting; other errors are prefixed like MPError.Format does.
func Format(err error) string {
	if err == nil {
		return ""
	}
	var mpErr *MPError
	if errors.As(err, &mpErr) {
		return mpErr.Format()
	}
	return "Error: " + err.Error() + "\n"
}
