package ftml

import (
	"errors"
	"fmt"
)

// Application error codes. These map domain errors to broad categories that
// callers (CLI, stores) can branch on without string matching.
const (
	ECONFLICT       = "conflict"
	EINTERNAL       = "internal"
	EINVALID        = "invalid"
	ENOTFOUND       = "not_found"
	ENOTIMPLEMENTED = "not_implemented"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ftml error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Reason classifies a semantic extraction failure. Reasons are surfaced in
// diagnostics alongside the attribute key that triggered them.
type Reason string

// Reason codes for semantic extraction errors.
const (
	ReasonMissingAttribute   Reason = "missing_attribute"
	ReasonInvalidValue       Reason = "invalid_value"
	ReasonInvalidURI         Reason = "invalid_uri"
	ReasonNotInContext       Reason = "not_in_context"
	ReasonMismatchedArgument Reason = "mismatched_argument"
	ReasonIncompleteSequence Reason = "incomplete_sequence"
	ReasonDuplicateValue     Reason = "duplicate_value"

	// ReasonInternal covers unexpected non-semantic failures folded into the
	// diagnostics channel.
	ReasonInternal Reason = "internal"
)

// ExtractionError is a semantic rule violation recorded against a single
// annotated element. Extraction never aborts on these; the offending marker
// is treated as absent and the error is appended to the diagnostics list.
type ExtractionError struct {
	Key    AttributeKey
	Reason Reason
	Detail string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ftml: %s: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("ftml: %s: %s: %s", e.Key, e.Reason, e.Detail)
}

// SemanticErrorf constructs an ExtractionError for the given key and reason.
func SemanticErrorf(key AttributeKey, reason Reason, format string, args ...any) *ExtractionError {
	return &ExtractionError{Key: key, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Diagnostics carries the two independent non-fatal channels produced by an
// extraction run: tree-builder level warnings (malformed HTML recovered from)
// and typed semantic rule violations.
type Diagnostics struct {
	Warnings []string           `json:"warnings,omitempty"`
	Errors   []*ExtractionError `json:"errors,omitempty"`
}

// Warnf appends a formatted warning.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Report appends a semantic error. Non-ExtractionError values are wrapped
// with ReasonInternal so the channel stays uniform.
func (d *Diagnostics) Report(err error) {
	if err == nil {
		return
	}
	var xe *ExtractionError
	if errors.As(err, &xe) {
		d.Errors = append(d.Errors, xe)
		return
	}
	d.Errors = append(d.Errors, &ExtractionError{Reason: ReasonInternal, Detail: err.Error()})
}
