package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeProtocol   ErrorType = "protocol"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// UIError is a structured error type with context.
type UIError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]any
	Widget      string
	Suggestions []string
}

// Error implements the error interface.
func (e *UIError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Widget != "" {
		parts = append(parts, "widget:"+e.Widget)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if len(e.Suggestions) > 0 {
		result += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *UIError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *UIError) Is(target error) bool {
	var t *UIError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *UIError) WithContext(key string, value any) *UIError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value

	return e
}

// WithWidget adds widget context.
func (e *UIError) WithWidget(widget string) *UIError {
	e.Widget = widget

	return e
}

// WithSuggestions attaches "did you mean" candidates.
func (e *UIError) WithSuggestions(s ...string) *UIError {
	e.Suggestions = append(e.Suggestions, s...)

	return e
}

// Fields flattens the error into key/value pairs for structured logging.
func (e *UIError) Fields() []any {
	fields := []any{"type", string(e.Type), "code", e.Code}
	if e.Widget != "" {
		fields = append(fields, "widget", e.Widget)
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, k, e.Context[k])
	}
	return fields
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeValidation, Code: code, Message: message}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeNotFound, Code: code, Message: message}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *UIError {
	return &UIError{Type: ErrorTypeIO, Code: code, Message: message, Cause: cause}
}

// NewProtocolError creates an error for a malformed client message.
func NewProtocolError(code, message string, cause error) *UIError {
	return &UIError{Type: ErrorTypeProtocol, Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *UIError {
	return &UIError{Type: ErrorTypeConfig, Code: code, Message: message}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *UIError {
	return &UIError{Type: ErrorTypeInternal, Code: code, Message: message, Cause: cause}
}

// TypeOf returns the type of a UIError in err's chain, or "" when there is
// none.
func TypeOf(err error) ErrorType {
	var ue *UIError
	if errors.As(err, &ue) {
		return ue.Type
	}

	return ""
}

// IsNotFound checks if an error reports a missing widget, component or file.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}

// IsValidation checks if an error is validation-related.
func IsValidation(err error) bool {
	return TypeOf(err) == ErrorTypeValidation
}

// ErrorHandler logs errors at a level that fits their type.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...any)
	Warn(ctx context.Context, err error, msg string, fields ...any)
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err. Client mistakes are warnings; everything else is an
// error.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var ue *UIError
	if !errors.As(err, &ue) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch ue.Type {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeProtocol:
		h.logger.Warn(ctx, err, "Request rejected", ue.Fields()...)
	default:
		h.logger.Error(ctx, err, "Error occurred", ue.Fields()...)
	}
}

// Common error codes.
const (
	ErrCodeWidgetNotFound    = "ERR_WIDGET_NOT_FOUND"
	ErrCodeComponentNotFound = "ERR_COMPONENT_NOT_FOUND"
	ErrCodeUnknownEvent      = "ERR_UNKNOWN_EVENT"
	ErrCodeBadEvent          = "ERR_BAD_EVENT"
	ErrCodeRateLimited       = "ERR_RATE_LIMITED"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeFixturesInvalid   = "ERR_FIXTURES_INVALID"
	ErrCodeFixturesRead      = "ERR_FIXTURES_READ"
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodePathTraversal     = "ERR_PATH_TRAVERSAL"
	ErrCodeInternalError     = "ERR_INTERNAL"
)

// Helper functions for common errors

// ErrWidgetNotFound reports an event for a widget the session does not host.
func ErrWidgetNotFound(name string, known []string) *UIError {
	return NewNotFoundError(ErrCodeWidgetNotFound, "widget not found: "+name).
		WithWidget(name).
		WithSuggestions(Suggest(name, known, 2)...)
}

// ErrComponentNotFound reports an unknown showcase component.
func ErrComponentNotFound(name string, known []string) *UIError {
	return NewNotFoundError(ErrCodeComponentNotFound, "component not found: "+name).
		WithSuggestions(Suggest(name, known, 2)...)
}

// ErrUnknownEvent reports an event type a widget does not understand.
func ErrUnknownEvent(widget, event string) *UIError {
	return NewValidationError(ErrCodeUnknownEvent, "unknown event: "+event).WithWidget(widget)
}

// ErrPathTraversal reports a path that escapes its base directory.
func ErrPathTraversal(path string) *UIError {
	return NewConfigError(ErrCodePathTraversal, "path traversal attempt: "+path)
}

// FieldError describes one invalid field.
type FieldError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", fe.Field, fe.Message)
}

// ValidationErrors collects field errors found in one pass.
type ValidationErrors struct {
	Errors []FieldError
}

// Error implements the error interface.
func (ve *ValidationErrors) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return ve.Errors[0].Error()
	}

	msgs := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(ve.Errors), strings.Join(msgs, "; "))
}

// Add records an invalid field.
func (ve *ValidationErrors) Add(field string, value any, message string) {
	ve.Errors = append(ve.Errors, FieldError{Field: field, Value: value, Message: message})
}

// HasErrors returns true if there are any validation errors.
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// Err returns ve wrapped in a UIError with the given code, or nil when
// there is nothing to report.
func (ve *ValidationErrors) Err(code string) error {
	if !ve.HasErrors() {
		return nil
	}
	return &UIError{Type: ErrorTypeValidation, Code: code, Message: "invalid input", Cause: ve}
}
