package errors

import "fmt"

// ErrorCode represents a ClipStack error code.
type ErrorCode string

const (
	ErrInvalidRequest       ErrorCode = "INVALID_REQUEST"       // 400
	ErrUnsupportedFormat    ErrorCode = "UNSUPPORTED_FORMAT"    // 400
	ErrNotFound             ErrorCode = "NOT_FOUND"             // 404
	ErrClipboardUnavailable ErrorCode = "CLIPBOARD_UNAVAILABLE" // 503
	ErrInternal             ErrorCode = "INTERNAL"              // 500
)

// ClipError represents a structured error with code, status, and details.
type ClipError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ClipError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ClipError {
	return &ClipError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnsupportedFormat creates a 400 error for an unknown export/import format.
func NewUnsupportedFormat(format string) *ClipError {
	return &ClipError{
		Code:    ErrUnsupportedFormat,
		Status:  400,
		Message: fmt.Sprintf("unsupported format: %q", format),
		Details: map[string]any{"format": format},
	}
}

// NewNotFound creates a 404 error for a history position with no entry.
func NewNotFound(position int) *ClipError {
	return &ClipError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("no entry at position %d", position),
		Details: map[string]any{"position": position},
	}
}

// NewClipboardUnavailable creates a 503 error for when the system clipboard
// cannot be reached (missing utility, headless session, timeout).
func NewClipboardUnavailable(reason string) *ClipError {
	return &ClipError{
		Code:    ErrClipboardUnavailable,
		Status:  503,
		Message: fmt.Sprintf("clipboard unavailable: %s", reason),
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ClipError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ClipError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ClipError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*ClipError); ok {
		return cErr.Code == code
	}
	return false
}
