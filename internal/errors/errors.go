package errors

import "fmt"

// ErrorCode represents a tenjiban error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"   // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"         // 404
	ErrDuplicateURL     ErrorCode = "DUPLICATE_URL"     // 409
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED" // 422
	ErrInternal         ErrorCode = "INTERNAL"          // 500
)

// BoardError represents a structured error with code, status, and details.
type BoardError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *BoardError {
	return &BoardError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a listing that cannot be found.
func NewNotFound(id string) *BoardError {
	return &BoardError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("event not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewDuplicateURL creates a 409 error when an announce URL was already
// submitted.
func NewDuplicateURL(url string) *BoardError {
	return &BoardError{
		Code:    ErrDuplicateURL,
		Status:  409,
		Message: fmt.Sprintf("an event with announce_url %q already exists", url),
		Details: map[string]any{"announce_url": url},
	}
}

// NewValidationFailed creates a 422 error listing the missing or
// invalid submission fields.
func NewValidationFailed(fields []string) *BoardError {
	return &BoardError{
		Code:    ErrValidationFailed,
		Status:  422,
		Message: fmt.Sprintf("submission has missing or invalid fields: %v", fields),
		Details: map[string]any{"fields": fields},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *BoardError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &BoardError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a BoardError with the given code.
func Is(err error, code ErrorCode) bool {
	if bErr, ok := err.(*BoardError); ok {
		return bErr.Code == code
	}
	return false
}
