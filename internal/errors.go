package internal

import "errors"

var (
	// ErrInvalidKind is returned when a caller supplies an event kind
	// outside the active set. Rejected before any write happens.
	ErrInvalidKind = errors.New("unrecognized event kind")
	// ErrWriteFailed is returned when an append did not durably complete.
	// Never reported as success; the log is left in its previous state.
	ErrWriteFailed = errors.New("event write failed")
)

// AppError is the error shape carried in API responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
