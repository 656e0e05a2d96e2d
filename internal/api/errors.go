package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned when an operation needs a refresh token
// and none is stored. No network call is made in that case.
var ErrNotAuthenticated = errors.New("not authenticated")

// Error is a failure reported by the Vita API or by the transport.
// Status 0 means the request never produced an HTTP response
// (connectivity failure).
type Error struct {
	Status int    // HTTP status code, 0 for connectivity failures
	Detail string // Server-supplied detail text, may be empty
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("connection error: %s", e.Detail)
	}
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsUnauthorized reports whether the failure is a 401.
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// Message returns a human-readable message for display. Server detail is
// preferred for statuses where it carries useful context; transient
// failures get a retry-later message. No automatic retry is performed for
// any class.
func (e *Error) Message() string {
	switch {
	case e.Status == 0:
		return "Could not reach the server. Check your connection."
	case e.Status == http.StatusUnauthorized:
		return "Session expired. Please log in again."
	case e.Status == http.StatusForbidden:
		return "You do not have permission to access this resource."
	case e.Status == http.StatusBadRequest,
		e.Status == http.StatusUnprocessableEntity:
		return e.detailOr("Invalid request")
	case e.Status == http.StatusNotFound:
		return e.detailOr("Resource not found")
	case e.Status == http.StatusConflict:
		return e.detailOr("Data conflict")
	case e.Status == http.StatusTooManyRequests:
		return "Too many requests. Wait a moment and try again."
	case e.Status >= 500:
		return "The server is temporarily unavailable. Try again later."
	default:
		return e.detailOr(fmt.Sprintf("Unexpected error (HTTP %d)", e.Status))
	}
}

func (e *Error) detailOr(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// ErrorMessage extracts a display message from any error returned by the
// client, falling back to the raw error text.
func ErrorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return "Session expired. Please log in again."
	}
	return err.Error()
}
