package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response decoded at the dispatcher boundary.
// Message prefers the server-supplied message field; callers fall back
// to their own wording when it is empty.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %s (%s)", e.Message, http.StatusText(e.Status))
}

// statusIs reports whether err is an APIError with the given status.
func statusIs(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a 401: invalid credentials or an
// expired/missing token.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden reports whether err is a 403: valid session, insufficient
// role.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409.
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}

// ErrorMessage extracts the server-supplied message from err, or returns
// fallback when err carries none (transport failures, empty bodies).
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
