package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("request rejected")
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a non-2xx answer from the backend. Detail holds the backend's
// "detail" field verbatim (a message string or the raw JSON of a validation
// error list).
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// Unwrap exposes the sentinel matching the status code.
func (e *APIError) Unwrap() error {
	return mapStatus(e.StatusCode)
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return ErrUnavailable
	case code >= 400:
		return ErrBadRequest
	default:
		return nil
	}
}
