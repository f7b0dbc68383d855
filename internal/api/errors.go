// Package api is a thin client for the recruiting backend. It attaches the
// bearer token, targets one base URL resolved at startup, and classifies
// failures; it never retries and never navigates.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ServerError is a non-2xx response. Body carries the server's error payload
// verbatim when one was returned.
type ServerError struct {
	Op     string
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: server returned %d", e.Op, e.Status)
}

// RequestError is a transport-level failure: the request never produced a
// usable response.
type RequestError struct {
	Op    string
	Cause error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsUnauthorized reports whether err is a 401 from the server. Callers treat
// it as the signal to clear the session and redirect to login.
func IsUnauthorized(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == http.StatusUnauthorized
}

// ErrorMessage extracts the displayable string for err: the server's own
// payload when one exists, the fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Body != "" {
		return se.Body
	}
	return fallback
}
