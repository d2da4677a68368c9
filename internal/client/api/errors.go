package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a remote rejection carrying the HTTP status code.
// It separates retryable failures (server-side or throttling) from
// terminal ones (the request itself is wrong and will never succeed).
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

// Retryable reports whether the same request may succeed later.
// 5xx, 408 and 429 are considered transient; any other 4xx is a
// permanent rejection.
func (e *StatusError) Retryable() bool {
	if e.Code >= 500 {
		return true
	}
	return e.Code == http.StatusRequestTimeout || e.Code == http.StatusTooManyRequests
}

// IsTerminal reports whether err is a remote rejection that will never
// succeed on replay. Transport errors (timeouts, refused connections)
// are not StatusErrors and are always treated as retryable.
func IsTerminal(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return !se.Retryable()
	}
	return false
}
