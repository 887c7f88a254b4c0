package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrBackendDisabled = errors.New("backend is not configured")

// StatusError is a non-2xx reply from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

// ValidationError is a 2xx reply whose body does not have the expected shape.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backend %s returned a malformed body: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err means the backend could not be reached
// or failed on its side, as opposed to rejecting the request.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Kind classifies err for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrBackendDisabled):
		return "disabled"
	case IsUnavailable(err):
		return "unavailable"
	default:
		return "rejected"
	}
}
