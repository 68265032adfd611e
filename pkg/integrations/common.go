package integrations

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when an upstream resource doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("decode error")
)

// NewHTTPClient creates an HTTP client with the given per-request timeout.
// A non-positive timeout selects the 10 second default.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = httpTimeout
	}
	return &http.Client{Timeout: timeout}
}
