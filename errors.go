package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingPath is returned when a request is issued without a path.
	// No network I/O is attempted.
	ErrMissingPath = errors.New("request path must be set")

	// ErrMissingBody is returned when a POST request is issued with an
	// absent or empty body. No network I/O is attempted.
	ErrMissingBody = errors.New("request body must be set")
)

// ConfigError reports a missing required credential field in [Config].
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config field: %s", e.Field)
}

// StatusError reports a non-2xx HTTP response. Message is the "error" field
// of a JSON error body when present, otherwise the raw body text.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// ThrottledError reports an HTTP 429 that persisted after the single delayed
// retry. A first 429 is never surfaced; it is retried automatically.
type ThrottledError struct {
	Message string
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("HTTP 429 rate limit exceeded after retry: %s", e.Message)
}

// TransportError reports a failed HTTP exchange (connection error, timeout,
// malformed response). It wraps the underlying transport failure.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be decoded, either
// because the precision rewrite produced unexpected text or because the body
// does not match the caller's target type. Snippet carries the surrounding
// response text for diagnosis.
type DecodeError struct {
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response near %q: %v", e.Snippet, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// errorMessage extracts a readable message from an error response body: the
// "error" field of a JSON object when present, the raw body otherwise.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return "(empty error body)"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return string(body)
}
