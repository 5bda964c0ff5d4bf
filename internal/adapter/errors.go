package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. A [*RequestError] unwraps to the one matching its status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrTransport matches every [*TransportError].
	ErrTransport = errors.New("transport failure")
)

// TransportError reports a request that produced no HTTP response: DNS or
// connection failure, timeout, or context cancellation.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Operation, e.Err)
}

// Unwrap exposes the underlying cause, e.g. context.DeadlineExceeded.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// RequestError reports a non-2xx response.
type RequestError struct {
	Operation  string
	StatusCode int
	// Body is the raw response body.
	Body string
	// Message is the "message" field of a JSON body, or the trimmed body.
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Operation, e.StatusCode, e.Message)
}

// Unwrap returns the status sentinel, or nil for statuses without one.
func (e *RequestError) Unwrap() error {
	return statusSentinel(e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0 if err holds no
// [*RequestError].
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// ErrorMessage returns the server message carried by err, or "".
func ErrorMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}
