package api

import "fmt"

// Operation names used in error reporting and logs.
const (
	OpAnalyzeText  = "analyze text"
	OpAnalyzeImage = "analyze image"
)

// RequestError means the backend responded with a non-success status.
type RequestError struct {
	Op         string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

// NetworkError means the transport itself failed: connection refused, DNS,
// timeout, or an unreadable response. The user-facing message path does not
// distinguish it from RequestError; the split exists for logs and doctor.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
