package sleeper

import "fmt"

// APIError is returned when the Sleeper API responds with a non-2xx status.
// The status code and raw body are preserved verbatim for the caller's report.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, e.Body)
}

// TransportError is returned when the request never produced a usable
// response: DNS or connection failure, timeout, or a body that is not JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
