package tamsclient

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNetworkFailure    ErrorKind = "network_failure"
	KindHTTPError         ErrorKind = "http_error"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindUnknown           ErrorKind = "unknown"
)

// NetworkError wraps transport-level failures: refused connections, DNS,
// timeouts and cancelled contexts.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("tams %s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("tams %s: request failed with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("tams %s: request failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

// MalformedResponseError is returned when a 2xx body does not have the
// expected shape.
type MalformedResponseError struct {
	Op     string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tams %s: malformed response: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("tams %s: malformed response: %s", e.Op, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// KindOf classifies err into the client error taxonomy.
func KindOf(err error) ErrorKind {
	var netErr *NetworkError
	var httpErr *HTTPError
	var malformedErr *MalformedResponseError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &httpErr):
		return KindHTTPError
	case errors.As(err, &malformedErr):
		return KindMalformedResponse
	case errors.As(err, &netErr):
		return KindNetworkFailure
	default:
		return KindUnknown
	}
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
