package endpoint

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind categorizes a request failure so callers can react to the
// category without string matching.
type ErrorKind int

const (
	// KindTransport indicates a network-level failure: the request
	// never produced an HTTP response (DNS, connect, TLS, timeout).
	KindTransport ErrorKind = iota
	// KindStatus indicates the server responded with a non-2xx status.
	KindStatus
	// KindDecode indicates the response body did not match the
	// expected shape.
	KindDecode
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindStatus:
		return "status error"
	case KindDecode:
		return "decode error"
	default:
		return "endpoint error"
	}
}

// Error is the failure type returned by Client operations. It wraps
// the underlying error and records the HTTP status when one was
// received.
type Error struct {
	// Kind categorizes the failure.
	Kind ErrorKind
	// URL is the request URL that failed.
	URL string
	// StatusCode is the HTTP status code, when Kind is KindStatus.
	StatusCode int
	// Reason is the underlying error, if any.
	Reason error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: %s returned status %d", e.Kind, e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Reason)
	}
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Reason
}

// IsAuthStatus reports whether the error is a status failure that
// indicates missing or invalid credentials.
func (e *Error) IsAuthStatus() bool {
	return e.Kind == KindStatus &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// IsKind reports whether err is an endpoint Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var epErr *Error
	return errors.As(err, &epErr) && epErr.Kind == kind
}
