package auth

import (
	"errors"
	"fmt"

	"buildfetch/internal/endpoint"
)

// Error indicates the bearer token could not be validated or
// reissued. It is the only failure category recovered locally (one
// refresh per failed verification); when it surfaces, the refresh has
// already failed too.
type Error struct {
	// Op is the operation that failed ("verify" or "refresh").
	Op string
	// Reason is the underlying error.
	Reason error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("authentication failed during %s: %v", e.Op, e.Reason)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Reason
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var authErr *Error
	return errors.As(err, &authErr)
}

// asEndpointStatus reports whether err is an endpoint status error
// and fills target when it is. Any non-2xx from the verify endpoint
// means "token invalid or missing"; transport and decode failures are
// a different category and must not trigger a refresh.
func asEndpointStatus(err error, target **endpoint.Error) bool {
	return errors.As(err, target) && (*target).Kind == endpoint.KindStatus
}
