package cli

import (
	"errors"
	"net"
	"strings"
)

// AuthRequiredError indicates no bearer token is available and the
// catalog rejected the request. Maps to the auth-required exit code.
type AuthRequiredError struct {
	// Endpoint is the endpoint that required authentication.
	Endpoint string
}

// Error implements the error interface.
func (e *AuthRequiredError) Error() string {
	return "authentication required for " + e.Endpoint
}

// AuthFailedError indicates the token could not be validated and the
// refresh attempt failed too. Maps to the auth-failed exit code.
type AuthFailedError struct {
	// Reason is the underlying authentication error.
	Reason error
}

// Error implements the error interface.
func (e *AuthFailedError) Error() string {
	return "authentication failed: " + e.Reason.Error()
}

// Unwrap returns the underlying error for error chain inspection.
func (e *AuthFailedError) Unwrap() error {
	return e.Reason
}

// IsNetworkError reports whether the error looks like a connectivity
// problem rather than a server-side rejection, for friendlier CLI
// messages.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, pattern := range []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"i/o timeout",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
