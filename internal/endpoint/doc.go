// Package endpoint implements the base HTTP client used by the auth,
// catalog, and manifest layers.
//
// A Request describes the call with a closed set of parameter kinds
// (header, query, form body); Client.Do returns the raw body and
// Client.DoJSON decodes it. Failures are categorized *Error values
// (transport, status, decode) so callers can distinguish a network
// outage from a rejected credential from a malformed payload.
package endpoint
