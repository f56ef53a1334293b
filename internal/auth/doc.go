// Package auth owns the bearer-token verify/refresh state machine
// guarding access to the content catalog.
//
// Validity is never decided locally: every authenticated operation
// re-verifies the token against the verify endpoint, and a rejection
// triggers exactly one issuance call with the fixed client
// credential. Concurrent refreshes coalesce through singleflight so
// only one issuance request is ever in flight. The token itself lives
// in the persisted settings store and is read snapshot-per-call.
package auth
