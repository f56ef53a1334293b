// Package catalog queries the remote content catalog for live
// manifest pointers and labeled content-build metadata. All queries
// are authenticated: the token is validated (and refreshed when
// needed) before every request, and the bearer header is rebuilt from
// the settings store per call.
package catalog
