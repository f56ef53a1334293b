// Package settings persists key-value state across runs, most
// importantly the bearer token used for catalog authentication.
//
// The Store holds exactly one authoritative token value at a time.
// Components read it snapshot-per-call through Token() and never keep
// private copies, so a refresh performed by the auth layer is visible
// to every subsequent operation. The backing file is written with
// owner-only permissions and can optionally be watched with fsnotify
// so external edits are picked up without a restart.
package settings
