// Package logging provides slog-backed structured logging with
// subsystem tagging and level filtering.
//
// Initialize once at startup:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
// then log with a subsystem identifier:
//
//	logging.Info("Auth", "token refreshed for client %s", clientID)
//	logging.Error("Manifest", err, "download failed")
//
// Subsystems in use: Auth, Catalog, Endpoint, Manifest, Settings,
// Config. Credential values (bearer tokens, client secrets) must
// never be logged; only endpoint URLs and metadata are.
package logging
