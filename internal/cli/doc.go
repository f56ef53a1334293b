// Package cli provides shared helpers for the command layer: table
// and status rendering, spinner-wrapped operations, and the semantic
// error types the root command maps to exit codes.
package cli
