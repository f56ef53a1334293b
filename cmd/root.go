package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"buildfetch/internal/cli"
)

// Exit codes for CLI commands. These follow common conventions and
// are stable for scripting.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates authentication is required but not available.
	ExitCodeAuthRequired = 2
	// ExitCodeAuthFailed indicates token verification and refresh both failed.
	ExitCodeAuthFailed = 3
)

// Persistent flags shared by all commands.
var (
	configDir string
	logLevel  string
	quiet     bool
)

// rootCmd represents the base command for the buildfetch application.
var rootCmd = &cobra.Command{
	Use:   "buildfetch",
	Short: "Fetch and cache content-build manifests",
	Long: `buildfetch retrieves content-update manifests from the remote
catalog, caching manifest payloads on disk and resolving their chunk
references against the content CDN.

Catalog access is authenticated with a bearer token that is verified
before every query and refreshed automatically when rejected.`,
	// SilenceUsage prevents cobra from printing the usage message on
	// errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from main
// to inject the build version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.config/buildfetch)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Minimum log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

// Execute is the main entry point for the CLI application, called by
// main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "buildfetch version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the exit code based on the error type, so
// scripts can distinguish auth problems from general failures.
func getExitCode(err error) int {
	var authRequired *cli.AuthRequiredError
	if errors.As(err, &authRequired) {
		return ExitCodeAuthRequired
	}

	var authFailed *cli.AuthFailedError
	if errors.As(err, &authFailed) {
		return ExitCodeAuthFailed
	}

	return ExitCodeError
}
