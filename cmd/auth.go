package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"buildfetch/internal/cli"
)

// authCmd is the parent command for token operations.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage catalog authentication",
	Long: `Inspect and manage the bearer token used for catalog access.

The token is issued with the built-in client credential and stored in
the settings file; it is verified before every catalog query and
refreshed automatically when rejected.`,
}

// authStatusCmd shows the stored token status and verifies it against
// the catalog.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show whether a bearer token is stored, its metadata, and whether
the catalog currently accepts it.`,
	RunE: runAuthStatus,
}

// authRefreshCmd forces a token reissue.
var authRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force a token refresh",
	Long:  `Request a new bearer token from the issuance endpoint and replace the stored one.`,
	RunE:  runAuthRefresh,
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRefreshCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	snap := application.store.Snapshot()
	cli.RenderTokenStatus(os.Stdout, snap.AccessToken != "", snap.TokenType, snap.TokenExpiry, snap.TokenUpdatedAt)

	if snap.AccessToken == "" {
		return nil
	}

	// A local token can be invalidated server-side before its expiry
	// passes, so ask the verify endpoint rather than trusting the
	// stored metadata.
	if err := application.auth.Verify(cmd.Context()); err != nil {
		fmt.Fprintln(os.Stdout, "  Remote:   rejected (will refresh on next use)")
		return nil
	}
	fmt.Fprintln(os.Stdout, "  Remote:   accepted")
	return nil
}

func runAuthRefresh(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	err = cli.RunWithSpinner(quiet, "Requesting new token...", "Token refresh failed", func() error {
		return application.auth.Refresh(cmd.Context())
	})
	if err != nil {
		return application.classifyErr(err, application.cfg.Catalog.TokenIssueURL)
	}

	fmt.Fprintln(os.Stdout, "Token refreshed")
	return nil
}
