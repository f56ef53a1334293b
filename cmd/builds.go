package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"buildfetch/internal/catalog"
	"buildfetch/internal/cli"
)

// Builds-specific flags
var buildsLabel string

// buildsCmd lists labeled content builds from the catalog.
var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "List content builds",
	Long: `List the content builds published in the catalog for a label.

The label selects a release channel; with no label the default
channel is queried.

Examples:
  buildfetch builds                        # default channel
  buildfetch builds --label content-live   # a specific channel`,
	RunE: runBuilds,
}

func init() {
	buildsCmd.Flags().StringVar(&buildsLabel, "label", "", "Release channel label (empty for the default channel)")
	rootCmd.AddCommand(buildsCmd)
}

func runBuilds(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	var builds *catalog.ContentBuilds
	err = cli.RunWithSpinner(quiet, "Querying content builds...", "Failed to query content builds", func() error {
		var queryErr error
		builds, queryErr = application.query.ContentBuilds(cmd.Context(), buildsLabel)
		return queryErr
	})
	if err != nil {
		return application.classifyErr(err, application.cfg.Catalog.ContentBuildsURL)
	}

	cli.RenderContentBuilds(os.Stdout, builds)
	return nil
}
