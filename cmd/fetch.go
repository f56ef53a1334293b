package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"buildfetch/internal/catalog"
	"buildfetch/internal/cli"
	"buildfetch/internal/manifest"
)

// Fetch-specific flags
var (
	fetchNoCache   bool
	fetchCachePath string
)

// fetchCmd fetches and resolves the live content manifest, or an
// explicitly given manifest URL.
var fetchCmd = &cobra.Command{
	Use:   "fetch [manifest-url]",
	Short: "Fetch and resolve a content manifest",
	Long: `Fetch a content manifest and resolve its chunk references.

Without arguments, the live manifest pointer is queried from the
catalog (authenticated) and the referenced manifest is downloaded.
With a manifest URL argument, that manifest is fetched directly.

Manifest payloads are cached on disk; a cached file is served without
any network access until it is deleted.

Examples:
  buildfetch fetch                         # fetch the live manifest
  buildfetch fetch https://cdn/x.manifest  # fetch a specific manifest
  buildfetch fetch --no-cache              # bypass the manifest cache`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "Do not read or write the manifest cache")
	fetchCmd.Flags().StringVar(&fetchCachePath, "cache-path", "", "Explicit manifest cache file path")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var manifestURL, cacheName string
	if len(args) == 1 {
		manifestURL = args[0]
		cacheName = filepath.Base(manifestURL)
	} else {
		var pointer *catalog.ManifestPointer
		err := cli.RunWithSpinner(quiet, "Querying live manifest pointer...", "Failed to query manifest pointer", func() error {
			var queryErr error
			pointer, queryErr = application.query.ManifestPointer(ctx)
			return queryErr
		})
		if err != nil {
			return application.classifyErr(err, application.cfg.Catalog.LiveManifestURL)
		}
		manifestURL = pointer.URL
		cacheName = pointer.FileName
	}

	cachePath := fetchCachePath
	if cachePath == "" && !fetchNoCache {
		cachePath = filepath.Join(application.cfg.Cache.ManifestDir, cacheName)
	}
	if fetchNoCache {
		cachePath = ""
	}

	fromCache := false
	if cachePath != "" {
		if _, statErr := os.Stat(cachePath); statErr == nil {
			fromCache = true
		}
	}

	var resolved *manifest.Manifest
	err = cli.RunWithSpinner(quiet, "Fetching manifest...", "Failed to fetch manifest", func() error {
		var fetchErr error
		resolved, fetchErr = application.fetcher.Fetch(ctx, manifestURL, cachePath)
		return fetchErr
	})
	if err != nil {
		return application.classifyErr(err, manifestURL)
	}

	cli.RenderManifestSummary(os.Stdout, resolved, cachePath, fromCache)
	return nil
}
