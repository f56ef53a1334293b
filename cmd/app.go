package cmd

import (
	"fmt"
	"os"

	"buildfetch/internal/auth"
	"buildfetch/internal/catalog"
	"buildfetch/internal/cli"
	"buildfetch/internal/config"
	"buildfetch/internal/endpoint"
	"buildfetch/internal/manifest"
	"buildfetch/internal/settings"
	"buildfetch/pkg/logging"
)

// app holds the wired application components shared by all commands.
type app struct {
	cfg     config.Config
	store   *settings.Store
	auth    *auth.Manager
	query   *catalog.Query
	fetcher *manifest.Fetcher
}

// newApp loads configuration, initializes logging, and wires the
// component graph: settings store -> endpoint client -> token manager
// -> catalog query / manifest fetcher.
func newApp() (*app, error) {
	dir := configDir
	if dir == "" {
		dir = config.GetDefaultConfigPathOrPanic()
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logging.Init(logging.ParseLevel(level), os.Stderr)

	store, err := settings.NewStore(dir)
	if err != nil {
		return nil, err
	}
	// Another process (e.g. a desktop launcher sharing the settings
	// file) may replace the token while a long fetch runs; pick that
	// up instead of refreshing redundantly.
	if err := store.Watch(); err != nil {
		logging.Warn("Settings", "Could not watch settings file: %v", err)
	}

	client := endpoint.NewClient()

	manager := auth.NewManager(client, store, auth.Config{
		VerifyURL:       cfg.Catalog.TokenVerifyURL,
		IssueURL:        cfg.Catalog.TokenIssueURL,
		BasicCredential: cfg.Catalog.BasicCredential,
	})

	query := catalog.NewQuery(client, manager, store, catalog.Config{
		LiveManifestURL:  cfg.Catalog.LiveManifestURL,
		ContentBuildsURL: cfg.Catalog.ContentBuildsURL,
	})

	fetcher := manifest.NewFetcher(client, manifest.NewJSONResolver(), manifest.ResolveOptions{
		ChunkBaseURL:  cfg.Catalog.ChunkBaseURL,
		ChunkCacheDir: cfg.Cache.ChunkDir,
	})

	return &app{
		cfg:     cfg,
		store:   store,
		auth:    manager,
		query:   query,
		fetcher: fetcher,
	}, nil
}

// classifyErr converts failures into the CLI error types that carry
// dedicated exit codes, and gives connectivity problems a friendlier
// message.
func (a *app) classifyErr(err error, endpointURL string) error {
	if err == nil {
		return nil
	}
	if cli.IsNetworkError(err) {
		return fmt.Errorf("could not reach %s (check connectivity): %w", endpointURL, err)
	}
	if auth.IsAuthError(err) {
		// No stored token means the tool has never managed to
		// authenticate at all, as opposed to a credential going bad.
		if a.store.Token() == "" {
			return &cli.AuthRequiredError{Endpoint: endpointURL}
		}
		return &cli.AuthFailedError{Reason: err}
	}
	return err
}
