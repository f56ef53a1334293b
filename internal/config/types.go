package config

import (
	"os"
	"path/filepath"
)

// Config is the main application configuration, loaded from
// config.yaml with defaults applied for every omitted field.
type Config struct {
	// Catalog holds the remote catalog and token endpoint contract.
	Catalog CatalogConfig `yaml:"catalog,omitempty"`

	// Cache holds local filesystem cache locations.
	Cache CacheConfig `yaml:"cache,omitempty"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel,omitempty"`
}

// CatalogConfig describes the remote endpoints and the fixed client
// credential used for token issuance. The endpoint paths are exact
// strings at the boundary; overriding them is only useful for staging
// environments and tests.
type CatalogConfig struct {
	// TokenVerifyURL is the GET endpoint that validates the current
	// bearer token.
	TokenVerifyURL string `yaml:"tokenVerifyURL,omitempty"`

	// TokenIssueURL is the POST endpoint that issues a new token via
	// the client_credentials grant.
	TokenIssueURL string `yaml:"tokenIssueURL,omitempty"`

	// LiveManifestURL is the GET endpoint returning the live manifest
	// pointer.
	LiveManifestURL string `yaml:"liveManifestURL,omitempty"`

	// ContentBuildsURL is the GET endpoint returning labeled content
	// builds.
	ContentBuildsURL string `yaml:"contentBuildsURL,omitempty"`

	// BasicCredential is the fixed base64 client credential presented
	// in the Authorization header of token issuance requests.
	BasicCredential string `yaml:"basicCredential,omitempty"`

	// ChunkBaseURL is the public CDN base URL for content chunks
	// referenced by resolved manifests.
	ChunkBaseURL string `yaml:"chunkBaseURL,omitempty"`
}

// CacheConfig describes the local cache locations.
type CacheConfig struct {
	// ManifestDir is the directory for cached manifest files.
	ManifestDir string `yaml:"manifestDir,omitempty"`

	// ChunkDir is the process-wide chunk cache directory handed to the
	// chunk resolver.
	ChunkDir string `yaml:"chunkDir,omitempty"`
}

// Default endpoint contract for the production launcher services.
const (
	defaultTokenVerifyURL = "https://account-public-service-prod.ol.epicgames.com/account/api/oauth/verify"
	defaultTokenIssueURL  = "https://account-public-service-prod.ol.epicgames.com/account/api/oauth/token"

	defaultLiveManifestURL = "https://launcher-public-service-prod06.ol.epicgames.com/launcher/api/public/assets/v2/platform/Windows/namespace/fn/catalogItem/4fe75bbc5a674f4f9b356b5fdfbd6b3a/app/Fortnite/label/Live"

	defaultContentBuildsURL = "https://launcher-public-service-prod06.ol.epicgames.com/launcher/api/public/assets/v2/platform/Windows/namespace/fn/catalogItem/5cb97847cee34581afdbc445400e2f77/app/FortniteContentBuilds/labels"

	defaultChunkBaseURL = "https://epicgames-download1.akamaized.net/Builds/Fortnite/Content/CloudDir/"

	// defaultBasicCredential is the launcher application credential
	// (client_id:client_secret, base64). Token issuance uses the
	// client_credentials grant, so this identifies the application
	// rather than a user.
	defaultBasicCredential = "MzQ0NjkzODBjNWU0NDk4YzhkZmNlNjBkOTg3ZDgxMzk6OTIwOWFjN2I5ZmI0NDViNGJkMTYyM2RkODRmYTlkNGY="
)

// GetDefaultConfig returns the configuration used when no config file
// is present.
func GetDefaultConfig() Config {
	cacheRoot := defaultCacheRoot()
	return Config{
		Catalog: CatalogConfig{
			TokenVerifyURL:   defaultTokenVerifyURL,
			TokenIssueURL:    defaultTokenIssueURL,
			LiveManifestURL:  defaultLiveManifestURL,
			ContentBuildsURL: defaultContentBuildsURL,
			BasicCredential:  defaultBasicCredential,
			ChunkBaseURL:     defaultChunkBaseURL,
		},
		Cache: CacheConfig{
			ManifestDir: filepath.Join(cacheRoot, "manifests"),
			ChunkDir:    filepath.Join(cacheRoot, "chunks"),
		},
		LogLevel: "info",
	}
}

// defaultCacheRoot returns the cache root, preferring the user cache
// directory and falling back to a directory under the working
// directory when it cannot be determined.
func defaultCacheRoot() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "buildfetch")
	}
	return ".buildfetch-cache"
}
