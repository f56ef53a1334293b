package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"buildfetch/internal/endpoint"
	"buildfetch/pkg/logging"
)

// Fetcher resolves manifest bytes from the local cache or by
// unauthenticated download, and binds the result to the process chunk
// options via the resolver.
type Fetcher struct {
	client   *endpoint.Client
	resolver ChunkResolver
	options  ResolveOptions
}

// NewFetcher creates a manifest fetcher. The options are fixed for
// the lifetime of the fetcher.
func NewFetcher(client *endpoint.Client, resolver ChunkResolver, options ResolveOptions) *Fetcher {
	return &Fetcher{
		client:   client,
		resolver: resolver,
		options:  options,
	}
}

// Fetch returns the resolved manifest for url.
//
// When cachePath is non-empty and the file exists, the bytes are read
// from disk and no network call is made; the cache file's existence
// is the single source of truth and freshness is never validated
// (manifest URLs are content-versioned, so a cache file never goes
// stale for its URL). A cache hit involves no authentication at all.
//
// On a miss the manifest is downloaded without authentication (the
// CDN is public), and when cachePath is non-empty the bytes are
// persisted best-effort before returning; a failed cache write is
// logged and never fails the fetch.
func (f *Fetcher) Fetch(ctx context.Context, url, cachePath string) (*Manifest, error) {
	data, err := f.manifestBytes(ctx, url, cachePath)
	if err != nil {
		return nil, err
	}

	resolved, err := f.resolver.Resolve(data, f.options)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest from %s: %w", url, err)
	}
	return resolved, nil
}

func (f *Fetcher) manifestBytes(ctx context.Context, url, cachePath string) ([]byte, error) {
	if cachePath != "" {
		data, err := os.ReadFile(cachePath)
		if err == nil {
			logging.Debug("Manifest", "Cache hit for %s at %s (%d bytes)", url, cachePath, len(data))
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read manifest cache %s: %w", cachePath, err)
		}
	}

	data, err := f.client.Do(ctx, endpoint.Request{URL: url})
	if err != nil {
		return nil, err
	}
	logging.Info("Manifest", "Downloaded manifest from %s (%d bytes)", url, len(data))

	if cachePath != "" {
		f.writeCache(cachePath, data)
	}
	return data, nil
}

// writeCache persists manifest bytes through a temp file and rename
// so a concurrent reader never sees a partial file. Best-effort: any
// failure is logged and swallowed.
func (f *Fetcher) writeCache(cachePath string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		logging.Warn("Manifest", "Failed to create cache directory for %s: %v", cachePath, err)
		return
	}

	tmpPath := cachePath + ".tmp-" + uuid.New().String()
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		logging.Warn("Manifest", "Failed to write manifest cache %s: %v", cachePath, err)
		return
	}
	if err := os.Rename(tmpPath, cachePath); err != nil {
		logging.Warn("Manifest", "Failed to finalize manifest cache %s: %v", cachePath, err)
		os.Remove(tmpPath)
		return
	}

	logging.Debug("Manifest", "Cached manifest at %s (%d bytes)", cachePath, len(data))
}
