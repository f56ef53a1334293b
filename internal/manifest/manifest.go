package manifest

import "fmt"

// ResolveOptions binds a manifest to the CDN and the local chunk
// cache. They are fixed per process and handed to the resolver with
// every manifest.
type ResolveOptions struct {
	// ChunkBaseURL is the public CDN base URL chunk references are
	// resolved against.
	ChunkBaseURL string
	// ChunkCacheDir is the process-wide directory the resolver uses
	// for cached chunks.
	ChunkCacheDir string
}

// ChunkRef is one content-addressed chunk reference listed by a
// manifest.
type ChunkRef struct {
	// GUID identifies the chunk.
	GUID string
	// Hash is the chunk content hash.
	Hash string
	// Group is the CDN data group the chunk is sharded into.
	Group int
	// Size is the chunk size in bytes.
	Size int64
	// URL is the fully resolved CDN download URL.
	URL string
}

// Manifest is a resolved content manifest: the raw payload plus the
// chunk references needed to reconstruct the build. Lifetime is
// scoped to the caller; nothing here is cached beyond the bytes the
// resolver required.
type Manifest struct {
	// Raw is the manifest payload exactly as fetched.
	Raw []byte
	// Name is the content app the manifest describes.
	Name string
	// BuildVersion identifies the build.
	BuildVersion string
	// Chunks holds the resolved chunk references.
	Chunks []ChunkRef
	// Options are the resolve options the manifest was bound to.
	Options ResolveOptions
}

// TotalSize returns the summed size of all chunk references.
func (m *Manifest) TotalSize() int64 {
	var total int64
	for _, chunk := range m.Chunks {
		total += chunk.Size
	}
	return total
}

// String implements fmt.Stringer for log output.
func (m *Manifest) String() string {
	return fmt.Sprintf("%s %s (%d chunks, %d bytes raw)", m.Name, m.BuildVersion, len(m.Chunks), len(m.Raw))
}

// ChunkResolver turns raw manifest bytes into a resolved Manifest.
// The production resolver parses the distribution manifest format;
// tests substitute doubles.
type ChunkResolver interface {
	Resolve(data []byte, opts ResolveOptions) (*Manifest, error)
}
