package manifest

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// manifestDocument is the JSON manifest format published by the
// distribution pipeline.
type manifestDocument struct {
	Name         string `json:"name"`
	BuildVersion string `json:"buildVersion"`
	Chunks       []struct {
		GUID  string `json:"guid"`
		Hash  string `json:"hash"`
		Group int    `json:"group"`
		Size  int64  `json:"size"`
	} `json:"chunks"`
}

// JSONResolver parses JSON distribution manifests and resolves chunk
// references against the CDN base URL. Chunks are sharded into
// two-digit group directories, mirroring the CDN layout.
type JSONResolver struct{}

// NewJSONResolver creates the default resolver.
func NewJSONResolver() *JSONResolver {
	return &JSONResolver{}
}

// Resolve implements ChunkResolver.
func (r *JSONResolver) Resolve(data []byte, opts ResolveOptions) (*Manifest, error) {
	var doc manifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed manifest document: %w", err)
	}
	if doc.BuildVersion == "" {
		return nil, fmt.Errorf("manifest document missing buildVersion")
	}

	resolved := &Manifest{
		Raw:          data,
		Name:         doc.Name,
		BuildVersion: doc.BuildVersion,
		Options:      opts,
	}

	base := strings.TrimSuffix(opts.ChunkBaseURL, "/")
	for _, chunk := range doc.Chunks {
		resolved.Chunks = append(resolved.Chunks, ChunkRef{
			GUID:  chunk.GUID,
			Hash:  chunk.Hash,
			Group: chunk.Group,
			Size:  chunk.Size,
			URL:   fmt.Sprintf("%s/%s", base, chunkPath(chunk.Group, chunk.Hash, chunk.GUID)),
		})
	}

	return resolved, nil
}

// chunkPath returns the CDN-relative path of a chunk.
func chunkPath(group int, hash, guid string) string {
	return path.Join(fmt.Sprintf("%02d", group), fmt.Sprintf("%s_%s.chunk", hash, guid))
}
