package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"buildfetch/internal/catalog"
	"buildfetch/internal/manifest"
)

func TestRenderContentBuilds_Table(t *testing.T) {
	builds := &catalog.ContentBuilds{
		Label: "content-live",
		Builds: []catalog.BuildDescriptor{
			{Platform: "Windows", BuildVersion: "++Content-1.2", ManifestURL: "https://cdn.example.com/w.manifest"},
			{Platform: "Android", BuildVersion: "++Content-1.2"},
		},
	}

	var buf bytes.Buffer
	RenderContentBuilds(&buf, builds)
	out := buf.String()

	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "Windows")
	assert.Contains(t, out, "Android")
	assert.Contains(t, out, "https://cdn.example.com/w.manifest")
	// Empty manifest URL renders as a placeholder.
	assert.Contains(t, out, "-")
}

func TestRenderContentBuilds_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderContentBuilds(&buf, &catalog.ContentBuilds{})

	assert.Contains(t, buf.String(), "No content builds for label (default)")
}

func TestRenderManifestSummary(t *testing.T) {
	m := &manifest.Manifest{
		Raw:          []byte("raw"),
		Name:         "ContentApp",
		BuildVersion: "++Release-1.0",
		Chunks: []manifest.ChunkRef{
			{GUID: "A", Size: 2048},
		},
		Options: manifest.ResolveOptions{ChunkBaseURL: "https://cdn.example.com/"},
	}

	var buf bytes.Buffer
	RenderManifestSummary(&buf, m, "/tmp/x.manifest", true)
	out := buf.String()

	assert.Contains(t, out, "ContentApp ++Release-1.0")
	assert.Contains(t, out, "cache hit")
	assert.Contains(t, out, "Chunks: 1")
	assert.Contains(t, out, "https://cdn.example.com/")
}

func TestRenderTokenStatus_NeverPrintsToken(t *testing.T) {
	var buf bytes.Buffer
	RenderTokenStatus(&buf, true, "bearer", time.Now().Add(time.Hour), time.Now())

	out := buf.String()
	assert.Contains(t, out, "Bearer token present")
	assert.Contains(t, out, "bearer")
	assert.NotContains(t, strings.ToLower(out), "access_token")
}

func TestFormatByteSize(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{512, "512 B"},
		{2048, "2 KiB"},
		{3 * 1024 * 1024, "3 MiB"},
		{int64(1.5 * 1024 * 1024 * 1024), "1.5 GiB"},
	}

	for _, tc := range tests {
		if got := formatByteSize(tc.n); got != tc.expected {
			t.Errorf("formatByteSize(%d) = %q, want %q", tc.n, got, tc.expected)
		}
	}
}
