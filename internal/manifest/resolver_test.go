package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestDoc = `{
  "name": "ContentApp",
  "buildVersion": "++Release-30.10-CL-12345678",
  "chunks": [
    {"guid": "0A1B2C3D", "hash": "f00dfeed", "group": 3, "size": 1048576},
    {"guid": "4E5F6A7B", "hash": "deadbeef", "group": 27, "size": 2097152}
  ]
}`

func TestJSONResolver_Resolve(t *testing.T) {
	opts := ResolveOptions{
		ChunkBaseURL:  "https://cdn.example.com/Builds/CloudDir/",
		ChunkCacheDir: "/var/cache/chunks",
	}

	m, err := NewJSONResolver().Resolve([]byte(manifestDoc), opts)
	require.NoError(t, err)

	assert.Equal(t, "ContentApp", m.Name)
	assert.Equal(t, "++Release-30.10-CL-12345678", m.BuildVersion)
	assert.Equal(t, []byte(manifestDoc), m.Raw)
	assert.Equal(t, opts, m.Options)

	require.Len(t, m.Chunks, 2)
	assert.Equal(t, "https://cdn.example.com/Builds/CloudDir/03/f00dfeed_0A1B2C3D.chunk", m.Chunks[0].URL)
	assert.Equal(t, "https://cdn.example.com/Builds/CloudDir/27/deadbeef_4E5F6A7B.chunk", m.Chunks[1].URL)
	assert.Equal(t, int64(1048576+2097152), m.TotalSize())
}

func TestJSONResolver_MalformedDocument(t *testing.T) {
	_, err := NewJSONResolver().Resolve([]byte("not a manifest"), ResolveOptions{})
	assert.Error(t, err)
}

func TestJSONResolver_MissingBuildVersion(t *testing.T) {
	_, err := NewJSONResolver().Resolve([]byte(`{"name":"x","chunks":[]}`), ResolveOptions{})
	assert.Error(t, err)
}

func TestJSONResolver_NoChunks(t *testing.T) {
	m, err := NewJSONResolver().Resolve([]byte(`{"name":"x","buildVersion":"v1"}`), ResolveOptions{})
	require.NoError(t, err)
	assert.Empty(t, m.Chunks)
	assert.Equal(t, int64(0), m.TotalSize())
}
