// Package manifest downloads and caches content-build manifests and
// resolves their chunk references.
//
// The cache is deliberately simple: a caller-supplied file path whose
// existence pre-empts any network activity. Manifest URLs are
// content-versioned by the catalog, so a cached file never goes stale
// for its URL; deleting the file is the only invalidation. Downloads
// are unauthenticated because manifests live on the public CDN.
package manifest
