package catalog

// ManifestPointer identifies which manifest to fetch for the live
// release channel. It is immutable once constructed and consumed once
// by the manifest fetcher.
type ManifestPointer struct {
	// URL is the manifest download URL, including any distribution
	// query parameters the catalog attached.
	URL string
	// Label is the release channel the pointer belongs to.
	Label string
	// BuildVersion identifies the content build the manifest
	// describes.
	BuildVersion string
	// FileName is the manifest file name, used as the cache file name.
	FileName string
}

// BuildDescriptor describes one platform's content build within a
// label.
type BuildDescriptor struct {
	// Platform is the target platform ("Windows", "Android", ...).
	Platform string
	// BuildVersion identifies the build.
	BuildVersion string
	// ManifestURL is the download location of the build's manifest.
	ManifestURL string
}

// ContentBuilds is the result of a labeled content-builds query.
// Produced per call and never cached.
type ContentBuilds struct {
	// Label is the queried release channel, empty for the default
	// channel.
	Label string
	// Builds holds the per-platform descriptors.
	Builds []BuildDescriptor
}

// assetElement is one entry of a catalog assets response.
type assetElement struct {
	AppName      string `json:"appName"`
	Platform     string `json:"platform"`
	LabelName    string `json:"labelName"`
	BuildVersion string `json:"buildVersion"`
	Manifests    []struct {
		URI         string `json:"uri"`
		QueryParams []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"queryParams"`
	} `json:"manifests"`
}

// assetsResponse is the catalog assets response shape, shared by the
// live-asset and content-builds endpoints.
type assetsResponse struct {
	Elements []assetElement `json:"elements"`
}
