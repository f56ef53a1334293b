package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	"buildfetch/internal/auth"
	"buildfetch/internal/endpoint"
	"buildfetch/pkg/logging"
)

// Authenticator guards catalog access. Every query calls EnsureValid
// before touching a protected endpoint.
type Authenticator interface {
	EnsureValid(ctx context.Context) error
}

// Config holds the catalog endpoint contract.
type Config struct {
	// LiveManifestURL is the live-asset endpoint.
	LiveManifestURL string
	// ContentBuildsURL is the labeled content-builds endpoint.
	ContentBuildsURL string
}

// Query issues authenticated requests against the content catalog.
type Query struct {
	client *endpoint.Client
	authn  Authenticator
	store  auth.TokenStore
	config Config
}

// NewQuery creates a catalog query layer.
func NewQuery(client *endpoint.Client, authn Authenticator, store auth.TokenStore, config Config) *Query {
	return &Query{
		client: client,
		authn:  authn,
		store:  store,
		config: config,
	}
}

// bearerHeader builds the Authorization header from the current
// stored token. Read per call so a refresh performed during
// EnsureValid is observed.
func (q *Query) bearerHeader() http.Header {
	return http.Header{"Authorization": {"bearer " + q.store.Token()}}
}

// ManifestPointer queries the live-asset endpoint and returns the
// pointer to the current live manifest.
func (q *Query) ManifestPointer(ctx context.Context) (*ManifestPointer, error) {
	if err := q.authn.EnsureValid(ctx); err != nil {
		return nil, err
	}

	var resp assetsResponse
	req := endpoint.Request{
		URL:    q.config.LiveManifestURL,
		Header: q.bearerHeader(),
	}
	if err := q.client.DoJSON(ctx, req, &resp); err != nil {
		return nil, err
	}

	pointer, err := pointerFromResponse(&resp)
	if err != nil {
		return nil, err
	}

	logging.Info("Catalog", "Live manifest pointer: label=%s build=%s", pointer.Label, pointer.BuildVersion)
	return pointer, nil
}

// ContentBuilds queries the content-builds endpoint. An empty label
// selects the unfiltered default channel; the query parameter is sent
// either way.
func (q *Query) ContentBuilds(ctx context.Context, label string) (*ContentBuilds, error) {
	if err := q.authn.EnsureValid(ctx); err != nil {
		return nil, err
	}

	var resp assetsResponse
	req := endpoint.Request{
		URL:    q.config.ContentBuildsURL,
		Header: q.bearerHeader(),
		Query:  map[string][]string{"label": {label}},
	}
	if err := q.client.DoJSON(ctx, req, &resp); err != nil {
		return nil, err
	}

	builds := &ContentBuilds{Label: label}
	for _, element := range resp.Elements {
		descriptor := BuildDescriptor{
			Platform:     element.Platform,
			BuildVersion: element.BuildVersion,
		}
		if manifestURL, _, err := manifestLocation(element); err == nil {
			descriptor.ManifestURL = manifestURL
		}
		builds.Builds = append(builds.Builds, descriptor)
	}

	logging.Info("Catalog", "Content builds for label=%q: %d entries", label, len(builds.Builds))
	return builds, nil
}

// pointerFromResponse extracts the manifest pointer from a live-asset
// response. The catalog always lists the live element first.
func pointerFromResponse(resp *assetsResponse) (*ManifestPointer, error) {
	if len(resp.Elements) == 0 {
		return nil, fmt.Errorf("live asset response contains no elements")
	}
	element := resp.Elements[0]

	manifestURL, fileName, err := manifestLocation(element)
	if err != nil {
		return nil, err
	}

	return &ManifestPointer{
		URL:          manifestURL,
		Label:        element.LabelName,
		BuildVersion: element.BuildVersion,
		FileName:     fileName,
	}, nil
}

// manifestLocation builds the full manifest URL from an asset
// element, applying the distribution query parameters the catalog
// attached, and derives the manifest file name from the URL path.
func manifestLocation(element assetElement) (manifestURL, fileName string, err error) {
	if len(element.Manifests) == 0 {
		return "", "", fmt.Errorf("asset element %q lists no manifests", element.BuildVersion)
	}
	manifest := element.Manifests[0]

	parsed, err := url.Parse(manifest.URI)
	if err != nil {
		return "", "", fmt.Errorf("invalid manifest URI %q: %w", manifest.URI, err)
	}

	query := parsed.Query()
	for _, param := range manifest.QueryParams {
		query.Set(param.Name, param.Value)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), path.Base(parsed.Path), nil
}
