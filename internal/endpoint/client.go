package endpoint

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"buildfetch/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Request describes a single call against a remote endpoint. The
// parameter surface is a closed set: headers, query parameters, and an
// optional form-encoded body.
type Request struct {
	// URL is the absolute request URL.
	URL string
	// Method is the HTTP method; defaults to GET when empty.
	Method string
	// Header holds request headers (Authorization and friends).
	Header http.Header
	// Query holds query parameters appended to the URL.
	Query url.Values
	// Form holds form parameters; when non-nil the request carries an
	// application/x-www-form-urlencoded body.
	Form url.Values
}

// Client executes requests against remote endpoints and reports
// failures as categorized *Error values.
type Client struct {
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Used by tests and by
// callers that need custom TLS or timeout settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new endpoint client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes the request and returns the raw response body.
// A non-2xx response yields an *Error with KindStatus; a network-level
// failure yields KindTransport.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	reqURL := req.URL
	if len(req.Query) > 0 {
		parsed, err := url.Parse(reqURL)
		if err != nil {
			return nil, &Error{Kind: KindTransport, URL: req.URL, Reason: err}
		}
		q := parsed.Query()
		for key, values := range req.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		parsed.RawQuery = q.Encode()
		reqURL = parsed.String()
	}

	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: req.URL, Reason: err}
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.Form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: req.URL, Reason: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, URL: req.URL, Reason: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("Endpoint", "%s %s returned status %d", method, req.URL, resp.StatusCode)
		return nil, &Error{Kind: KindStatus, URL: req.URL, StatusCode: resp.StatusCode}
	}

	return respBody, nil
}

// DoJSON executes the request and unmarshals the JSON response body
// into v. A body that does not match the expected shape yields an
// *Error with KindDecode.
func (c *Client) DoJSON(ctx context.Context, req Request, v any) error {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &Error{Kind: KindDecode, URL: req.URL, Reason: err}
	}
	return nil
}
