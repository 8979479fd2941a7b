package httpclient

import (
	"context"
	"net/http"
	"time"
)

// UserAgent identifies outbound requests made by this module.
const UserAgent = "slate-seo/1.0 (+https://slate.ink)"

// ClientType represents the type of HTTP client configuration
type ClientType string

const (
	// APIClient talks to JSON APIs such as the chat completion endpoint.
	APIClient ClientType = "api"

	// XMLClient fetches sitemaps and other XML documents.
	XMLClient ClientType = "xml"
)

// HTTPClient wraps an http.Client with configuration
type HTTPClient struct {
	client     *http.Client
	clientType ClientType
}

// NewClient creates a new HTTP client with the specified type. A zero timeout means none.
func NewClient(clientType ClientType, timeout time.Duration) *HTTPClient {
	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow up to 10 redirects
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	return &HTTPClient{
		client:     client,
		clientType: clientType,
	}
}

// Do executes an HTTP request with the appropriate headers for the client type
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get is a convenience method for GET requests
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// setHeaders sets the appropriate headers based on client type. Headers already set by the
// caller are kept.
func (c *HTTPClient) setHeaders(req *http.Request) {
	setDefault(req, "User-Agent", UserAgent)

	switch c.clientType {
	case APIClient:
		setDefault(req, "Accept", "application/json")

	case XMLClient:
		setDefault(req, "Accept", "application/xml,text/xml;q=0.9,*/*;q=0.8")
	}
}

func setDefault(req *http.Request, key, value string) {
	if req.Header.Get(key) == "" {
		req.Header.Set(key, value)
	}
}
