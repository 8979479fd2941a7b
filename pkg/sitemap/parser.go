package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"slate-seo/pkg/httpclient"
)

// maxDocumentSize is the largest uncompressed sitemap the protocol allows.
const maxDocumentSize = 50 << 20

// Fetcher downloads deployed sitemaps.
type Fetcher struct {
	client *httpclient.HTTPClient
}

// NewFetcher creates a fetcher with an XML client and a 30s timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: httpclient.NewClient(httpclient.XMLClient, 30*time.Second),
	}
}

// Fetch downloads the sitemap at sitemapURL and parses its entries.
func (f *Fetcher) Fetch(ctx context.Context, sitemapURL string) ([]Entry, error) {
	resp, err := f.client.Get(ctx, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sitemap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Parse(io.LimitReader(resp.Body, maxDocumentSize))
}

// Parse reads a urlset document. Entries without a location are dropped.
func Parse(reader io.Reader) ([]Entry, error) {
	var set urlSet
	decoder := xml.NewDecoder(reader)

	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode sitemap XML: %w", err)
	}

	entries := make([]Entry, 0, len(set.URLs))
	for _, u := range set.URLs {
		if u.Location != "" {
			entries = append(entries, Entry(u))
		}
	}

	return entries, nil
}
