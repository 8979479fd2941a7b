package sitemap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseSitemap(t *testing.T) {
	xmlData := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
	<url>
		<loc>https://slate.ink/create/linkedin-post</loc>
		<lastmod>2024-01-15</lastmod>
		<priority>0.9</priority>
		<changefreq>weekly</changefreq>
	</url>
	<url>
		<loc>https://slate.ink/tool/grammar-checker</loc>
		<lastmod>2024-01-20</lastmod>
	</url>
	<url>
		<loc>https://slate.ink/vs/grammarly</loc>
	</url>
	<url>
		<lastmod>2024-01-20</lastmod>
	</url>
</urlset>`

	entries, err := Parse(strings.NewReader(xmlData))
	if err != nil {
		t.Fatalf("Failed to parse sitemap: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	entry1 := entries[0]
	if entry1.Location != "https://slate.ink/create/linkedin-post" {
		t.Errorf("Expected location 'https://slate.ink/create/linkedin-post', got '%s'", entry1.Location)
	}
	if entry1.LastMod != "2024-01-15" {
		t.Errorf("Expected LastMod '2024-01-15', got '%s'", entry1.LastMod)
	}
	if entry1.Priority != "0.9" {
		t.Errorf("Expected Priority '0.9', got '%s'", entry1.Priority)
	}
	if entry1.ChangeFreq != "weekly" {
		t.Errorf("Expected ChangeFreq 'weekly', got '%s'", entry1.ChangeFreq)
	}

	if entries[1].LastMod != "2024-01-20" {
		t.Errorf("Expected LastMod '2024-01-20', got '%s'", entries[1].LastMod)
	}
	if entries[2].Location != "https://slate.ink/vs/grammarly" {
		t.Errorf("Expected location 'https://slate.ink/vs/grammarly', got '%s'", entries[2].Location)
	}
}

func TestParseSitemapEmpty(t *testing.T) {
	xmlData := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
</urlset>`

	entries, err := Parse(strings.NewReader(xmlData))
	if err != nil {
		t.Fatalf("Failed to parse empty sitemap: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}
}

func TestParseSitemapInvalidXML(t *testing.T) {
	_, err := Parse(strings.NewReader(`<?xml version="1.0"?><invalid>`))
	if err == nil {
		t.Error("Expected error for invalid XML, got nil")
	}
}

func TestFetch(t *testing.T) {
	body, err := Render([]Entry{
		{Location: "https://slate.ink/", LastMod: "2025-05-20", ChangeFreq: "daily", Priority: "1.0"},
		{Location: "https://slate.ink/create/resume", LastMod: "2025-05-19", ChangeFreq: "weekly", Priority: "0.9"},
	})
	if err != nil {
		t.Fatalf("Failed to render sitemap: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sitemap.xml" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write(body)
	}))
	defer server.Close()

	entries, err := NewFetcher().Fetch(context.Background(), server.URL+"/sitemap.xml")
	if err != nil {
		t.Fatalf("Failed to fetch sitemap: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Location != "https://slate.ink/create/resume" {
		t.Errorf("Expected location 'https://slate.ink/create/resume', got '%s'", entries[1].Location)
	}
	if entries[0].Priority != "1.0" {
		t.Errorf("Expected Priority '1.0', got '%s'", entries[0].Priority)
	}
}

func TestFetch_SitemapIndexRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
	<sitemap><loc>https://slate.ink/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`))
	}))
	defer server.Close()

	_, err := NewFetcher().Fetch(context.Background(), server.URL+"/sitemap.xml")
	if err == nil {
		t.Fatal("Expected error for a sitemap index, got nil")
	}
}

func TestFetch_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewFetcher().Fetch(context.Background(), server.URL+"/sitemap.xml")
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("Expected status error, got %v", err)
	}
}
