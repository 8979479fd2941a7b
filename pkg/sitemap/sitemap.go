package sitemap

import (
	"encoding/xml"
)

// Namespace is the sitemaps.org schema every urlset declares.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies and priorities used by the site.
const (
	ChangeFreqDaily  = "daily"
	ChangeFreqWeekly = "weekly"

	PriorityRoot   = "1.0"
	PriorityCreate = "0.9"
	PriorityOther  = "0.8"
)

// Entry represents a single URL entry from a sitemap
type Entry struct {
	Location   string // Absolute URL of the page
	LastMod    string // Last modification date, YYYY-MM-DD (optional)
	ChangeFreq string // Change frequency (optional)
	Priority   string // Priority value (optional)
}

// XML structures for reading and writing sitemap XML

// urlSet represents a regular sitemap structure
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr,omitempty"`
	URLs    []urlEntry `xml:"url"`
}

// urlEntry represents a single URL entry in XML
type urlEntry struct {
	Location   string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Render encodes entries as a sitemap document with two-space indentation.
func Render(entries []Entry) ([]byte, error) {
	set := urlSet{Xmlns: Namespace, URLs: make([]urlEntry, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlEntry(e))
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
