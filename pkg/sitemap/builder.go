package sitemap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"slate-seo/pkg/domain"
)

const dateLayout = "2006-01-02"

// PageSource lists the pages that belong in the sitemap.
type PageSource interface {
	PublishedPages(ctx context.Context) ([]domain.StoredPage, error)
}

// Builder turns published pages into sitemap entries rooted at a base URL.
type Builder struct {
	source  PageSource
	baseURL string
	now     func() time.Time
}

// NewBuilder creates a builder. baseURL is the site origin, e.g. "https://slate.ink".
func NewBuilder(source PageSource, baseURL string) *Builder {
	return &Builder{
		source:  source,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// SetClock overrides the time source used for the root entry's lastmod.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}

// Entries returns the root entry followed by one entry per published page, in the order the
// source returns them.
func (b *Builder) Entries(ctx context.Context) ([]Entry, error) {
	pages, err := b.source.PublishedPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published pages: %w", err)
	}

	entries := make([]Entry, 0, len(pages)+1)
	entries = append(entries, Entry{
		Location:   b.baseURL + "/",
		LastMod:    b.now().UTC().Format(dateLayout),
		ChangeFreq: ChangeFreqDaily,
		Priority:   PriorityRoot,
	})

	for _, p := range pages {
		var lastMod string
		if !p.UpdatedAt.IsZero() {
			lastMod = p.UpdatedAt.UTC().Format(dateLayout)
		}
		entries = append(entries, Entry{
			Location:   b.baseURL + "/" + string(p.Type) + "/" + p.Slug,
			LastMod:    lastMod,
			ChangeFreq: ChangeFreqWeekly,
			Priority:   priority(p.Type),
		})
	}
	return entries, nil
}

// Build renders the full sitemap document.
func (b *Builder) Build(ctx context.Context) ([]byte, error) {
	entries, err := b.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return Render(entries)
}

func priority(t domain.PageType) string {
	if t == domain.PageTypeCreate {
		return PriorityCreate
	}
	return PriorityOther
}
