// Package catalog builds the ordered list of SEO landing pages that gets seeded into the store.
//
// The catalog is the hand-authored pages followed by a number of programmatic families, each
// expanding a fixed source list through sentence templates. Building is pure: no I/O.
package catalog

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sort"
	"strings"

	"slate-seo/pkg/domain"
)

var (
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrEmptySlug     = errors.New("empty slug")
	ErrUnknownType   = errors.New("unknown page type")
)

// Catalog is a validated, ordered set of pages with pairwise distinct slugs.
type Catalog struct {
	pages []domain.Page
	index map[string]int
}

// Build assembles the full catalog and validates it.
func Build() (*Catalog, error) {
	pages := HandAuthored()
	for _, f := range families() {
		pages = append(pages, f.expand()...)
	}
	return New(pages)
}

// HandAuthored returns a copy of the hand-written pages, in catalog order.
func HandAuthored() []domain.Page {
	pages := make([]domain.Page, 0, len(handAuthored)+512)
	for _, p := range handAuthored {
		pages = append(pages, clonePage(p))
	}
	return pages
}

// New validates pages and wraps them in a Catalog, keeping their order.
func New(pages []domain.Page) (*Catalog, error) {
	if err := Validate(pages); err != nil {
		return nil, err
	}
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		index[p.Slug] = i
	}
	return &Catalog{pages: pages, index: index}, nil
}

// Validate checks the invariants the seeder relies on: every slug is non-empty and unique,
// and every page has a known type. All problems are reported, not just the first.
func Validate(pages []domain.Page) error {
	var errs []error
	seen := make(map[string]int, len(pages))
	var dups []string

	for i, p := range pages {
		if p.Slug == "" {
			errs = append(errs, fmt.Errorf("page %d (%q): %w", i, p.Title, ErrEmptySlug))
			continue
		}
		if !p.Type.Valid() {
			errs = append(errs, fmt.Errorf("page %q: %w %q", p.Slug, ErrUnknownType, p.Type))
		}
		seen[p.Slug]++
		if seen[p.Slug] == 2 {
			dups = append(dups, p.Slug)
		}
	}

	if len(dups) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateSlug, strings.Join(dups, ", ")))
	}
	return errors.Join(errs...)
}

// Pages returns the pages in catalog order. The slice must not be modified.
func (c *Catalog) Pages() []domain.Page {
	return c.pages
}

// Len returns the number of pages.
func (c *Catalog) Len() int {
	return len(c.pages)
}

// Slugs returns every slug in catalog order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.pages))
	for i, p := range c.pages {
		out[i] = p.Slug
	}
	return out
}

// Lookup returns the page with the given slug.
func (c *Catalog) Lookup(slug string) (domain.Page, bool) {
	i, ok := c.index[slug]
	if !ok {
		return domain.Page{}, false
	}
	return c.pages[i], true
}

// DanglingRelated maps a page slug to the related_pages entries that name no page in the catalog.
func (c *Catalog) DanglingRelated() map[string][]string {
	out := make(map[string][]string)
	for _, p := range c.pages {
		for _, rel := range p.RelatedPages {
			if _, ok := c.index[rel]; !ok {
				out[p.Slug] = append(out[p.Slug], rel)
			}
		}
	}
	return out
}

// CountByType returns how many pages each page type has.
func (c *Catalog) CountByType() map[domain.PageType]int {
	out := make(map[domain.PageType]int)
	for _, p := range c.pages {
		out[p.Type]++
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	set := make(map[string]struct{})
	for _, p := range c.pages {
		set[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// expand generates one page per source item and fills in its metrics.
func (f family) expand() []domain.Page {
	out := make([]domain.Page, 0, len(f.Items))
	for _, item := range f.Items {
		p := f.Page(item)
		p.SearchVolume, p.Difficulty = metrics(p.Slug, f.Volume, f.Difficulty)
		out = append(out, p)
	}
	return out
}

// metrics draws search volume and difficulty uniformly from their ranges using a generator
// seeded by the slug, so the same slug always gets the same numbers.
func metrics(slug string, volume, difficulty span) (int, int) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(slug))
	seed := h.Sum64()
	r := rand.New(rand.NewPCG(seed, seed>>1|1))
	return volume.draw(r), difficulty.draw(r)
}

func (s span) draw(r *rand.Rand) int {
	if s.Width <= 0 {
		return s.Min
	}
	return s.Min + r.IntN(s.Width)
}

// clonePage copies the slice fields so callers can't mutate the package-level literals.
func clonePage(p domain.Page) domain.Page {
	p.Keywords = append([]string(nil), p.Keywords...)
	p.Benefits = append([]string(nil), p.Benefits...)
	if p.RelatedPages != nil {
		p.RelatedPages = append([]string(nil), p.RelatedPages...)
	}
	if p.Examples != nil {
		p.Examples = append([]domain.Example(nil), p.Examples...)
	}
	if p.FAQs != nil {
		p.FAQs = append([]domain.FAQ(nil), p.FAQs...)
	}
	if p.AIPrompt != nil {
		s := *p.AIPrompt
		p.AIPrompt = &s
	}
	return p
}
