package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"slate-seo/pkg/domain"
)

// MemoryStore is an in-process PageStore, used for dry runs and tests.
type MemoryStore struct {
	mu      sync.Mutex
	pages   map[string]memoryRow
	order   []string
	failing map[string]error
	now     func() time.Time
}

type memoryRow struct {
	page      domain.Page
	published bool
	updatedAt time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pages:   make(map[string]memoryRow),
		failing: make(map[string]error),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source used for updated_at.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailInsert makes every InsertPage for slug return err.
func (s *MemoryStore) FailInsert(slug string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[slug] = err
}

// ExistingSlugs implements PageStore.
func (s *MemoryStore) ExistingSlugs(_ context.Context) (map[string]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.pages))
	for slug, row := range s.pages {
		out[slug] = row.updatedAt
	}
	return out, nil
}

// InsertPage implements PageStore. New pages are published.
func (s *MemoryStore) InsertPage(_ context.Context, page domain.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failing[page.Slug]; ok {
		return err
	}
	if _, ok := s.pages[page.Slug]; ok {
		return fmt.Errorf("insert page slug=%q: %w", page.Slug, ErrSlugExists)
	}
	s.pages[page.Slug] = memoryRow{page: page, published: true, updatedAt: s.now()}
	s.order = append(s.order, page.Slug)
	return nil
}

// PublishedPages implements PageStore.
func (s *MemoryStore) PublishedPages(_ context.Context) ([]domain.StoredPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.StoredPage
	for _, slug := range s.order {
		row := s.pages[slug]
		if !row.published {
			continue
		}
		out = append(out, domain.StoredPage{
			Slug:      slug,
			Type:      row.page.Type,
			Published: true,
			UpdatedAt: row.updatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// SetPublished flips the published flag of a stored page.
func (s *MemoryStore) SetPublished(_ context.Context, slug string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.pages[slug]
	if !ok {
		return fmt.Errorf("slug %q: %w", slug, ErrNotFound)
	}
	row.published = published
	s.pages[slug] = row
	return nil
}

// Page returns a stored page.
func (s *MemoryStore) Page(slug string) (domain.Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.pages[slug]
	return row.page, ok
}

// Len returns the number of stored pages.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Close implements PageStore.
func (s *MemoryStore) Close() error {
	return nil
}
