package db

import (
	"context"
	"fmt"
	"time"

	postgrest "github.com/supabase-community/postgrest-go"
	supabase "github.com/supabase-community/supabase-go"

	"slate-seo/pkg/domain"
)

// RESTStore is a PageStore backed by the Supabase REST API (PostgREST).
//
// The REST client has no context support; ctx is only checked before each call.
type RESTStore struct {
	client *supabase.Client
	table  string
}

// NewRESTStore returns a store that reads and writes table through client.
func NewRESTStore(client *supabase.Client, table string) *RESTStore {
	return &RESTStore{client: client, table: table}
}

// restRow is a seo_pages row as PostgREST returns it. updated_at is kept as text because a
// column without time zone comes back without an offset.
type restRow struct {
	Slug      string          `json:"slug"`
	Type      domain.PageType `json:"type"`
	Published bool            `json:"published"`
	UpdatedAt string          `json:"updated_at"`
}

func (r restRow) updatedAt() (time.Time, error) {
	if r.UpdatedAt == "" {
		return time.Time{}, nil
	}
	t, err := parseTimeText(r.UpdatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("slug %q: %w", r.Slug, err)
	}
	return t, nil
}

// ExistingSlugs implements PageStore.
func (s *RESTStore) ExistingSlugs(ctx context.Context) (map[string]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []restRow
	if _, err := s.client.From(s.table).Select("slug,updated_at", "", false).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("select existing slugs: %w", err)
	}

	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		if r.Slug == "" {
			continue
		}
		updated, err := r.updatedAt()
		if err != nil {
			return nil, err
		}
		out[r.Slug] = updated
	}
	return out, nil
}

// InsertPage implements PageStore.
func (s *RESTStore) InsertPage(ctx context.Context, page domain.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := s.client.From(s.table).Insert(page, false, "", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("insert page slug=%q: %w", page.Slug, err)
	}
	return nil
}

// PublishedPages implements PageStore.
func (s *RESTStore) PublishedPages(ctx context.Context) ([]domain.StoredPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []restRow
	_, err := s.client.From(s.table).
		Select("slug,type,published,updated_at", "", false).
		Eq("published", "true").
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("select published pages: %w", err)
	}

	out := make([]domain.StoredPage, 0, len(rows))
	for _, r := range rows {
		updated, err := r.updatedAt()
		if err != nil {
			return nil, err
		}
		out = append(out, domain.StoredPage{Slug: r.Slug, Type: r.Type, Published: r.Published, UpdatedAt: updated})
	}
	return out, nil
}

// SetPublished implements Publisher.
func (s *RESTStore) SetPublished(ctx context.Context, slug string, published bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var rows []restRow
	_, err := s.client.From(s.table).
		Update(map[string]bool{"published": published}, "representation", "").
		Eq("slug", slug).
		ExecuteTo(&rows)
	if err != nil {
		return fmt.Errorf("update published slug=%q: %w", slug, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("slug %q: %w", slug, ErrNotFound)
	}
	return nil
}

// Close implements PageStore.
func (s *RESTStore) Close() error {
	return nil
}
