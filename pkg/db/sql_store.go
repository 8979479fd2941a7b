package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"slate-seo/pkg/domain"
)

// Dialect captures the SQL differences between the databases SQLStore runs on.
type Dialect struct {
	Name string

	// Schema creates the pages table and its indexes when missing.
	Schema string

	// bind returns the placeholder for the n-th (1-based) argument.
	bind func(n int) string

	// jsonBind wraps a placeholder that carries a JSON document.
	jsonBind func(placeholder string) string
}

// Postgres is the dialect for Postgres and Supabase direct connections.
var Postgres = Dialect{
	Name: "postgres",
	Schema: `
CREATE TABLE IF NOT EXISTS seo_pages (
  id UUID PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  meta_description TEXT NOT NULL DEFAULT '',
  h1 TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  keywords JSONB NOT NULL DEFAULT '[]'::jsonb,
  ai_prompt TEXT,
  category TEXT NOT NULL DEFAULT '',
  search_volume INTEGER NOT NULL DEFAULT 0,
  difficulty INTEGER NOT NULL DEFAULT 0,
  examples JSONB NOT NULL DEFAULT '[]'::jsonb,
  faqs JSONB NOT NULL DEFAULT '[]'::jsonb,
  benefits JSONB NOT NULL DEFAULT '[]'::jsonb,
  cta_text TEXT NOT NULL DEFAULT '',
  related_pages JSONB,
  published BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_seo_pages_published ON seo_pages (published, updated_at DESC);`,
	bind:     func(n int) string { return "$" + strconv.Itoa(n) },
	jsonBind: func(p string) string { return p + "::jsonb" },
}

// SQLite is the dialect for local SQLite databases.
var SQLite = Dialect{
	Name: "sqlite",
	Schema: `
CREATE TABLE IF NOT EXISTS seo_pages (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  meta_description TEXT NOT NULL DEFAULT '',
  h1 TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  keywords TEXT NOT NULL DEFAULT '[]',
  ai_prompt TEXT,
  category TEXT NOT NULL DEFAULT '',
  search_volume INTEGER NOT NULL DEFAULT 0,
  difficulty INTEGER NOT NULL DEFAULT 0,
  examples TEXT NOT NULL DEFAULT '[]',
  faqs TEXT NOT NULL DEFAULT '[]',
  benefits TEXT NOT NULL DEFAULT '[]',
  cta_text TEXT NOT NULL DEFAULT '',
  related_pages TEXT,
  published BOOLEAN NOT NULL DEFAULT 1,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_seo_pages_published ON seo_pages (published, updated_at DESC);`,
	bind:     func(int) string { return "?" },
	jsonBind: func(p string) string { return p },
}

// insertColumns is the column order used by InsertPage. JSON columns are marked with a
// trailing "*" and stripped before use.
var insertColumns = []string{
	"id", "slug", "type", "title", "meta_description", "h1", "description", "keywords*",
	"ai_prompt", "category", "search_volume", "difficulty", "examples*", "faqs*", "benefits*",
	"cta_text", "related_pages*", "created_at", "updated_at",
}

// SQLStore is a PageStore over database/sql.
type SQLStore struct {
	provider DBProvider
	dialect  Dialect
	insert   string
	now      func() time.Time
}

// NewSQLStore returns a store over provider's connection using the given dialect.
func NewSQLStore(provider DBProvider, dialect Dialect) *SQLStore {
	return &SQLStore{
		provider: provider,
		dialect:  dialect,
		insert:   buildInsert(dialect),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source used for created_at/updated_at.
func (s *SQLStore) SetClock(now func() time.Time) {
	s.now = now
}

func buildInsert(d Dialect) string {
	cols := make([]string, len(insertColumns))
	vals := make([]string, len(insertColumns))
	for i, c := range insertColumns {
		p := d.bind(i + 1)
		if strings.HasSuffix(c, "*") {
			c = strings.TrimSuffix(c, "*")
			p = d.jsonBind(p)
		}
		cols[i] = c
		vals[i] = p
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", TableName, strings.Join(cols, ", "), strings.Join(vals, ", "))
}

func (s *SQLStore) db() (*sql.DB, error) {
	db := s.provider.DB()
	if db == nil {
		return nil, fmt.Errorf("%s DB not connected", s.dialect.Name)
	}
	return db, nil
}

// EnsureSchema creates the pages table when it does not exist yet.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	db, err := s.db()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, s.dialect.Schema); err != nil {
		return fmt.Errorf("create %s table: %w", TableName, err)
	}
	return nil
}

// ExistingSlugs returns every stored slug with its updated_at.
func (s *SQLStore) ExistingSlugs(ctx context.Context) (map[string]time.Time, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT slug, updated_at FROM "+TableName)
	if err != nil {
		return nil, fmt.Errorf("query existing slugs: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var (
			slug string
			raw  any
		)
		if err := rows.Scan(&slug, &raw); err != nil {
			return nil, fmt.Errorf("scan slug: %w", err)
		}
		updated, err := asTime(raw)
		if err != nil {
			return nil, fmt.Errorf("slug %q: %w", slug, err)
		}
		out[slug] = updated
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// InsertPage inserts a single page. A slug that already exists violates the unique constraint.
func (s *SQLStore) InsertPage(ctx context.Context, page domain.Page) error {
	db, err := s.db()
	if err != nil {
		return err
	}

	args, err := s.insertArgs(page)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, s.insert, args...); err != nil {
		return fmt.Errorf("insert page slug=%q: %w", page.Slug, err)
	}
	return nil
}

func (s *SQLStore) insertArgs(p domain.Page) ([]any, error) {
	keywords, err := jsonArg(p.Keywords, false)
	if err != nil {
		return nil, err
	}
	examples, err := jsonArg(p.Examples, false)
	if err != nil {
		return nil, err
	}
	faqs, err := jsonArg(p.FAQs, false)
	if err != nil {
		return nil, err
	}
	benefits, err := jsonArg(p.Benefits, false)
	if err != nil {
		return nil, err
	}
	related, err := jsonArg(p.RelatedPages, true)
	if err != nil {
		return nil, err
	}

	var prompt sql.NullString
	if p.AIPrompt != nil {
		prompt = sql.NullString{String: *p.AIPrompt, Valid: true}
	}

	now := s.now()
	return []any{
		uuid.NewString(), p.Slug, string(p.Type), p.Title, p.MetaDescription, p.H1, p.Description, keywords,
		prompt, p.Category, p.SearchVolume, p.Difficulty, examples, faqs, benefits,
		p.CTAText, related, now, now,
	}, nil
}

// PublishedPages returns published pages ordered by updated_at, newest first.
func (s *SQLStore) PublishedPages(ctx context.Context) ([]domain.StoredPage, error) {
	db, err := s.db()
	if err != nil {
		return nil, err
	}

	const query = `SELECT slug, type, updated_at FROM seo_pages WHERE published = TRUE ORDER BY updated_at DESC`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query published pages: %w", err)
	}
	defer rows.Close()

	var out []domain.StoredPage
	for rows.Next() {
		var (
			p   domain.StoredPage
			typ string
			raw any
		)
		if err := rows.Scan(&p.Slug, &typ, &raw); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		p.Type = domain.PageType(typ)
		p.Published = true
		if p.UpdatedAt, err = asTime(raw); err != nil {
			return nil, fmt.Errorf("slug %q: %w", p.Slug, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

// SetPublished flips the published flag of a stored page.
func (s *SQLStore) SetPublished(ctx context.Context, slug string, published bool) error {
	db, err := s.db()
	if err != nil {
		return err
	}
	query := fmt.Sprintf("UPDATE %s SET published = %s WHERE slug = %s", TableName, s.dialect.bind(1), s.dialect.bind(2))
	res, err := db.ExecContext(ctx, query, published, slug)
	if err != nil {
		return fmt.Errorf("update published slug=%q: %w", slug, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("slug %q: %w", slug, ErrNotFound)
	}
	return nil
}

// Close is a no-op: the connection belongs to the provider.
func (s *SQLStore) Close() error {
	return nil
}

// jsonArg encodes v as a JSON document. Nil slices become "[]" unless nullable is set,
// in which case they become SQL NULL.
func jsonArg[T any](v []T, nullable bool) (any, error) {
	if v == nil {
		if nullable {
			return nil, nil
		}
		return "[]", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json column: %w", err)
	}
	return string(b), nil
}

// timeLayouts are the text forms a timestamp may come back in from SQLite or PostgREST.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case nil:
		return time.Time{}, nil
	case []byte:
		return parseTimeText(string(t))
	case string:
		return parseTimeText(t)
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
}

func parseTimeText(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
