package seeder

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate-seo/pkg/db"
	"slate-seo/pkg/domain"
)

func page(slug string) domain.Page {
	return domain.Page{Slug: slug, Type: domain.PageTypeCreate, Title: slug}
}

func newTestSeeder(t *testing.T, store db.PageStore, reporter Reporter, dryRun bool) *Seeder {
	t.Helper()
	s, err := NewSeeder(Config{Store: store, Reporter: reporter, Logger: zerolog.Nop(), DryRun: dryRun})
	require.NoError(t, err)
	return s
}

func TestRunAddsMissingAndSkipsExisting(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.InsertPage(ctx, page("b")))

	summary, err := newTestSeeder(t, store, nil, false).Run(ctx, []domain.Page{page("a"), page("b"), page("c")})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 3, summary.Total)

	existing, err := store.ExistingSlugs(ctx)
	require.NoError(t, err)
	assert.Len(t, existing, 3)
	for _, slug := range []string{"a", "b", "c"} {
		assert.Contains(t, existing, slug)
	}

	require.Len(t, summary.Outcomes, 3)
	assert.Equal(t, StatusAdded, summary.Outcomes[0].Status)
	assert.Equal(t, StatusSkipped, summary.Outcomes[1].Status)
	assert.Equal(t, "/create/c", summary.Outcomes[2].Path)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	pages := []domain.Page{page("one"), page("two"), page("three")}
	s := newTestSeeder(t, store, nil, false)

	first, err := s.Run(ctx, pages)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Added)

	second, err := s.Run(ctx, pages)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 3, second.Skipped)
	assert.Equal(t, 3, store.Len())
}

func TestRunDoesNotUpdateExisting(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.InsertPage(ctx, domain.Page{Slug: "resume", Type: domain.PageTypeCreate, Title: "Old"}))

	changed := domain.Page{Slug: "resume", Type: domain.PageTypeCreate, Title: "New"}
	summary, err := newTestSeeder(t, store, nil, false).Run(ctx, []domain.Page{changed})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped)

	stored, ok := store.Page("resume")
	require.True(t, ok)
	assert.Equal(t, "Old", stored.Title)
}

func TestRunContinuesAfterInsertError(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	boom := errors.New("row level security")
	store.FailInsert("b", boom)

	summary, err := newTestSeeder(t, store, nil, false).Run(ctx, []domain.Page{page("a"), page("b"), page("c")})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Added)
	assert.Equal(t, 1, summary.Errors)
	assert.ErrorIs(t, summary.Outcomes[1].Err, boom)
	assert.Equal(t, StatusError, summary.Outcomes[1].Status)
	assert.Equal(t, 2, store.Len())
}

func TestRunDuplicateInBatchIsSkipped(t *testing.T) {
	store := db.NewMemoryStore()

	summary, err := newTestSeeder(t, store, nil, false).Run(context.Background(), []domain.Page{page("x"), page("x")})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
}

func TestRunDryRunWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.InsertPage(ctx, page("b")))

	summary, err := newTestSeeder(t, store, nil, true).Run(ctx, []domain.Page{page("a"), page("b")})
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, store.Len())
}

type failingStore struct {
	db.PageStore
	err error
}

func (f failingStore) ExistingSlugs(context.Context) (map[string]time.Time, error) {
	return nil, f.err
}

func TestRunExistingSlugsFailureIsFatal(t *testing.T) {
	boom := errors.New("connection refused")
	store := failingStore{PageStore: db.NewMemoryStore(), err: boom}

	_, err := newTestSeeder(t, store, nil, false).Run(context.Background(), []domain.Page{page("a")})
	assert.ErrorIs(t, err, boom)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := db.NewMemoryStore()
	_, err := newTestSeeder(t, store, nil, false).Run(ctx, []domain.Page{page("a")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Len())
}

func TestNewSeederRequiresStore(t *testing.T) {
	_, err := NewSeeder(Config{})
	assert.Error(t, err)
}

func TestConsoleReporter(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.InsertPage(ctx, page("b")))
	store.FailInsert("c", errors.New("boom"))

	var out bytes.Buffer
	reporter := NewConsoleReporter(&out)
	reporter.SitemapURL = "http://localhost:3000/sitemap.xml"

	_, err := newTestSeeder(t, store, reporter, false).Run(ctx, []domain.Page{page("a"), page("b"), page("c")})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Total pages to process: 3")
	assert.Contains(t, text, "✅ Added: /create/a")
	assert.Contains(t, text, "⏭️  Skipped: /create/b (already exists)")
	assert.Contains(t, text, "❌ Error adding c: boom")
	assert.Contains(t, text, "✅ Added:   1")
	assert.Contains(t, text, "❌ Errors:  1")
	assert.Contains(t, text, "Next steps")
	assert.Contains(t, text, "http://localhost:3000/sitemap.xml")
}

func TestConsoleReporterNothingToAdd(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.InsertPage(ctx, page("a")))

	var out bytes.Buffer
	_, err := newTestSeeder(t, store, NewConsoleReporter(&out), false).Run(ctx, []domain.Page{page("a")})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "nothing to add")
	assert.NotContains(t, out.String(), "Next steps")
}
