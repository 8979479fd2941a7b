package db

import (
	"context"
	"database/sql"
	"time"

	"slate-seo/pkg/domain"
)

// DBProvider is an interface for database clients that provide access to a sql.DB handle.
// This allows PostgresClient, SupabaseClient and SQLiteClient to back the same SQLStore.
type DBProvider interface {
	DB() *sql.DB
}

// PageStore is the persistent store of SEO pages, keyed by slug.
//
// Implementations never update a page in place: InsertPage fails when the slug already exists.
type PageStore interface {
	// ExistingSlugs returns every stored slug with its last update time.
	ExistingSlugs(ctx context.Context) (map[string]time.Time, error)

	// InsertPage stores a new page.
	InsertPage(ctx context.Context, page domain.Page) error

	// PublishedPages returns published pages, most recently updated first.
	PublishedPages(ctx context.Context) ([]domain.StoredPage, error)

	Close() error
}

// Publisher is implemented by stores whose pages can be published or hidden after seeding.
type Publisher interface {
	// SetPublished flips the published flag of a stored page. An unknown slug yields ErrNotFound.
	SetPublished(ctx context.Context, slug string, published bool) error
}

// TableName is the table (or collection) that holds the pages.
const TableName = "seo_pages"
