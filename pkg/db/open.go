package db

import (
	"context"
	"errors"
	"fmt"

	"slate-seo/pkg/config"
)

// Open connects to the backend selected by cfg.Store.Backend and returns its page store.
// Supabase is accessed with the service role key, which writes need.
// Closing the returned store also closes the underlying connection.
func Open(ctx context.Context, cfg *config.Config) (PageStore, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}
	return open(ctx, cfg, cfg.Supabase.ServiceRoleKey)
}

// OpenReader is Open for read-only callers: Supabase is accessed with the anon key when one
// is configured.
func OpenReader(ctx context.Context, cfg *config.Config) (PageStore, error) {
	if err := cfg.ValidateReadStore(); err != nil {
		return nil, err
	}
	return open(ctx, cfg, cfg.Supabase.ReadKey())
}

func open(ctx context.Context, cfg *config.Config, supabaseKey string) (PageStore, error) {

	switch cfg.Store.Backend {
	case config.BackendSupabase:
		client := NewSupabaseClient(SupabaseConfig{
			SupabaseURL:      cfg.Supabase.URL,
			SupabaseKey:      supabaseKey,
			ConnectionString: cfg.Supabase.DBURL,
			Password:         cfg.Supabase.DBPassword,
			MaxOpenConns:     cfg.Postgres.MaxOpenConns,
			MaxIdleConns:     cfg.Postgres.MaxIdleConns,
			ConnMaxLife:      cfg.Postgres.ConnMaxLife,
		})
		if err := client.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect supabase: %w", err)
		}
		store, err := client.Store()
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return closingStore{PageStore: store, closer: client.Close}, nil

	case config.BackendPostgres:
		client := NewPostgresClient(PostgresConfig{
			DSN:          cfg.Postgres.DSN,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
			ConnMaxLife:  cfg.Postgres.ConnMaxLife,
		})
		if err := client.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := client.Store()
		if err := store.EnsureSchema(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return closingStore{PageStore: store, closer: client.Close}, nil

	case config.BackendSQLite:
		client := NewSQLiteClient(cfg.SQLite.Path)
		if err := client.Connect(ctx); err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		store := client.Store()
		if err := store.EnsureSchema(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		return closingStore{PageStore: store, closer: client.Close}, nil

	case config.BackendMongo:
		store, err := NewMongoStore(cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, err
		}
		if err := store.Connect(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		return store, nil

	case config.BackendMemory:
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Store.Backend)
}

// closingStore ties a store to the connection it runs on.
type closingStore struct {
	PageStore
	closer func() error
}

func (s closingStore) Close() error {
	return errors.Join(s.PageStore.Close(), s.closer())
}

// SetPublished forwards to the wrapped store.
func (s closingStore) SetPublished(ctx context.Context, slug string, published bool) error {
	p, ok := s.PageStore.(Publisher)
	if !ok {
		return fmt.Errorf("set published: %w", errors.ErrUnsupported)
	}
	return p.SetPublished(ctx, slug, published)
}
