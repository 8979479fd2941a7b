package config

import (
	"errors"
	"fmt"
	"time"

	"slate-seo/pkg/logging"
)

var (
	// ErrMissingCredentials is returned when the selected store backend has no credentials.
	ErrMissingCredentials = errors.New("missing store credentials")

	// ErrUnknownBackend is returned for a store backend name that is not supported.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store backends.
const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Server   ServerConfig   `mapstructure:"server"`
	Site     SiteConfig     `mapstructure:"site"`
	Log      logging.Config `mapstructure:"log"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type SupabaseConfig struct {
	URL            string `mapstructure:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
	AnonKey        string `mapstructure:"anon_key"`
	DBURL          string `mapstructure:"db_url"`
	DBPassword     string `mapstructure:"db_password"`
}

// ReadKey returns the key used for read-only access: the anon key when set, otherwise the
// service role key.
func (s SupabaseConfig) ReadKey() string {
	if s.AnonKey != "" {
		return s.AnonKey
	}
	return s.ServiceRoleKey
}

type PostgresConfig struct {
	DSN          string        `mapstructure:"dsn"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	ConnMaxLife  time.Duration `mapstructure:"conn_max_life"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SiteConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ValidateStore checks that the selected backend has what it needs to connect for writing.
// A Supabase backend without URL or service role key yields ErrMissingCredentials.
func (c *Config) ValidateStore() error {
	if c.Store.Backend == BackendSupabase && (c.Supabase.URL == "" || c.Supabase.ServiceRoleKey == "") {
		return fmt.Errorf("%w: SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY must be set", ErrMissingCredentials)
	}
	return c.validateBackend()
}

// ValidateReadStore is ValidateStore for read-only access, where Supabase accepts the anon key.
func (c *Config) ValidateReadStore() error {
	if c.Store.Backend == BackendSupabase && (c.Supabase.URL == "" || c.Supabase.ReadKey() == "") {
		return fmt.Errorf("%w: SUPABASE_URL and SUPABASE_ANON_KEY or SUPABASE_SERVICE_ROLE_KEY must be set", ErrMissingCredentials)
	}
	return c.validateBackend()
}

func (c *Config) validateBackend() error {
	switch c.Store.Backend {
	case BackendSupabase:
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("%w: POSTGRES_DSN must be set", ErrMissingCredentials)
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("%w: SQLITE_PATH must be set", ErrMissingCredentials)
		}
	case BackendMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			return fmt.Errorf("%w: MONGO_URI and MONGO_DATABASE must be set", ErrMissingCredentials)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Store.Backend)
	}
	return nil
}

// ValidateServer checks the HTTP server settings. A missing OpenAI key is not an error here:
// the completion endpoint reports it per request.
func (c *Config) ValidateServer() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site base url cannot be empty")
	}
	return c.ValidateReadStore()
}
