package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load looks at, so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, names := range envBindings {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, BackendSupabase, cfg.Store.Backend)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, ":3000", cfg.Server.Addr)
	assert.Equal(t, "https://slate.ink", cfg.Site.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Supabase.URL)
}

func TestLoadServiceKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "legacy-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.Supabase.ServiceRoleKey)
	require.NoError(t, cfg.ValidateStore())

	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "role-key")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "role-key", cfg.Supabase.ServiceRoleKey)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, `SUPABASE_URL=https://file.supabase.co
SUPABASE_SERVICE_ROLE_KEY=file-key
OPENAI_TIMEOUT=5s
SITE_BASE_URL=https://example.com/
STORE_BACKEND=SQLite
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://file.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "file-key", cfg.Supabase.ServiceRoleKey)
	assert.Equal(t, 5*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
}

func TestLoadEnvironmentBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "SUPABASE_URL=https://file.supabase.co\n")
	t.Setenv("SUPABASE_URL", "https://env.supabase.co")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.supabase.co", cfg.Supabase.URL)
}

func TestValidateStore(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "supabase without key",
			cfg:     Config{Store: StoreConfig{Backend: BackendSupabase}, Supabase: SupabaseConfig{URL: "https://x.supabase.co"}},
			wantErr: ErrMissingCredentials,
		},
		{
			name: "supabase complete",
			cfg:  Config{Store: StoreConfig{Backend: BackendSupabase}, Supabase: SupabaseConfig{URL: "https://x.supabase.co", ServiceRoleKey: "k"}},
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Store: StoreConfig{Backend: BackendPostgres}},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "mongo without uri",
			cfg:     Config{Store: StoreConfig{Backend: BackendMongo}, Mongo: MongoConfig{Database: "slate"}},
			wantErr: ErrMissingCredentials,
		},
		{
			name: "memory",
			cfg:  Config{Store: StoreConfig{Backend: BackendMemory}},
		},
		{
			name:    "unknown",
			cfg:     Config{Store: StoreConfig{Backend: "dynamo"}},
			wantErr: ErrUnknownBackend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateStore()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadKey(t *testing.T) {
	s := SupabaseConfig{ServiceRoleKey: "service"}
	assert.Equal(t, "service", s.ReadKey())
	s.AnonKey = "anon"
	assert.Equal(t, "anon", s.ReadKey())
}

func TestValidateReadStore(t *testing.T) {
	anonOnly := Config{
		Store:    StoreConfig{Backend: BackendSupabase},
		Supabase: SupabaseConfig{URL: "https://x.supabase.co", AnonKey: "anon"},
	}
	assert.NoError(t, anonOnly.ValidateReadStore())
	assert.ErrorIs(t, anonOnly.ValidateStore(), ErrMissingCredentials)

	noKey := Config{
		Store:    StoreConfig{Backend: BackendSupabase},
		Supabase: SupabaseConfig{URL: "https://x.supabase.co"},
	}
	assert.ErrorIs(t, noKey.ValidateReadStore(), ErrMissingCredentials)

	unknown := Config{Store: StoreConfig{Backend: "dynamo"}}
	assert.ErrorIs(t, unknown.ValidateReadStore(), ErrUnknownBackend)
}

func TestValidateServerWithAnonKey(t *testing.T) {
	cfg := Config{
		Store:    StoreConfig{Backend: BackendSupabase},
		Supabase: SupabaseConfig{URL: "https://x.supabase.co", AnonKey: "anon"},
		Server:   ServerConfig{Addr: ":3000"},
		Site:     SiteConfig{BaseURL: "https://slate.ink"},
	}
	assert.NoError(t, cfg.ValidateServer())
}
