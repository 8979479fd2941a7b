package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEnvFile is read by Load when no path is given. It may be absent.
const DefaultEnvFile = ".env"

// envBindings maps config keys to the environment variables that can set them, in order of
// preference.
var envBindings = map[string][]string{
	"store.backend":             {"STORE_BACKEND"},
	"supabase.url":              {"SUPABASE_URL"},
	"supabase.service_role_key": {"SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_KEY"},
	"supabase.anon_key":         {"SUPABASE_ANON_KEY", "SUPABASE_KEY"},
	"supabase.db_url":           {"SUPABASE_DB_URL"},
	"supabase.db_password":      {"SUPABASE_DB_PASSWORD"},
	"postgres.dsn":              {"POSTGRES_DSN", "DATABASE_URL"},
	"postgres.max_open_conns":   {"POSTGRES_MAX_OPEN_CONNS"},
	"postgres.max_idle_conns":   {"POSTGRES_MAX_IDLE_CONNS"},
	"postgres.conn_max_life":    {"POSTGRES_CONN_MAX_LIFE"},
	"sqlite.path":               {"SQLITE_PATH"},
	"mongo.uri":                 {"MONGO_URI"},
	"mongo.database":            {"MONGO_DATABASE"},
	"openai.api_key":            {"OPENAI_API_KEY", "NUXT_OPENAI_API_KEY"},
	"openai.model":              {"OPENAI_MODEL"},
	"openai.base_url":           {"OPENAI_BASE_URL"},
	"openai.timeout":            {"OPENAI_TIMEOUT"},
	"server.addr":               {"SERVER_ADDR"},
	"server.read_timeout":       {"SERVER_READ_TIMEOUT"},
	"server.write_timeout":      {"SERVER_WRITE_TIMEOUT"},
	"server.shutdown_timeout":   {"SERVER_SHUTDOWN_TIMEOUT"},
	"site.base_url":             {"SITE_BASE_URL"},
	"log.level":                 {"LOG_LEVEL"},
	"log.format":                {"LOG_FORMAT"},
	"log.time_format":           {"LOG_TIME_FORMAT"},
}

func setDefaults(v *viper.Viper) {
	for key := range envBindings {
		v.SetDefault(key, "")
	}
	v.SetDefault("store.backend", BackendSupabase)
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_life", 30*time.Minute)
	v.SetDefault("sqlite.path", "slate.db")
	v.SetDefault("mongo.database", "slate")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.timeout", 60*time.Second)
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("site.base_url", "https://slate.ink")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads configuration from the environment, falling back to the dotenv file at path.
// An empty path means DefaultEnvFile; a missing file is not an error.
// Real environment variables always win over the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = DefaultEnvFile
	}
	fileValues, err := readEnvFile(path)
	if err != nil {
		return nil, err
	}

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
		for _, name := range names {
			if val, ok := fileValues[strings.ToLower(name)]; ok && val != "" {
				v.SetDefault(key, val)
				break
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")

	return &cfg, nil
}

// readEnvFile returns the KEY=value pairs of a dotenv file, keyed by lower-cased name.
func readEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	f := viper.New()
	f.SetConfigFile(path)
	f.SetConfigType("env")
	if err := f.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	out := make(map[string]string)
	for _, key := range f.AllKeys() {
		out[key] = f.GetString(key)
	}
	return out, nil
}
