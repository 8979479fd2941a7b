package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slate-seo/pkg/catalog"
	"slate-seo/pkg/config"
	"slate-seo/pkg/db"
	"slate-seo/pkg/logging"
	"slate-seo/pkg/seeder"
)

var (
	envFile string
	backend string
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "seed-seo-pages",
	Short: "Insert missing SEO landing pages into the seo_pages table",
	Long: `Builds the SEO page catalog and inserts every page whose slug is not stored yet.
Existing pages are skipped, never updated, so the command is safe to re-run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with store credentials (optional)")
	rootCmd.Flags().StringVar(&backend, "backend", "", "store backend override: supabase, postgres, sqlite, mongo, memory")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be added without writing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			fmt.Fprintln(os.Stderr, "❌ Missing store credentials")
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Store.Backend = backend
	}
	if err := cfg.ValidateStore(); err != nil {
		return err
	}

	log := logging.New(cfg.Log)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat, err := catalog.Build()
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	for slug, missing := range cat.DanglingRelated() {
		log.Warn().Str("slug", slug).Strs("related_pages", missing).Msg("related pages not in catalog")
	}

	store, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	reporter := seeder.NewConsoleReporter(os.Stdout)
	reporter.SitemapURL = cfg.Site.BaseURL + "/sitemap.xml"

	s, err := seeder.NewSeeder(seeder.Config{
		Store:    store,
		Reporter: reporter,
		Logger:   log,
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	_, err = s.Run(ctx, cat.Pages())
	return err
}
