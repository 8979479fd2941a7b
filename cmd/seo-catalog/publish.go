package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"slate-seo/pkg/config"
	"slate-seo/pkg/db"
)

var (
	envFile string
	backend string
)

var publishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Show a stored page in the sitemap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetPublished(cmd, args[0], true)
	},
}

var unpublishCmd = &cobra.Command{
	Use:   "unpublish <slug>",
	Short: "Hide a stored page from the sitemap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetPublished(cmd, args[0], false)
	},
}

func init() {
	for _, c := range []*cobra.Command{publishCmd, unpublishCmd} {
		c.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file with store credentials (optional)")
		c.Flags().StringVar(&backend, "backend", "", "store backend override: supabase, postgres, sqlite, mongo")
	}
}

func runSetPublished(cmd *cobra.Command, slug string, published bool) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if backend != "" {
		cfg.Store.Backend = backend
	}

	store, err := db.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	p, ok := store.(db.Publisher)
	if !ok {
		return fmt.Errorf("backend %q cannot change the published flag", cfg.Store.Backend)
	}
	return setPublished(cmd.Context(), cmd.OutOrStdout(), p, slug, published)
}

func setPublished(ctx context.Context, out io.Writer, store db.Publisher, slug string, published bool) error {
	if err := store.SetPublished(ctx, slug, published); err != nil {
		return err
	}
	state := "unpublished"
	if published {
		state = "published"
	}
	fmt.Fprintf(out, "%s: %s\n", slug, state)
	return nil
}
