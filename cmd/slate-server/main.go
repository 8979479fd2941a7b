package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slate-seo/pkg/assistant"
	"slate-seo/pkg/config"
	"slate-seo/pkg/db"
	"slate-seo/pkg/logging"
	"slate-seo/pkg/server"
	"slate-seo/pkg/sitemap"
)

var (
	envFile string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:           "slate-server",
	Short:         "Serve /sitemap.xml and the public AI endpoint",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file (optional)")
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address override, e.g. :8080")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	log := logging.New(cfg.Log)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := db.OpenReader(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var completer assistant.Completer
	if cfg.OpenAI.APIKey != "" {
		completer = assistant.NewOpenAICompleter(assistant.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		})
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set; /api/ai-public will fail")
	}

	srv, err := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Sitemap:         sitemap.NewBuilder(store, cfg.Site.BaseURL),
		Assistant:       assistant.NewService(completer, log),
		Logger:          log,
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}
