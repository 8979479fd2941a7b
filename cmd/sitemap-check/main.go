package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"slate-seo/pkg/sitemap"
)

var (
	baseURL       string
	maxViolations int
)

var errInvalidSitemap = errors.New("sitemap does not match the site layout")

var rootCmd = &cobra.Command{
	Use:   "sitemap-check [sitemap-url]",
	Short: "Fetch a deployed sitemap and verify its layout",
	Long: `Fetches a sitemap and checks that the site root comes first with priority 1.0,
create pages have priority 0.9, other pages 0.8, and every lastmod is YYYY-MM-DD.
Exits non-zero when any entry does not match.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sitemapURL := "https://slate.ink/sitemap.xml"
		if len(args) > 0 {
			sitemapURL = args[0]
		}
		return check(cmd, sitemapURL)
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base", "", "site origin (default: origin of the sitemap URL)")
	rootCmd.Flags().IntVar(&maxViolations, "max", 20, "number of problems to print")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Sitemap check failed: %v\n", err)
		os.Exit(1)
	}
}

func check(cmd *cobra.Command, sitemapURL string) error {
	base := baseURL
	if base == "" {
		u, err := url.Parse(sitemapURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid sitemap url %q", sitemapURL)
		}
		base = u.Scheme + "://" + u.Host
	}

	entries, err := sitemap.NewFetcher().Fetch(cmd.Context(), sitemapURL)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %d entries from %s\n", len(entries), sitemapURL)

	violations := sitemap.Check(entries, base)
	if len(violations) == 0 {
		fmt.Fprintln(out, "OK")
		return nil
	}

	shown := max(0, min(maxViolations, len(violations)))
	fmt.Fprintf(out, "Found %d problems:\n", len(violations))
	for _, v := range violations[:shown] {
		fmt.Fprintf(out, "  - %s\n", v)
	}
	if shown < len(violations) {
		fmt.Fprintf(out, "  ... %d more\n", len(violations)-shown)
	}
	return fmt.Errorf("%w: %d problems", errInvalidSitemap, len(violations))
}
