package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"slate-seo/pkg/catalog"
	"slate-seo/pkg/domain"
)

var format string

var rootCmd = &cobra.Command{
	Use:           "seo-catalog",
	Short:         "Inspect the SEO page catalog and manage stored pages",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Build the catalog and report duplicates and dangling related pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return validate(cmd.OutOrStdout())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return export(cmd.OutOrStdout(), format)
	},
}

func init() {
	exportCmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(validateCmd, exportCmd, publishCmd, unpublishCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validate(out io.Writer) error {
	cat, err := catalog.Build()
	if err != nil {
		return err
	}

	counts := cat.CountByType()
	fmt.Fprintf(out, "Catalog OK: %d pages (create=%d tool=%d vs=%d), %d categories\n",
		cat.Len(), counts[domain.PageTypeCreate], counts[domain.PageTypeTool], counts[domain.PageTypeVs], len(cat.Categories()))

	dangling := cat.DanglingRelated()
	if len(dangling) == 0 {
		return nil
	}

	slugs := make([]string, 0, len(dangling))
	for slug := range dangling {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	fmt.Fprintf(out, "Warning: %d pages link to related pages outside the catalog:\n", len(slugs))
	for _, slug := range slugs {
		fmt.Fprintf(out, "  %s -> %v\n", slug, dangling[slug])
	}
	return nil
}

func export(out io.Writer, format string) error {
	cat, err := catalog.Build()
	if err != nil {
		return err
	}

	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cat.Pages())
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.Pages())
	}
	return fmt.Errorf("unknown format %q (want yaml or json)", format)
}
