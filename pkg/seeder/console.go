package seeder

import (
	"fmt"
	"io"
	"strings"
)

// ConsoleReporter prints one line per page and a summary table.
type ConsoleReporter struct {
	out io.Writer

	// SitemapURL is suggested as a next step after pages were added. Optional.
	SitemapURL string
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) Start(total int, dryRun bool) {
	fmt.Fprintln(r.out, "🌱 SEO Pages Seeder")
	if dryRun {
		fmt.Fprintln(r.out, "🔍 Dry run: nothing will be written")
	}
	fmt.Fprintf(r.out, "📊 Total pages to process: %d\n\n", total)
}

func (r *ConsoleReporter) Record(o Outcome) {
	switch o.Status {
	case StatusAdded:
		fmt.Fprintf(r.out, "✅ Added: %s\n", o.Path)
	case StatusPending:
		fmt.Fprintf(r.out, "➕ Would add: %s\n", o.Path)
	case StatusSkipped:
		fmt.Fprintf(r.out, "⏭️  Skipped: %s (already exists)\n", o.Path)
	case StatusError:
		fmt.Fprintf(r.out, "❌ Error adding %s: %v\n", o.Slug, o.Err)
	}
}

func (r *ConsoleReporter) Finish(s Summary) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(r.out, "\n%s\n📊 Summary:\n%s\n", rule, rule)
	if s.DryRun {
		fmt.Fprintf(r.out, "   ➕ Would add: %d\n", s.Pending)
	} else {
		fmt.Fprintf(r.out, "   ✅ Added:   %d\n", s.Added)
	}
	fmt.Fprintf(r.out, "   ⏭️  Skipped: %d\n", s.Skipped)
	fmt.Fprintf(r.out, "   ❌ Errors:  %d\n", s.Errors)
	fmt.Fprintf(r.out, "   📄 Total:   %d\n", s.Total)
	fmt.Fprintf(r.out, "%s\n\n", rule)

	switch {
	case s.Added > 0:
		fmt.Fprintln(r.out, "🎉 New pages added successfully!")
		fmt.Fprintln(r.out, "\n📋 Next steps:")
		fmt.Fprintln(r.out, "   1. Restart the site so the new pages are picked up")
		if r.SitemapURL != "" {
			fmt.Fprintf(r.out, "   2. Check sitemap: %s\n", r.SitemapURL)
		} else {
			fmt.Fprintln(r.out, "   2. Check the sitemap")
		}
		fmt.Fprintln(r.out, "   3. Test new pages in browser")
	case s.Total > 0 && s.Skipped == s.Total:
		fmt.Fprintln(r.out, "✨ All pages already exist - nothing to add!")
		fmt.Fprintln(r.out, "\n💡 To add more pages:")
		fmt.Fprintln(r.out, "   1. Add pages to the catalog (pkg/catalog)")
		fmt.Fprintln(r.out, "   2. Run: seed-seo-pages")
	}
}
