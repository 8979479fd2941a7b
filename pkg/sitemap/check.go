package sitemap

import (
	"fmt"
	"strings"
	"time"

	"slate-seo/pkg/domain"
)

// Violation is an entry that does not match the layout Builder produces.
type Violation struct {
	Index    int // position in the document, 0 for the root entry
	Location string
	Problem  string
}

func (v Violation) String() string {
	return fmt.Sprintf("entry %d (%s): %s", v.Index+1, v.Location, v.Problem)
}

// Check compares entries against the site layout: the root URL first with priority 1.0, then
// <base>/<type>/<slug> pages with priority 0.9 for create pages and 0.8 for the rest. Dates must be
// YYYY-MM-DD; only page entries may omit them.
func Check(entries []Entry, baseURL string) []Violation {
	baseURL = strings.TrimRight(baseURL, "/")
	root := baseURL + "/"

	if len(entries) == 0 {
		return []Violation{{Index: 0, Location: root, Problem: "sitemap has no entries"}}
	}

	var out []Violation
	add := func(i int, e Entry, format string, args ...any) {
		out = append(out, Violation{Index: i, Location: e.Location, Problem: fmt.Sprintf(format, args...)})
	}

	first := entries[0]
	if first.Location != root {
		add(0, first, "first entry must be the site root %s", root)
	} else {
		if first.Priority != PriorityRoot {
			add(0, first, "root priority %q, want %s", first.Priority, PriorityRoot)
		}
		if first.ChangeFreq != ChangeFreqDaily {
			add(0, first, "root changefreq %q, want %s", first.ChangeFreq, ChangeFreqDaily)
		}
		if !validDate(first.LastMod) {
			add(0, first, "root lastmod %q is not YYYY-MM-DD", first.LastMod)
		}
	}

	seen := map[string]bool{first.Location: true}
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		if seen[e.Location] {
			add(i, e, "duplicate location")
			continue
		}
		seen[e.Location] = true

		pageType, ok := pageTypeOf(e.Location, baseURL)
		if !ok {
			add(i, e, "location is not %s/<type>/<slug>", baseURL)
			continue
		}
		if want := priority(pageType); e.Priority != want {
			add(i, e, "priority %q, want %s for %s pages", e.Priority, want, pageType)
		}
		if e.ChangeFreq != ChangeFreqWeekly {
			add(i, e, "changefreq %q, want %s", e.ChangeFreq, ChangeFreqWeekly)
		}
		if e.LastMod != "" && !validDate(e.LastMod) {
			add(i, e, "lastmod %q is not YYYY-MM-DD", e.LastMod)
		}
	}
	return out
}

func pageTypeOf(location, baseURL string) (domain.PageType, bool) {
	rest, ok := strings.CutPrefix(location, baseURL+"/")
	if !ok {
		return "", false
	}
	kind, slug, ok := strings.Cut(rest, "/")
	if !ok || slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	t := domain.PageType(kind)
	return t, t.Valid()
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
