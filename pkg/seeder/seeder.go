package seeder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"slate-seo/pkg/db"
	"slate-seo/pkg/domain"
)

// Status is the result of seeding one page.
type Status string

const (
	StatusAdded   Status = "added"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"

	// StatusPending marks a page a dry run would have inserted.
	StatusPending Status = "pending"
)

// Outcome is the per-page result of a run.
type Outcome struct {
	Slug   string
	Path   string
	Status Status
	Err    error
}

// Summary counts the outcomes of a run.
type Summary struct {
	Added    int
	Skipped  int
	Errors   int
	Pending  int
	Total    int
	DryRun   bool
	Outcomes []Outcome
}

// Reporter receives progress of a run.
type Reporter interface {
	Start(total int, dryRun bool)
	Record(o Outcome)
	Finish(s Summary)
}

// Config wires the seeder dependencies.
type Config struct {
	Store    db.PageStore
	Reporter Reporter
	Logger   zerolog.Logger

	// DryRun reports what would be inserted without writing.
	DryRun bool
}

// Seeder inserts catalog pages whose slug is not stored yet. Existing pages are never updated.
type Seeder struct {
	store    db.PageStore
	reporter Reporter
	log      zerolog.Logger
	dryRun   bool
}

func NewSeeder(cfg Config) (*Seeder, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("page store is required")
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Seeder{
		store:    cfg.Store,
		reporter: reporter,
		log:      cfg.Logger,
		dryRun:   cfg.DryRun,
	}, nil
}

// Run seeds pages in order. A failure to read the existing slugs aborts the run; a failed
// insert is recorded and the run continues with the next page.
func (s *Seeder) Run(ctx context.Context, pages []domain.Page) (Summary, error) {
	summary := Summary{Total: len(pages), DryRun: s.dryRun}
	s.reporter.Start(len(pages), s.dryRun)

	existing, err := s.store.ExistingSlugs(ctx)
	if err != nil {
		return summary, fmt.Errorf("read existing slugs: %w", err)
	}
	s.log.Debug().Int("existing", len(existing)).Msg("loaded existing slugs")

	seen := make(map[string]bool, len(existing))
	for slug := range existing {
		seen[slug] = true
	}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		o := s.seedOne(ctx, page, seen)
		switch o.Status {
		case StatusAdded:
			summary.Added++
			seen[page.Slug] = true
		case StatusPending:
			summary.Pending++
			seen[page.Slug] = true
		case StatusSkipped:
			summary.Skipped++
		case StatusError:
			summary.Errors++
		}
		summary.Outcomes = append(summary.Outcomes, o)
		s.reporter.Record(o)
	}

	s.log.Info().
		Int("added", summary.Added).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Int("total", summary.Total).
		Bool("dry_run", s.dryRun).
		Msg("seed complete")
	s.reporter.Finish(summary)
	return summary, nil
}

func (s *Seeder) seedOne(ctx context.Context, page domain.Page, seen map[string]bool) Outcome {
	o := Outcome{Slug: page.Slug, Path: page.Path()}

	if seen[page.Slug] {
		o.Status = StatusSkipped
		return o
	}
	if s.dryRun {
		o.Status = StatusPending
		return o
	}

	if err := s.store.InsertPage(ctx, page); err != nil {
		s.log.Error().Err(err).Str("slug", page.Slug).Msg("insert failed")
		o.Status = StatusError
		o.Err = err
		return o
	}
	o.Status = StatusAdded
	return o
}

type nopReporter struct{}

func (nopReporter) Start(int, bool) {}
func (nopReporter) Record(Outcome)  {}
func (nopReporter) Finish(Summary)  {}
