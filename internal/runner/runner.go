package runner

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryotahase/research-digest/internal/archive"
	"github.com/ryotahase/research-digest/internal/config"
	"github.com/ryotahase/research-digest/internal/digest"
	"github.com/ryotahase/research-digest/internal/seen"
)

// Runner executes the configure -> generate -> archive pipeline once
// per invocation.
type Runner struct {
	mode config.Mode
	gen  digest.Generator
	arch *archive.Archive
	seen *seen.Store
	now  func() time.Time
}

func New(mode config.Mode, gen digest.Generator, arch *archive.Archive, seenStore *seen.Store) *Runner {
	return &Runner{
		mode: mode,
		gen:  gen,
		arch: arch,
		seen: seenStore,
		now:  time.Now,
	}
}

// Run executes the full pipeline once. A generator error status surfaces
// as a returned error with no artifact written; a zero-paper monthly run
// archives nothing and still succeeds.
func (r *Runner) Run(ctx context.Context) error {
	now := r.now()
	cfg := config.BuildDigestConfig(r.mode, now)
	log.Printf("Starting %s digest run (window %s..%s)", r.mode, cfg.DateFilter.PublishedAfter, cfg.DateFilter.PublishedBefore)

	// Monthly runs track seen papers across invocations; daily and
	// weekly windows are short enough not to need it.
	var seenSet seen.Set
	if r.mode == config.ModeMonthly {
		seenSet = r.seen.Load()
		cfg.ExcludeIDs = seenSet.IDs()
		log.Printf("Excluding %d previously seen papers", len(cfg.ExcludeIDs))
	}

	log.Println("Generating digest...")
	result, err := r.gen.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("runner: generate failed: %w", err)
	}
	if result.Status != digest.StatusOK {
		return fmt.Errorf("runner: generator reported errors: %s", strings.Join(result.Errors, "; "))
	}

	d := result.Digest
	log.Printf("Generated digest with %d papers", len(d.Papers))

	if r.mode == config.ModeMonthly && len(d.Papers) == 0 {
		log.Println("No new papers this run, skipping archive")
		return nil
	}

	d.Date = namingPolicy(r.mode).Stamp(now)
	if d.RunID == "" {
		d.RunID = uuid.NewString()
	}

	path, err := r.arch.Store(d)
	if err != nil {
		return fmt.Errorf("runner: archive failed: %w", err)
	}
	log.Printf("Saved digest to %s", path)

	if r.mode == config.ModeMonthly {
		for _, p := range d.Papers {
			seenSet.Add(p.ID)
		}
		if err := r.seen.Save(seenSet); err != nil {
			return fmt.Errorf("runner: failed to save seen papers: %w", err)
		}
		log.Printf("Seen papers set now holds %d entries", len(seenSet))
	}

	return nil
}

func namingPolicy(mode config.Mode) archive.NamingPolicy {
	if mode == config.ModeMonthly {
		return archive.TimestampNaming{}
	}
	return archive.DateNaming{}
}
