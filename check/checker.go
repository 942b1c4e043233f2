// Package check provides catalog sweep orchestration. It resolves every
// catalogued path against a root directory, queries existence through a
// doccheck.Prober, and assembles a report whose ordering always follows
// catalog declaration order.
package check

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/doccheck"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Checker implements doccheck.Checker at compile time.
var _ doccheck.Checker = (*Checker)(nil)

// Checker sweeps a catalog against a root directory.
type Checker struct {
	Prober doccheck.Prober

	// Concurrency bounds parallel existence queries. Values of 1 or
	// below run the sweep as a single linear pass.
	Concurrency int
}

// Check performs one full, independent sweep of the catalog. A query that
// fails (unreadable parent, permission error) folds into "missing"; the
// only error returned is context cancellation or an invalid catalog.
func (c *Checker) Check(ctx context.Context, root string, catalog *doccheck.Catalog) (*doccheck.Report, error) {
	if catalog == nil {
		catalog = doccheck.DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	report := &doccheck.Report{
		RunID:      uuid.NewString(),
		Root:       root,
		Categories: make([]doccheck.CategoryResult, len(catalog.Categories)),
	}
	for i, cat := range catalog.Categories {
		results := make([]doccheck.Result, len(cat.Paths))
		for j, p := range cat.Paths {
			results[j] = doccheck.Result{Path: p}
		}
		report.Categories[i] = doccheck.CategoryResult{Label: cat.Label, Results: results}
	}

	if c.Concurrency > 1 {
		if err := c.sweepParallel(ctx, root, report); err != nil {
			return nil, err
		}
		return report, nil
	}
	if err := c.sweepSerial(ctx, root, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *Checker) sweepSerial(ctx context.Context, root string, report *doccheck.Report) error {
	for i := range report.Categories {
		for j := range report.Categories[i].Results {
			res := &report.Categories[i].Results[j]
			present, err := c.Prober.Exists(ctx, resolve(root, res.Path))
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				present = false
			}
			res.Present = present
		}
	}
	return nil
}

// sweepParallel runs queries through a bounded worker pool. Each worker
// writes into its own preassigned result slot, so report ordering is
// unaffected by scheduling.
func (c *Checker) sweepParallel(ctx context.Context, root string, report *doccheck.Report) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i := range report.Categories {
		for j := range report.Categories[i].Results {
			res := &report.Categories[i].Results[j]
			g.Go(func() error {
				present, err := c.Prober.Exists(gctx, resolve(root, res.Path))
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					present = false
				}
				res.Present = present
				return nil
			})
		}
	}
	return g.Wait()
}

// resolve joins a slash-separated catalog path onto the root directory
// using the host separator.
func resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
