package doccheck

import (
	"context"
	"io"
)

// Result pairs a catalogued path with its existence status for one run.
type Result struct {
	Path    string
	Present bool
}

// CategoryResult holds the per-path results for one catalog category, in
// declaration order.
type CategoryResult struct {
	Label   string
	Results []Result
}

// Report is the outcome of one full sweep of the catalog against a root
// directory. Reports are created fresh each run and never persisted.
type Report struct {
	// RunID uniquely identifies the run in machine-readable output.
	RunID string

	// Root is the directory the catalog was resolved against.
	Root string

	Categories []CategoryResult
}

// Summary holds the aggregate counts for a report.
// Total == Present + Missing always holds.
type Summary struct {
	Total   int
	Present int
	Missing int
}

// Summary folds over all results and returns the aggregate counts.
func (r *Report) Summary() Summary {
	var s Summary
	for _, cat := range r.Categories {
		for _, res := range cat.Results {
			s.Total++
			if res.Present {
				s.Present++
			} else {
				s.Missing++
			}
		}
	}
	return s
}

// Complete reports whether every catalogued path was present.
func (r *Report) Complete() bool {
	return r.Summary().Missing == 0
}

// Prober answers existence queries against a filesystem.
// Implementations hide how the query is performed; a returned error means
// the query itself could not be carried out, which callers fold into
// "missing".
type Prober interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// Checker sweeps a catalog against a root directory and produces a report.
// Report ordering follows catalog declaration order regardless of how the
// implementation schedules the individual queries.
type Checker interface {
	Check(ctx context.Context, root string, catalog *Catalog) (*Report, error)
}

// Renderer writes a report in some output format.
type Renderer interface {
	Render(w io.Writer, report *Report) error
}
