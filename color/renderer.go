// Package color renders inventory reports for terminals, with pass/fail
// glyphs colored via fatih/color.
package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fwojciec/doccheck"
)

// DefaultTitle is the report header used when no title is configured.
const DefaultTitle = "Documentation Structure Verification"

var (
	nextStepsComplete = []string{
		"Replace placeholder images in _static/imgs/",
		"Build the documentation: make html",
		"View locally: open _build/html/index.html",
		"Commit and push to deploy to GitHub Pages",
	}
	nextStepsMissing = []string{
		"Create the files marked ✗ above",
		"Re-run doccheck to confirm the tree is complete",
	}
)

// Ensure Renderer implements doccheck.Renderer at compile time.
var _ doccheck.Renderer = (*Renderer)(nil)

// Renderer writes a grouped, human-readable report: a header, one section
// per category with a glyph per path, an aggregate summary, a verdict line
// and a fixed next-steps list. Output is deterministic for a given report.
type Renderer struct {
	// Disable turns off ANSI colors, e.g. for piped output or tests.
	Disable bool

	// Title overrides the report header.
	Title string
}

func (r *Renderer) glyphs() (pass, fail string) {
	if r.Disable {
		return "✓", "✗"
	}
	return color.GreenString("✓"), color.RedString("✗")
}

// Render writes the report in one call so repeated runs against an
// unchanged tree produce byte-identical output.
func (r *Renderer) Render(w io.Writer, report *doccheck.Report) error {
	pass, fail := r.glyphs()
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}
	rule := strings.Repeat("=", 80)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")

	for _, cat := range report.Categories {
		b.WriteString("\n" + cat.Label + ":\n")
		for _, res := range cat.Results {
			glyph := fail
			if res.Present {
				glyph = pass
			}
			fmt.Fprintf(&b, "  %s %s\n", glyph, res.Path)
		}
	}

	s := report.Summary()
	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Total files: %d\n", s.Total)
	fmt.Fprintf(&b, "Present: %d %s\n", s.Present, pass)
	fmt.Fprintf(&b, "Missing: %d %s\n", s.Missing, fail)

	steps := nextStepsMissing
	if s.Missing == 0 {
		b.WriteString("\n✅ All documentation files are present!\n")
		steps = nextStepsComplete
	} else {
		b.WriteString("\n⚠️  Some files are missing. Please check the output above.\n")
	}
	b.WriteString("\nNext steps:\n")
	for i, step := range steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
