package main

import (
	"bytes"
	"fmt"
	stdslog "log/slog"
	"os"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/check"
	"github.com/fwojciec/doccheck/color"
	"github.com/fwojciec/doccheck/etree"
	docslog "github.com/fwojciec/doccheck/slog"
	"github.com/fwojciec/doccheck/yaml"
)

// Run executes the verify command. It prints the report to stdout and
// returns ENOTFOUND when any catalogued file is missing, which the caller
// turns into a non-zero exit status for CI.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	catalog := doccheck.DefaultCatalog()
	if c.Catalog != "" {
		var err error
		catalog, err = yaml.LoadCatalog(c.Catalog)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doccheck.ErrorMessage(err))
			return err
		}
	}

	prober := deps.Prober
	if c.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(deps.Stderr, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
		prober = docslog.NewLoggingProber(prober, logger)
	}

	checker := deps.Checker
	if checker == nil {
		checker = &check.Checker{Prober: prober, Concurrency: c.Concurrency}
	}

	report, err := checker.Check(deps.Ctx, c.Root, catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccheck.ErrorMessage(err))
		return err
	}

	renderer := &color.Renderer{Disable: c.NoColor}
	if err := renderer.Render(deps.Stdout, report); err != nil {
		return err
	}

	if c.JUnit != "" {
		var buf bytes.Buffer
		if err := (&etree.JUnitRenderer{}).Render(&buf, report); err != nil {
			return err
		}
		if err := os.WriteFile(c.JUnit, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write JUnit report: %w", err)
		}
	}

	if s := report.Summary(); s.Missing > 0 {
		return doccheck.Errorf(doccheck.ENOTFOUND, "%d of %d catalogued files missing", s.Missing, s.Total)
	}
	return nil
}
