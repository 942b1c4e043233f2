package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/fs"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Prober used for existence queries. Replaceable for end-to-end
	// testing.
	Prober doccheck.Prober
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Prober: fs.NewProber(),
	}
}

// Run executes the CLI with the given arguments. A bare invocation runs
// the verify command against the current directory.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Prober: m.Prober,
		Now:    time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doccheck"),
		kong.Description("Verifies documentation tree completeness and manages the documentation build configuration."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}
