package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/doccheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Prober performs existence queries for the verify command.
	Prober doccheck.Prober

	// Checker overrides the default sweep implementation when set.
	Checker doccheck.Checker

	// Now supplies the build timestamp for conf rendering.
	Now func() time.Time
}

// CLI defines the command-line interface structure for Kong. Verify is the
// default command, so a bare invocation sweeps the current directory.
type CLI struct {
	Verify  VerifyCmd  `cmd:"" default:"withargs" help:"Check the documentation tree against the expected file catalog"`
	Catalog CatalogCmd `cmd:"" help:"Print the active file catalog"`
	Conf    ConfCmd    `cmd:"" help:"Manage the documentation build configuration"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct {
	Root        string `short:"r" default:"." help:"Documentation root directory"`
	Catalog     string `help:"Catalog YAML file (default: built-in catalog)"`
	JUnit       string `name:"junit" help:"Also write a JUnit XML report to this file"`
	Concurrency int    `short:"c" default:"1" help:"Parallel existence queries (report order is unaffected)"`
	NoColor     bool   `name:"no-color" help:"Disable colored output"`
	Verbose     bool   `short:"v" help:"Log each existence query to stderr"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct {
	Catalog string `help:"Catalog YAML file (default: built-in catalog)"`
}

// ConfCmd groups the build-config subcommands.
type ConfCmd struct {
	Init   ConfInitCmd   `cmd:"" help:"Write the default build config as YAML"`
	Render ConfRenderCmd `cmd:"" help:"Render conf.py from a YAML build config"`
}

// ConfInitCmd is the "conf init" subcommand.
type ConfInitCmd struct {
	Out string `short:"o" help:"Write to a file instead of stdout"`
}

// ConfRenderCmd is the "conf render" subcommand.
type ConfRenderCmd struct {
	Config      string `short:"C" default:"docs.yaml" help:"Build config YAML file"`
	Root        string `short:"r" default:"." help:"Documentation root directory (used for fingerprinting)"`
	Out         string `short:"o" help:"Write to a file instead of stdout"`
	Fingerprint bool   `help:"Embed content-hash cache-busting tokens for the configured CSS assets"`
}
