package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/fs"
	"github.com/fwojciec/doccheck/sphinx"
	"github.com/fwojciec/doccheck/yaml"
)

// Run executes the conf init command.
func (c *ConfInitCmd) Run(deps *Dependencies) error {
	data, err := yaml.MarshalConfig(sphinx.Default())
	if err != nil {
		return err
	}
	if c.Out == "" {
		_, err := deps.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Out, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	return nil
}

// Run executes the conf render command.
func (c *ConfRenderCmd) Run(deps *Dependencies) error {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccheck.ErrorMessage(err))
		return err
	}

	var fingerprints map[string]string
	if c.Fingerprint {
		fingerprints = c.fingerprintAssets(cfg)
	}

	out := sphinx.RenderConfPy(cfg, deps.Now(), fingerprints)
	var w io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to write conf.py: %w", err)
		}
		defer f.Close()
		w = f
	}
	_, err = io.WriteString(w, out)
	return err
}

// fingerprintAssets hashes the configured CSS assets under the static
// path. Assets that do not exist yet are skipped; the verify command is
// responsible for reporting them.
func (c *ConfRenderCmd) fingerprintAssets(cfg *sphinx.Config) map[string]string {
	staticDir := "_static"
	if len(cfg.HTMLStaticPath) > 0 {
		staticDir = cfg.HTMLStaticPath[0]
	}

	fingerprints := make(map[string]string)
	for _, asset := range cfg.HTMLCSSFiles {
		path := filepath.Join(c.Root, filepath.FromSlash(staticDir), filepath.FromSlash(asset))
		token, err := fs.Fingerprint(path)
		if err != nil {
			continue
		}
		fingerprints[asset] = token
	}
	return fingerprints
}
