// Package sphinx models the declarative configuration consumed by the
// Sphinx documentation generator and renders it to a conf.py. The
// generator itself is external; this package only produces its input.
package sphinx

import "github.com/fwojciec/doccheck"

// ThemeOptions holds the book-theme options the docs site uses.
type ThemeOptions struct {
	// Show the site's top-level sections in the left sidebar on all pages.
	HomePageInTOC bool `yaml:"home_page_in_toc"`

	// How many levels of the TOC to show in the navbar/sidebar.
	ShowNavbarDepth int `yaml:"show_navbar_depth"`

	RepositoryURL       string `yaml:"repository_url"`
	UseRepositoryButton bool   `yaml:"use_repository_button"`
}

// IntersphinxTarget maps an external project to its hosted documentation
// base URL and, optionally, a local inventory file. Targets are a slice so
// rendering order is deterministic.
type IntersphinxTarget struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	Inventory string `yaml:"inventory,omitempty"`
}

// Config is the full generator configuration.
type Config struct {
	Project   string `yaml:"project"`
	Copyright string `yaml:"copyright"`
	Author    string `yaml:"author"`
	Release   string `yaml:"release"`

	Extensions      []string `yaml:"extensions"`
	TemplatesPath   []string `yaml:"templates_path"`
	ExcludePatterns []string `yaml:"exclude_patterns"`

	HTMLTheme      string       `yaml:"html_theme"`
	HTMLTitle      string       `yaml:"html_title"`
	HTMLStaticPath []string     `yaml:"html_static_path"`
	HTMLCSSFiles   []string     `yaml:"html_css_files"`
	ThemeOptions   ThemeOptions `yaml:"theme_options"`

	Intersphinx []IntersphinxTarget `yaml:"intersphinx"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Project == "" {
		return doccheck.Errorf(doccheck.EINVALID, "config project name required")
	}
	if c.Release == "" {
		return doccheck.Errorf(doccheck.EINVALID, "config release required")
	}
	if c.HTMLTheme == "" {
		return doccheck.Errorf(doccheck.EINVALID, "config html theme required")
	}
	for _, target := range c.Intersphinx {
		if target.Name == "" || target.URL == "" {
			return doccheck.Errorf(doccheck.EINVALID, "intersphinx target requires name and url")
		}
	}
	return nil
}

// Default returns the reference configuration for the docs site.
func Default() *Config {
	return &Config{
		Project:   "RoboEval",
		Copyright: "2025, Yi Ru Wang, Carter Ung, et al.",
		Author:    "Yi Ru Wang, Carter Ung, et al.",
		Release:   "4.1.0",
		Extensions: []string{
			"sphinx.ext.autodoc",
			"sphinx.ext.napoleon",
			"sphinx.ext.viewcode",
			"sphinx.ext.intersphinx",
		},
		TemplatesPath:   []string{"_templates"},
		ExcludePatterns: []string{"_build", "Thumbs.db", ".DS_Store"},
		HTMLTheme:       "sphinx_book_theme",
		HTMLTitle:       "RoboEval Documentation",
		HTMLStaticPath:  []string{"_static"},
		HTMLCSSFiles:    []string{"css/custom.css"},
		ThemeOptions: ThemeOptions{
			HomePageInTOC:       true,
			ShowNavbarDepth:     2,
			RepositoryURL:       "https://github.com/helen9975/RoboEval",
			UseRepositoryButton: true,
		},
		Intersphinx: []IntersphinxTarget{
			{Name: "python", URL: "https://docs.python.org/3"},
			{Name: "numpy", URL: "https://numpy.org/doc/stable/"},
			{Name: "gymnasium", URL: "https://gymnasium.farama.org/"},
		},
	}
}
