package doccheck

import "path"

// Category is a named, ordered group of related documentation paths.
// Paths are relative to the documentation root and use forward slashes.
type Category struct {
	Label string   `yaml:"label"`
	Paths []string `yaml:"paths"`
}

// Catalog is the fixed set of categories a documentation tree is expected
// to contain. Category order and within-category path order are
// significant: reports preserve declaration order.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Total returns the number of catalogued paths across all categories.
func (c *Catalog) Total() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Paths)
	}
	return n
}

// Validate returns an error if the catalog contains invalid entries.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return Errorf(EINVALID, "catalog requires at least one category")
	}
	seen := make(map[string]string)
	for _, cat := range c.Categories {
		if cat.Label == "" {
			return Errorf(EINVALID, "category label required")
		}
		if len(cat.Paths) == 0 {
			return Errorf(EINVALID, "category %q requires at least one path", cat.Label)
		}
		for _, p := range cat.Paths {
			if p == "" {
				return Errorf(EINVALID, "category %q contains an empty path", cat.Label)
			}
			if path.IsAbs(p) {
				return Errorf(EINVALID, "catalog path %q must be relative", p)
			}
			if prev, ok := seen[p]; ok {
				return Errorf(EINVALID, "catalog path %q appears in both %q and %q", p, prev, cat.Label)
			}
			seen[p] = cat.Label
		}
	}
	return nil
}

// DefaultCatalog returns the catalog of files the documentation tree is
// expected to contain. The declaration order below is the report order.
func DefaultCatalog() *Catalog {
	return &Catalog{Categories: []Category{
		{
			Label: "Core Files",
			Paths: []string{
				"index.rst",
				"conf.py",
				"Makefile",
				"make.bat",
				"README.md",
				".gitignore",
			},
		},
		{
			Label: "Getting Started",
			Paths: []string{
				"getting-started/installation.rst",
				"getting-started/quickstart.rst",
				"getting-started/examples.rst",
			},
		},
		{
			Label: "User Guide",
			Paths: []string{
				"user-guide/environments.rst",
				"user-guide/action-modes.rst",
				"user-guide/observations.rst",
				"user-guide/data-collection.rst",
				"user-guide/demonstrations.rst",
			},
		},
		{
			Label: "Tasks",
			Paths: []string{
				"tasks/index.rst",
				"tasks/lift-pot.rst",
				"tasks/stack-books.rst",
				"tasks/manipulation.rst",
				"tasks/rotate-valve.rst",
				"tasks/pack-box.rst",
				"tasks/lift-tray.rst",
			},
		},
		{
			Label: "Advanced Topics",
			Paths: []string{
				"advanced/custom-tasks.rst",
				"advanced/custom-props.rst",
				"advanced/custom-robots.rst",
				"advanced/metrics.rst",
				"advanced/integrations.rst",
			},
		},
		{
			Label: "API Reference",
			Paths: []string{
				"api/core.rst",
				"api/environments.rst",
				"api/robots.rst",
				"api/demonstrations.rst",
				"api/utils.rst",
			},
		},
		{
			Label: "Development",
			Paths: []string{
				"development/contributing.rst",
				"development/testing.rst",
			},
		},
		{
			Label: "Static Files",
			Paths: []string{
				"_static/css/custom.css",
				"_static/imgs/roboeval_overview.png",
				"_static/imgs/lift_pot.png",
			},
		},
		{
			Label: "GitHub Actions",
			Paths: []string{
				".github/workflows/deploy-docs.yml",
			},
		},
	}}
}
