package main

import (
	"fmt"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/yaml"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	catalog := doccheck.DefaultCatalog()
	if c.Catalog != "" {
		var err error
		catalog, err = yaml.LoadCatalog(c.Catalog)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doccheck.ErrorMessage(err))
			return err
		}
	}

	for _, cat := range catalog.Categories {
		fmt.Fprintf(deps.Stdout, "%s:\n", cat.Label)
		for _, p := range cat.Paths {
			fmt.Fprintf(deps.Stdout, "  %s\n", p)
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%d files in %d categories\n", catalog.Total(), len(catalog.Categories))

	return nil
}
