package mock

import (
	"context"

	"github.com/fwojciec/doccheck"
)

var _ doccheck.Checker = (*Checker)(nil)

// Checker is a mock implementation of doccheck.Checker.
type Checker struct {
	CheckFn func(ctx context.Context, root string, catalog *doccheck.Catalog) (*doccheck.Report, error)
}

func (c *Checker) Check(ctx context.Context, root string, catalog *doccheck.Catalog) (*doccheck.Report, error) {
	return c.CheckFn(ctx, root, catalog)
}
