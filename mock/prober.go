package mock

import (
	"context"

	"github.com/fwojciec/doccheck"
)

var _ doccheck.Prober = (*Prober)(nil)

// Prober is a mock implementation of doccheck.Prober.
type Prober struct {
	ExistsFn func(ctx context.Context, path string) (bool, error)
}

func (p *Prober) Exists(ctx context.Context, path string) (bool, error) {
	return p.ExistsFn(ctx, path)
}
