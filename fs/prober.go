package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/doccheck"
)

// Ensure Prober implements doccheck.Prober at compile time.
var _ doccheck.Prober = (*Prober)(nil)

// Prober answers existence queries with os.Stat. A filesystem entry of any
// type counts as present; content is never read. Stat failures other than
// "does not exist" are returned as errors so callers can decide how to
// classify them.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

func (p *Prober) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.FromSlash(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
