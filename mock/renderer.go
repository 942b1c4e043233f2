package mock

import (
	"io"

	"github.com/fwojciec/doccheck"
)

var _ doccheck.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of doccheck.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, report *doccheck.Report) error
}

func (r *Renderer) Render(w io.Writer, report *doccheck.Report) error {
	return r.RenderFn(w, report)
}
