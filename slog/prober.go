package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccheck"
)

// Ensure LoggingProber implements doccheck.Prober.
var _ doccheck.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with debug logging for each existence query.
type LoggingProber struct {
	next   doccheck.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next doccheck.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Exists delegates to the wrapped prober and logs the outcome.
func (p *LoggingProber) Exists(ctx context.Context, path string) (bool, error) {
	begin := time.Now()
	present, err := p.next.Exists(ctx, path)
	attrs := []any{
		"path", path,
		"present", present,
		"duration", time.Since(begin),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	p.logger.Debug("existence query", attrs...)
	return present, err
}
