package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/doccheck/mock"
	docslog "github.com/fwojciec/doccheck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProber_Exists(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the query", func(t *testing.T) {
		t.Parallel()

		// Given a prober that reports a path as present
		next := &mock.Prober{
			ExistsFn: func(_ context.Context, path string) (bool, error) {
				return true, nil
			},
		}
		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		// When I query through the logging decorator
		prober := docslog.NewLoggingProber(next, logger)
		ok, err := prober.Exists(context.Background(), "docs/index.rst")

		// Then the result passes through and the query is logged
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, buf.String(), "existence query")
		assert.Contains(t, buf.String(), "docs/index.rst")
		assert.Contains(t, buf.String(), "present=true")
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Prober{
			ExistsFn: func(_ context.Context, _ string) (bool, error) {
				return false, errors.New("permission denied")
			},
		}
		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))

		prober := docslog.NewLoggingProber(next, logger)
		ok, err := prober.Exists(context.Background(), "docs/conf.py")

		assert.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "permission denied")
	})
}
