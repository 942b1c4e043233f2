package check_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/doccheck"
	"github.com/fwojciec/doccheck/check"
	"github.com/fwojciec/doccheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *doccheck.Catalog {
	return &doccheck.Catalog{Categories: []doccheck.Category{
		{Label: "Core Files", Paths: []string{"index.rst", "conf.py"}},
		{Label: "User Guide", Paths: []string{"user-guide/environments.rst"}},
	}}
}

// presentSet returns a prober that reports exactly the given relative
// paths (resolved against root) as present.
func presentSet(root string, rels ...string) *mock.Prober {
	want := make(map[string]bool, len(rels))
	for _, rel := range rels {
		want[filepath.Join(root, filepath.FromSlash(rel))] = true
	}
	return &mock.Prober{
		ExistsFn: func(_ context.Context, path string) (bool, error) {
			return want[path], nil
		},
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("all paths present yields a complete report", func(t *testing.T) {
		t.Parallel()

		// Given a root that contains every catalogued path
		checker := &check.Checker{
			Prober: presentSet("/docs", "index.rst", "conf.py", "user-guide/environments.rst"),
		}

		// When I run the sweep
		report, err := checker.Check(context.Background(), "/docs", testCatalog())

		// Then nothing is missing and the exit contract holds
		require.NoError(t, err)
		s := report.Summary()
		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 3, s.Present)
		assert.Zero(t, s.Missing)
		assert.True(t, report.Complete())
	})

	t.Run("empty root yields missing equal to total", func(t *testing.T) {
		t.Parallel()

		checker := &check.Checker{Prober: presentSet("/docs")}

		report, err := checker.Check(context.Background(), "/docs", testCatalog())

		require.NoError(t, err)
		s := report.Summary()
		assert.Equal(t, 3, s.Total)
		assert.Zero(t, s.Present)
		assert.Equal(t, s.Total, s.Missing)
		assert.False(t, report.Complete())
	})

	t.Run("single present path is marked in place", func(t *testing.T) {
		t.Parallel()

		checker := &check.Checker{Prober: presentSet("/docs", "index.rst")}

		report, err := checker.Check(context.Background(), "/docs", testCatalog())

		require.NoError(t, err)
		assert.Equal(t, 1, report.Summary().Present)
		assert.True(t, report.Categories[0].Results[0].Present)
		assert.False(t, report.Categories[0].Results[1].Present)
		assert.False(t, report.Categories[1].Results[0].Present)
	})

	t.Run("probe errors fold into missing", func(t *testing.T) {
		t.Parallel()

		// Given a prober whose queries fail outright
		checker := &check.Checker{Prober: &mock.Prober{
			ExistsFn: func(_ context.Context, _ string) (bool, error) {
				return false, errors.New("permission denied")
			},
		}}

		// When I run the sweep
		report, err := checker.Check(context.Background(), "/docs", testCatalog())

		// Then the run still completes and everything reports missing
		require.NoError(t, err)
		assert.Equal(t, report.Summary().Total, report.Summary().Missing)
	})

	t.Run("report ordering follows catalog declaration order", func(t *testing.T) {
		t.Parallel()

		catalog := testCatalog()
		checker := &check.Checker{Prober: presentSet("/docs")}

		report, err := checker.Check(context.Background(), "/docs", catalog)

		require.NoError(t, err)
		require.Len(t, report.Categories, len(catalog.Categories))
		for i, cat := range catalog.Categories {
			assert.Equal(t, cat.Label, report.Categories[i].Label)
			for j, p := range cat.Paths {
				assert.Equal(t, p, report.Categories[i].Results[j].Path)
			}
		}
	})

	t.Run("paths resolve against the root directory", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var probed []string
		checker := &check.Checker{Prober: &mock.Prober{
			ExistsFn: func(_ context.Context, path string) (bool, error) {
				mu.Lock()
				probed = append(probed, path)
				mu.Unlock()
				return true, nil
			},
		}}

		_, err := checker.Check(context.Background(), filepath.Join("some", "docs"), testCatalog())

		require.NoError(t, err)
		require.Len(t, probed, 3)
		for _, p := range probed {
			assert.True(t, strings.HasPrefix(p, filepath.Join("some", "docs")), p)
		}
	})

	t.Run("nil catalog falls back to the default catalog", func(t *testing.T) {
		t.Parallel()

		checker := &check.Checker{Prober: presentSet("/docs")}

		report, err := checker.Check(context.Background(), "/docs", nil)

		require.NoError(t, err)
		assert.Equal(t, doccheck.DefaultCatalog().Total(), report.Summary().Total)
	})

	t.Run("invalid catalog is rejected", func(t *testing.T) {
		t.Parallel()

		checker := &check.Checker{Prober: presentSet("/docs")}

		_, err := checker.Check(context.Background(), "/docs", &doccheck.Catalog{})

		assert.Equal(t, doccheck.EINVALID, doccheck.ErrorCode(err))
	})

	t.Run("each run gets its own run ID", func(t *testing.T) {
		t.Parallel()

		checker := &check.Checker{Prober: presentSet("/docs")}

		a, err := checker.Check(context.Background(), "/docs", testCatalog())
		require.NoError(t, err)
		b, err := checker.Check(context.Background(), "/docs", testCatalog())
		require.NoError(t, err)

		assert.NotEmpty(t, a.RunID)
		assert.NotEqual(t, a.RunID, b.RunID)
	})
}

func TestChecker_Check_Parallel(t *testing.T) {
	t.Parallel()

	t.Run("parallel sweep preserves declaration order", func(t *testing.T) {
		t.Parallel()

		catalog := doccheck.DefaultCatalog()
		checker := &check.Checker{
			Prober:      presentSet("/docs", "index.rst", "api/core.rst"),
			Concurrency: 8,
		}

		report, err := checker.Check(context.Background(), "/docs", catalog)

		require.NoError(t, err)
		require.Len(t, report.Categories, len(catalog.Categories))
		for i, cat := range catalog.Categories {
			assert.Equal(t, cat.Label, report.Categories[i].Label)
			for j, p := range cat.Paths {
				assert.Equal(t, p, report.Categories[i].Results[j].Path)
			}
		}
		assert.Equal(t, 2, report.Summary().Present)
	})

	t.Run("parallel and serial sweeps agree", func(t *testing.T) {
		t.Parallel()

		prober := presentSet("/docs", "index.rst", "conf.py")

		serial := &check.Checker{Prober: prober}
		parallel := &check.Checker{Prober: prober, Concurrency: 4}

		a, err := serial.Check(context.Background(), "/docs", testCatalog())
		require.NoError(t, err)
		b, err := parallel.Check(context.Background(), "/docs", testCatalog())
		require.NoError(t, err)

		assert.Equal(t, a.Categories, b.Categories)
	})

	t.Run("cancellation aborts the sweep", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		checker := &check.Checker{
			Prober: &mock.Prober{
				ExistsFn: func(ctx context.Context, _ string) (bool, error) {
					return false, ctx.Err()
				},
			},
			Concurrency: 4,
		}

		_, err := checker.Check(ctx, "/docs", testCatalog())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
