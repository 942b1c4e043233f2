package doccheck_test

import (
	"testing"

	"github.com/fwojciec/doccheck"
	"github.com/stretchr/testify/assert"
)

func TestReport_Summary(t *testing.T) {
	t.Parallel()

	t.Run("folds counts over all categories", func(t *testing.T) {
		t.Parallel()

		report := &doccheck.Report{Categories: []doccheck.CategoryResult{
			{Label: "Core Files", Results: []doccheck.Result{
				{Path: "index.rst", Present: true},
				{Path: "conf.py", Present: false},
			}},
			{Label: "User Guide", Results: []doccheck.Result{
				{Path: "user-guide/environments.rst", Present: true},
			}},
		}}

		s := report.Summary()

		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 2, s.Present)
		assert.Equal(t, 1, s.Missing)
		assert.Equal(t, s.Total, s.Present+s.Missing)
	})

	t.Run("is zero-valued for an empty report", func(t *testing.T) {
		t.Parallel()

		report := &doccheck.Report{}

		s := report.Summary()

		assert.Zero(t, s.Total)
		assert.Zero(t, s.Present)
		assert.Zero(t, s.Missing)
	})
}

func TestReport_Complete(t *testing.T) {
	t.Parallel()

	t.Run("true when nothing is missing", func(t *testing.T) {
		t.Parallel()

		report := &doccheck.Report{Categories: []doccheck.CategoryResult{
			{Label: "Core Files", Results: []doccheck.Result{
				{Path: "index.rst", Present: true},
			}},
		}}

		assert.True(t, report.Complete())
	})

	t.Run("false when any path is missing", func(t *testing.T) {
		t.Parallel()

		report := &doccheck.Report{Categories: []doccheck.CategoryResult{
			{Label: "Core Files", Results: []doccheck.Result{
				{Path: "index.rst", Present: true},
				{Path: "conf.py", Present: false},
			}},
		}}

		assert.False(t, report.Complete())
	})
}
