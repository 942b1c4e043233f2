package doccheck_test

import (
	"testing"

	"github.com/fwojciec/doccheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := doccheck.Errorf(doccheck.ENOTFOUND, "catalog path %q not found", "index.rst")

	assert.Equal(t, doccheck.ENOTFOUND, doccheck.ErrorCode(err))
	assert.Equal(t, "catalog path \"index.rst\" not found", doccheck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doccheck.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, doccheck.ErrorMessage(nil))
}
