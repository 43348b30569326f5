package pagescan_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagescan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagescan.Errorf(pagescan.ENOTFOUND, "file %q not found", "index.html")

	assert.Equal(t, pagescan.ENOTFOUND, pagescan.ErrorCode(err))
	assert.Equal(t, "file \"index.html\" not found", pagescan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagescan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagescan.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pagescan.EINTERNAL, pagescan.ErrorCode(err))
	assert.Equal(t, "Internal error.", pagescan.ErrorMessage(err))
}
