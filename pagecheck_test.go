package pagecheck_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagecheck.Errorf(pagecheck.ENOTFOUND, "input file %q not found", "index.html")

	assert.Equal(t, pagecheck.ENOTFOUND, pagecheck.ErrorCode(err))
	assert.Equal(t, "input file \"index.html\" not found", pagecheck.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagecheck.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagecheck.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("read page: %w", pagecheck.Errorf(pagecheck.ENOTFOUND, "missing"))

	assert.Equal(t, pagecheck.ENOTFOUND, pagecheck.ErrorCode(err))
	assert.Equal(t, "missing", pagecheck.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, pagecheck.EINTERNAL, pagecheck.ErrorCode(err))
	assert.Equal(t, "Internal error", pagecheck.ErrorMessage(err))
}
