package factpage_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/factpage"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := factpage.Errorf(factpage.EUNAVAILABLE, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, factpage.EUNAVAILABLE, factpage.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", factpage.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, factpage.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, factpage.EINTERNAL, factpage.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, factpage.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", factpage.ErrorMessage(errors.New("boom")))
}
