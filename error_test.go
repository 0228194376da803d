package shopinsight_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/shopinsight"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := shopinsight.Errorf(shopinsight.ENOTFOUND, "brand %q not found", "test")

	assert.Equal(t, shopinsight.ENOTFOUND, shopinsight.ErrorCode(err))
	assert.Equal(t, "brand \"test\" not found", shopinsight.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopinsight.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopinsight.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scrape: %w", shopinsight.Errorf(shopinsight.EUNAVAILABLE, "store unreachable"))

	assert.Equal(t, shopinsight.EUNAVAILABLE, shopinsight.ErrorCode(err))
	assert.Equal(t, "store unreachable", shopinsight.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, shopinsight.EINTERNAL, shopinsight.ErrorCode(err))
	assert.Equal(t, "Internal error", shopinsight.ErrorMessage(err))
}
