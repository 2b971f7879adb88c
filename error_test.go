package cpumark_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cpumark"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cpumark.Errorf(cpumark.ENOTFOUND, "cpu %q not found", "test")

	assert.Equal(t, cpumark.ENOTFOUND, cpumark.ErrorCode(err))
	assert.Equal(t, "cpu \"test\" not found", cpumark.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cpumark.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cpumark.ErrorMessage(nil))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cpumark.EINTERNAL, cpumark.ErrorCode(errors.New("boom")))
	assert.Equal(t, "Internal error.", cpumark.ErrorMessage(errors.New("boom")))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("keeps inner code and adds op", func(t *testing.T) {
		t.Parallel()

		inner := cpumark.Errorf(cpumark.EFETCH, "HTTP 503 for https://example.com")
		err := cpumark.WrapError("catalog.list", cpumark.EINTERNAL, inner)

		assert.Equal(t, cpumark.EFETCH, cpumark.ErrorCode(err))
		assert.Equal(t, "catalog.list", cpumark.ErrorOp(err))
		assert.Equal(t, "HTTP 503 for https://example.com", cpumark.ErrorMessage(err))
		assert.Equal(t, "catalog.list: HTTP 503 for https://example.com", err.Error())
		assert.ErrorIs(t, err, inner)
	})

	t.Run("uses fallback code for plain errors", func(t *testing.T) {
		t.Parallel()

		inner := errors.New("connection refused")
		err := cpumark.WrapError("catalog.detail", cpumark.EFETCH, inner)

		assert.Equal(t, cpumark.EFETCH, cpumark.ErrorCode(err))
		assert.Equal(t, "catalog.detail: connection refused", err.Error())
	})

	t.Run("finds code through fmt wrapping", func(t *testing.T) {
		t.Parallel()

		inner := fmt.Errorf("outer: %w", cpumark.Errorf(cpumark.EEXTRACT, "no table"))
		err := cpumark.WrapError("catalog.list", cpumark.EINTERNAL, inner)

		assert.Equal(t, cpumark.EEXTRACT, cpumark.ErrorCode(err))
	})

	t.Run("returns nil for nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, cpumark.WrapError("catalog.list", cpumark.EINTERNAL, nil))
	})
}
