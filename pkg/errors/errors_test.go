package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeUnsupportedFormat, "file must be CSV or XLSX")
	assert.Equal(t, "unsupported_format: file must be CSV or XLSX", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := stderrors.New("no such file")
		err := Wrap(cause, ErrorTypeFile, "failed to open input file")
		require.NotNil(t, err)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "no such file")
	})

	t.Run("nil cause returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrorTypeFile, "ignored"))
	})

	t.Run("preserves original stack", func(t *testing.T) {
		inner := New(ErrorTypeData, "bad cell")
		outer := Wrap(inner, ErrorTypeFile, "load failed")
		assert.Equal(t, inner.Stack, outer.Stack)
	})
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeUnsupportedFormat, "bad extension")
	assert.True(t, IsType(err, ErrorTypeUnsupportedFormat))
	assert.False(t, IsType(err, ErrorTypeFile))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeFile))

	wrapped := Wrap(err, ErrorTypeFile, "outer")
	assert.True(t, IsType(wrapped, ErrorTypeFile))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeConfig, "bad separator").WithDetail("separator", ";;")
	assert.Equal(t, ";;", err.Details["separator"])
}
