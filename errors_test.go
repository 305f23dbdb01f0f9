package ftml_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ftml.ErrorCode(nil))
	assert.Equal(t, ftml.ENOTFOUND, ftml.ErrorCode(ftml.Errorf(ftml.ENOTFOUND, "gone")))
	assert.Equal(t, ftml.EINTERNAL, ftml.ErrorCode(errors.New("boom")))
}

func TestDiagnostics_Report(t *testing.T) {
	t.Parallel()

	t.Run("extraction errors keep their reason", func(t *testing.T) {
		t.Parallel()

		var d ftml.Diagnostics
		d.Report(ftml.SemanticErrorf(ftml.KeyModule, ftml.ReasonInvalidURI, "bad uri"))

		require.Len(t, d.Errors, 1)
		assert.Equal(t, ftml.KeyModule, d.Errors[0].Key)
		assert.Equal(t, ftml.ReasonInvalidURI, d.Errors[0].Reason)
	})

	t.Run("other errors are wrapped with the internal reason", func(t *testing.T) {
		t.Parallel()

		var d ftml.Diagnostics
		d.Report(errors.New("boom"))

		require.Len(t, d.Errors, 1)
		assert.Equal(t, ftml.ReasonInternal, d.Errors[0].Reason)
		assert.Equal(t, "boom", d.Errors[0].Detail)
	})

	t.Run("nil is a no-op", func(t *testing.T) {
		t.Parallel()

		var d ftml.Diagnostics
		d.Report(nil)
		assert.Empty(t, d.Errors)
	})
}
