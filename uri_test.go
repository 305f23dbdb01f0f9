package ftml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

func TestParseSymbolURI(t *testing.T) {
	t.Parallel()

	t.Run("accepts module?name and exposes components", func(t *testing.T) {
		t.Parallel()

		uri, err := ftml.ParseSymbolURI("m?s")

		require.NoError(t, err)
		assert.Equal(t, ftml.ModuleURI("m"), uri.Module())
		assert.Equal(t, "s", uri.Name())
	})

	t.Run("rejects malformed symbol URIs", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"", "m", "?s", "m?", "a b?c"} {
			_, err := ftml.ParseSymbolURI(bad)
			require.Error(t, err, bad)
			assert.Equal(t, ftml.EINVALID, ftml.ErrorCode(err), bad)
		}
	})
}

func TestParseModuleURI(t *testing.T) {
	t.Parallel()

	_, err := ftml.ParseModuleURI("lib/algebra/groups")
	require.NoError(t, err)

	_, err = ftml.ParseModuleURI("")
	assert.Error(t, err)

	_, err = ftml.ParseModuleURI("has space")
	assert.Error(t, err)
}

func TestParseDocumentURI(t *testing.T) {
	t.Parallel()

	_, err := ftml.ParseDocumentURI("lib/doc.en")
	require.NoError(t, err)

	_, err = ftml.ParseDocumentURI("bad\turi")
	assert.Error(t, err)
}
