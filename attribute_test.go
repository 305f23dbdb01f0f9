package ftml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

func TestKeyAttributeMapping(t *testing.T) {
	t.Parallel()

	t.Run("key to attribute name and back is the identity", func(t *testing.T) {
		t.Parallel()

		for _, key := range []ftml.AttributeKey{
			ftml.KeyModule, ftml.KeySymdecl, ftml.KeySection, ftml.KeyArg,
			ftml.KeyTerm, ftml.KeyInputRef, ftml.KeyInvisible,
		} {
			name := key.Attribute()
			assert.Equal(t, ftml.AttributePrefix+string(key), name)

			back, ok := ftml.KeyFromAttribute(name)
			require.True(t, ok, name)
			assert.Equal(t, key, back)
		}
	})

	t.Run("non-FTML and unknown-key attributes are not recognized", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"class", "data-foo", "data-ftml-", "data-ftml-bogus"} {
			_, ok := ftml.KeyFromAttribute(name)
			assert.False(t, ok, name)
		}
	})
}

func TestRecognizeAttributes(t *testing.T) {
	t.Parallel()

	t.Run("preserves source declaration order and skips the rest", func(t *testing.T) {
		t.Parallel()

		keys := ftml.RecognizeAttributes([]ftml.Attribute{
			{Name: "class", Value: "x"},
			{Name: "data-ftml-term", Value: "OMA"},
			{Name: "id", Value: "n1"},
			{Name: "data-ftml-head", Value: "m?f"},
			{Name: "data-ftml-unknown", Value: "y"},
		})

		assert.Equal(t, []ftml.AttributeKey{ftml.KeyTerm, ftml.KeyHead}, keys)
	})

	t.Run("no FTML attributes yields no keys", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ftml.RecognizeAttributes([]ftml.Attribute{{Name: "class", Value: "x"}}))
	})
}

func TestElementAttributes(t *testing.T) {
	t.Parallel()

	t.Run("Take consumes the key so no later rule reprocesses it", func(t *testing.T) {
		t.Parallel()

		ea := ftml.NewElementAttributes([]ftml.Attribute{
			{Name: "data-ftml-term", Value: "OMID"},
			{Name: "data-ftml-head", Value: "m?s"},
		})

		v, ok := ea.Take(ftml.KeyHead)
		require.True(t, ok)
		assert.Equal(t, "m?s", v)
		assert.Equal(t, []ftml.AttributeKey{ftml.KeyTerm}, ea.Remaining())

		_, ok = ea.Peek(ftml.KeyHead)
		assert.True(t, ok, "raw attribute value stays readable after consumption")
	})

	t.Run("Take never hands out a consumed key twice", func(t *testing.T) {
		t.Parallel()

		ea := ftml.NewElementAttributes([]ftml.Attribute{
			{Name: "data-ftml-style", Value: "thm"},
		})

		_, ok := ea.Take(ftml.KeyStyle)
		require.True(t, ok)

		_, ok = ea.Take(ftml.KeyStyle)
		assert.False(t, ok, "the raw attribute is still present but the key is spent")
	})

	t.Run("Take on an absent key reports false", func(t *testing.T) {
		t.Parallel()

		ea := ftml.NewElementAttributes(nil)
		_, ok := ea.Take(ftml.KeyModule)
		assert.False(t, ok)
	})
}
