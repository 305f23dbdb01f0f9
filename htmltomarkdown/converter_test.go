package htmltomarkdown_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/html"
	"github.com/FlexiFormal/ftml-sub001/htmltomarkdown"
)

// Ensure Converter implements ftml.Converter at compile time.
var _ ftml.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Hello, world!</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://example.com">Example</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul><ol><li>One</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "1. One")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Symbol</th><th>Arity</th></tr></thead>
<tbody><tr><td>plus</td><td>2</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Symbol")
		assert.Contains(t, md, "plus")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("keeps annotated markup readable", func(t *testing.T) {
		t.Parallel()

		html := `<p>We write <span data-ftml-term="OMID" data-ftml-head="nat?plus">+</span> for addition.</p>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "We write + for addition.")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, ftml.EINVALID, ftml.ErrorCode(err))
	})
}

func TestConverter_ConvertBody(t *testing.T) {
	t.Parallel()

	src := `<html><head><style>p{color:red}</style></head>` +
		`<body><h1>Numbers</h1><p>All about numbers.</p></body></html>`
	out, err := html.NewExtractor().Extract(context.Background(), src, ftml.ExtractOptions{})
	require.NoError(t, err)

	conv := htmltomarkdown.NewConverter()
	md, err := conv.ConvertBody(out)

	require.NoError(t, err)
	assert.Contains(t, md, "# Numbers")
	assert.Contains(t, md, "All about numbers.")
	assert.NotContains(t, md, "color:red")
}
