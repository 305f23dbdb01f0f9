package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/fs"
)

func TestURIToPath(t *testing.T) {
	t.Parallel()

	t.Run("converts uri segments to a relative path", func(t *testing.T) {
		t.Parallel()

		got, err := fs.URIToPath("docs/nat/add")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("docs/nat/add"), got)
	})

	t.Run("strips surrounding slashes", func(t *testing.T) {
		t.Parallel()

		got, err := fs.URIToPath("/docs/intro/")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("docs/intro"), got)
	})

	t.Run("rejects empty and traversal segments", func(t *testing.T) {
		t.Parallel()

		for _, uri := range []ftml.DocumentURI{"", "/", "a//b", "a/../b", "./a"} {
			_, err := fs.URIToPath(uri)
			require.Error(t, err, "uri %q", uri)
			assert.Equal(t, ftml.EINVALID, ftml.ErrorCode(err))
		}
	})
}

func TestWriter_WriteExtraction(t *testing.T) {
	t.Parallel()

	t.Run("writes html and json artifacts", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		x := &ftml.Extraction{
			HTML:     "<body><p>hi</p></body>",
			Body:     ftml.Range{Start: 6, End: 15},
			Document: &ftml.Document{URI: "docs/nat"},
			Modules:  []*ftml.Module{{URI: "nat"}},
		}

		require.NoError(t, w.WriteExtraction(context.Background(), "docs/nat", x))

		htmlBytes, err := os.ReadFile(filepath.Join(dir, "docs", "nat.html"))
		require.NoError(t, err)
		assert.Equal(t, x.HTML, string(htmlBytes))

		jsonBytes, err := os.ReadFile(filepath.Join(dir, "docs", "nat.json"))
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
		assert.Equal(t, x.HTML, decoded["html"])
	})

	t.Run("rejects invalid uri", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		err := w.WriteExtraction(context.Background(), "a/../b", &ftml.Extraction{})
		require.Error(t, err)
	})
}
