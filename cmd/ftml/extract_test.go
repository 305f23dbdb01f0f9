package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
	main "github.com/FlexiFormal/ftml-sub001/cmd/ftml"
	"github.com/FlexiFormal/ftml-sub001/html"
	"github.com/FlexiFormal/ftml-sub001/mock"
)

func writeTempHTML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary per file", func(t *testing.T) {
		t.Parallel()

		file := writeTempHTML(t, "nat.html",
			`<body><div data-ftml-module="nat"><span data-ftml-symdecl="nat?zero"></span></div></body>`)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: html.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Files: []string{file}, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, file)
		assert.Contains(t, output, "modules=1")
		assert.Contains(t, output, "errors=0")
	})

	t.Run("persists summaries with save", func(t *testing.T) {
		t.Parallel()

		file := writeTempHTML(t, "doc.html", `<body><p>hi</p></body>`)

		var stored *ftml.StoredExtraction
		extractions := &mock.ExtractionService{
			CreateExtractionFn: func(_ context.Context, x *ftml.StoredExtraction) error {
				x.ID = "ext-1"
				stored = x
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractor:   html.NewExtractor(),
			Extractions: extractions,
		}

		cmd := &main.ExtractCmd{Files: []string{file}, Concurrency: 1, Save: true}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, stored)
		assert.Contains(t, stored.HTML, "<p>hi</p>")
		assert.Contains(t, string(stored.DocumentURI), "doc")
		assert.Contains(t, stdout.String(), "saved ext-1")
	})

	t.Run("prints json output", func(t *testing.T) {
		t.Parallel()

		file := writeTempHTML(t, "doc.html", `<body><span data-ftml-vardef="x"></span></body>`)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: html.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Files: []string{file}, Concurrency: 1, JSON: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `"html"`)
		assert.Contains(t, stdout.String(), "data-ftml-vardef")
	})

	t.Run("converts body to markdown", func(t *testing.T) {
		t.Parallel()

		file := writeTempHTML(t, "doc.html", `<body><h1>Title</h1></body>`)

		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Contains(t, html, "<h1>Title</h1>")
				return "# Title", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: html.NewExtractor(),
			Converter: converter,
		}

		cmd := &main.ExtractCmd{Files: []string{file}, Concurrency: 1, Markdown: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "# Title")
	})

	t.Run("writes artifacts to the output directory", func(t *testing.T) {
		t.Parallel()

		file := writeTempHTML(t, "doc.html", `<body><p>hi</p></body>`)
		outDir := t.TempDir()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: html.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Files: []string{file}, Concurrency: 1, Out: outDir}
		require.NoError(t, cmd.Run(deps))

		// The artifact path mirrors the document URI derived from the file
		// path, with the leading slash stripped.
		rel := strings.TrimPrefix(filepath.ToSlash(strings.TrimSuffix(file, ".html")), "/")
		assert.FileExists(t, filepath.Join(outDir, filepath.FromSlash(rel)+".html"))
		assert.FileExists(t, filepath.Join(outDir, filepath.FromSlash(rel)+".json"))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: html.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Files: []string{"does-not-exist.html"}, Concurrency: 1}
		require.Error(t, cmd.Run(deps))
	})
}
