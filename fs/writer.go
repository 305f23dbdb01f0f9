// Package fs provides file-based storage for extraction artifacts.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// URIToPath converts a document URI to a relative file path without an
// extension. Example: docs/nat/add → docs/nat/add.
func URIToPath(uri ftml.DocumentURI) (string, error) {
	p := strings.Trim(string(uri), "/")
	if p == "" {
		return "", ftml.Errorf(ftml.EINVALID, "document URI required")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", ftml.Errorf(ftml.EINVALID, "document URI %q contains an invalid path segment", uri)
		}
	}
	return filepath.FromSlash(p), nil
}

// Writer writes extraction artifacts to a directory: the re-serialized HTML
// next to a JSON dump of the full extraction output.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExtraction writes the artifacts for one extraction run. The paths are
// derived from the document URI; parent directories are created as needed.
func (w *Writer) WriteExtraction(ctx context.Context, uri ftml.DocumentURI, x *ftml.Extraction) error {
	relPath, err := URIToPath(uri)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(fullPath+".html", []byte(x.HTML), 0644); err != nil {
		return err
	}

	data, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath+".json", data, 0644)
}
