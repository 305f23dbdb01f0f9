package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/fs"
	ftmlslog "github.com/FlexiFormal/ftml-sub001/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	extractor := deps.Extractor
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		extractor = ftmlslog.NewLoggingExtractor(extractor, logger)
	}

	results := make([]*ftml.Extraction, len(c.Files))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, file := range c.Files {
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			out, err := extractor.Extract(ctx, string(data), ftml.ExtractOptions{
				DocumentURI: documentURI(file),
			})
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", file, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
		return err
	}

	for i, out := range results {
		if err := c.report(deps, c.Files[i], out); err != nil {
			return err
		}
	}
	return nil
}

// report prints and persists the output of one extraction run.
func (c *ExtractCmd) report(deps *Dependencies, file string, out *ftml.Extraction) error {
	uri := documentURI(file)

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	case c.Markdown:
		md, err := deps.Converter.Convert(out.BodyHTML())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
	default:
		fmt.Fprintf(deps.Stdout, "%s  modules=%d declarations=%d errors=%d warnings=%d\n",
			file, len(out.Modules), len(out.Declarations),
			len(out.Diagnostics.Errors), len(out.Diagnostics.Warnings))
	}

	if c.Save {
		stored := &ftml.StoredExtraction{
			DocumentURI: uri,
			HTML:        out.HTML,
			BodyStart:   out.Body.Start,
			BodyEnd:     out.Body.End,
			ModuleCount: len(out.Modules),
			ErrorCount:  len(out.Diagnostics.Errors),
		}
		if err := deps.Extractions.CreateExtraction(deps.Ctx, stored); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "  saved %s\n", stored.ID)
	}

	if c.Out != "" {
		writer := fs.NewWriter(c.Out)
		if err := writer.WriteExtraction(deps.Ctx, uri, out); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
			return err
		}
	}
	return nil
}

// documentURI derives a document URI from a file path by dropping the
// extension and normalizing separators.
func documentURI(file string) ftml.DocumentURI {
	p := strings.TrimSuffix(file, filepath.Ext(file))
	return ftml.DocumentURI(filepath.ToSlash(p))
}
