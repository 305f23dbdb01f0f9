// Package slog provides logging decorators for ftml services.
package slog

import (
	"context"
	"log/slog"
	"time"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Ensure LoggingExtractor implements ftml.DocumentExtractor.
var _ ftml.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with structured logging of each
// run: document URI, input size, duration, and diagnostics counts.
type LoggingExtractor struct {
	next   ftml.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ftml.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, src string, opts ftml.ExtractOptions) (*ftml.Extraction, error) {
	begin := time.Now()
	out, err := e.next.Extract(ctx, src, opts)
	if err != nil {
		e.logger.Error("extraction failed",
			"uri", string(opts.DocumentURI),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction complete",
		"uri", string(opts.DocumentURI),
		"bytes", len(src),
		"duration", time.Since(begin),
		"modules", len(out.Modules),
		"warnings", len(out.Diagnostics.Warnings),
		"errors", len(out.Diagnostics.Errors),
	)
	return out, nil
}
