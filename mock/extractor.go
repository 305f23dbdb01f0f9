// Package mock provides hand-written mocks for ftml interfaces.
package mock

import (
	"context"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

var _ ftml.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of ftml.DocumentExtractor.
type DocumentExtractor struct {
	ExtractFn func(ctx context.Context, src string, opts ftml.ExtractOptions) (*ftml.Extraction, error)
}

func (e *DocumentExtractor) Extract(ctx context.Context, src string, opts ftml.ExtractOptions) (*ftml.Extraction, error) {
	return e.ExtractFn(ctx, src, opts)
}
