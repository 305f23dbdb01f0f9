package mock

import (
	"context"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

var _ ftml.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of ftml.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, x *ftml.StoredExtraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*ftml.StoredExtraction, error)
	FindExtractionsFn    func(ctx context.Context, filter ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, x *ftml.StoredExtraction) error {
	return s.CreateExtractionFn(ctx, x)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*ftml.StoredExtraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
