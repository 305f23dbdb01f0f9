package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
	main "github.com/FlexiFormal/ftml-sub001/cmd/ftml"
	"github.com/FlexiFormal/ftml-sub001/mock"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists extractions with id, uri and counts", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, _ ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error) {
				return []*ftml.StoredExtraction{
					{ID: "ext-123", DocumentURI: "docs/nat", ModuleCount: 2, ExtractedAt: "2026-08-29T10:00:00Z"},
					{ID: "ext-456", DocumentURI: "docs/int", ErrorCount: 1, ExtractedAt: "2026-08-28T10:00:00Z"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "ext-123")
		assert.Contains(t, output, "docs/nat")
		assert.Contains(t, output, "modules=2")
		assert.Contains(t, output, "ext-456")
		assert.Contains(t, output, "errors=1")
	})

	t.Run("shows helpful message when no extractions exist", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, _ ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No extractions")
	})

	t.Run("returns error when FindExtractions fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")
		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, _ ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error) {
				return nil, dbErr
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Extractions: extractions,
		}

		cmd := &main.ListCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
