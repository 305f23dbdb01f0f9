package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/sqlite"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestExtractionService_CreateExtraction(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		x := &ftml.StoredExtraction{
			DocumentURI: "docs/intro",
			Title:       "Intro",
			HTML:        "<body><p>hi</p></body>",
			BodyStart:   6,
			BodyEnd:     15,
			ModuleCount: 2,
		}
		require.NoError(t, s.CreateExtraction(context.Background(), x))

		assert.NotEmpty(t, x.ID)
		assert.NotEmpty(t, x.ExtractedAt)
		assert.NotEmpty(t, x.ContentHash)

		got, err := s.FindExtractionByID(context.Background(), x.ID)
		require.NoError(t, err)
		assert.Equal(t, x, got)
	})

	t.Run("identical content hashes identically", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		a := &ftml.StoredExtraction{DocumentURI: "d", HTML: "<p>same</p>"}
		b := &ftml.StoredExtraction{DocumentURI: "d", HTML: "<p>same</p>"}
		require.NoError(t, s.CreateExtraction(context.Background(), a))
		require.NoError(t, s.CreateExtraction(context.Background(), b))

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.ContentHash, b.ContentHash)
	})

	t.Run("rejects invalid extraction", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		err := s.CreateExtraction(context.Background(), &ftml.StoredExtraction{})
		require.Error(t, err)
		assert.Equal(t, ftml.EINVALID, ftml.ErrorCode(err))
	})
}

func TestExtractionService_FindExtractions(t *testing.T) {
	t.Parallel()

	t.Run("filters by document uri", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		ctx := context.Background()
		for _, uri := range []ftml.DocumentURI{"a", "b", "a"} {
			require.NoError(t, s.CreateExtraction(ctx, &ftml.StoredExtraction{DocumentURI: uri}))
		}

		uri := ftml.DocumentURI("a")
		got, err := s.FindExtractions(ctx, ftml.ExtractionFilter{DocumentURI: &uri})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, x := range got {
			assert.Equal(t, uri, x.DocumentURI)
		}
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		ctx := context.Background()
		for i := 0; i < 5; i++ {
			require.NoError(t, s.CreateExtraction(ctx, &ftml.StoredExtraction{DocumentURI: "d"}))
		}

		got, err := s.FindExtractions(ctx, ftml.ExtractionFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestExtractionService_DeleteExtraction(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing extraction", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		ctx := context.Background()
		x := &ftml.StoredExtraction{DocumentURI: "d"}
		require.NoError(t, s.CreateExtraction(ctx, x))

		require.NoError(t, s.DeleteExtraction(ctx, x.ID))

		_, err := s.FindExtractionByID(ctx, x.ID)
		require.Error(t, err)
		assert.Equal(t, ftml.ENOTFOUND, ftml.ErrorCode(err))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewExtractionService(mustOpenDB(t))
		err := s.DeleteExtraction(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, ftml.ENOTFOUND, ftml.ErrorCode(err))
	})
}
