package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Compile-time interface verification.
var _ ftml.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements ftml.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateExtraction stores the summary of an extraction run.
func (s *ExtractionService) CreateExtraction(ctx context.Context, x *ftml.StoredExtraction) error {
	if err := x.Validate(); err != nil {
		return err
	}

	x.ID = uuid.New().String()
	x.ExtractedAt = time.Now().UTC().Format(time.RFC3339)
	x.ContentHash = hashContent(x.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, document_uri, title, html, content_hash, body_start, body_end, module_count, error_count, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, x.ID, x.DocumentURI, x.Title, x.HTML, x.ContentHash,
		x.BodyStart, x.BodyEnd, x.ModuleCount, x.ErrorCount, x.ExtractedAt)

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*ftml.StoredExtraction, error) {
	var x ftml.StoredExtraction

	err := s.db.QueryRowContext(ctx, `
		SELECT id, document_uri, title, html, content_hash, body_start, body_end, module_count, error_count, extracted_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&x.ID, &x.DocumentURI, &x.Title, &x.HTML, &x.ContentHash,
		&x.BodyStart, &x.BodyEnd, &x.ModuleCount, &x.ErrorCount, &x.ExtractedAt)

	if err == sql.ErrNoRows {
		return nil, ftml.Errorf(ftml.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	return &x, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter ftml.ExtractionFilter) ([]*ftml.StoredExtraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_uri, title, html, content_hash, body_start, body_end, module_count, error_count, extracted_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentURI != nil {
		query.WriteString(" AND document_uri = ?")
		args = append(args, *filter.DocumentURI)
	}

	query.WriteString(" ORDER BY extracted_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ftml.StoredExtraction
	for rows.Next() {
		var x ftml.StoredExtraction
		if err := rows.Scan(&x.ID, &x.DocumentURI, &x.Title, &x.HTML, &x.ContentHash,
			&x.BodyStart, &x.BodyEnd, &x.ModuleCount, &x.ErrorCount, &x.ExtractedAt); err != nil {
			return nil, err
		}
		out = append(out, &x)
	}

	return out, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ftml.Errorf(ftml.ENOTFOUND, "extraction not found")
	}

	return nil
}
