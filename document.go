package ftml

import "context"

// Range is a byte range into the re-serialized HTML output. Ranges are
// half-open: [Start, End).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the range length.
func (r Range) Len() int { return r.End - r.Start }

// StyleRule is a non-hierarchical style fact attached to the document.
type StyleRule struct {
	Name    string `json:"name"`
	Counter string `json:"counter,omitempty"`
}

// CounterDef defines a named counter, optionally reset by a parent counter.
type CounterDef struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

// StylesheetKind distinguishes the two stylesheet flavors lifted out of the
// document head.
type StylesheetKind string

// Stylesheet kinds.
const (
	StylesheetLink   StylesheetKind = "link"
	StylesheetInline StylesheetKind = "inline"
)

// Stylesheet is one de-duplicated stylesheet reference: an external link
// href or the text of an inline style block.
type Stylesheet struct {
	Kind  StylesheetKind `json:"kind"`
	Value string         `json:"value"`
}

// Extraction is the complete output of one extraction run. The call that
// produces it never aborts: best-effort trees are returned alongside both
// diagnostic channels.
type Extraction struct {
	// HTML is the re-serialized document with FTML attributes normalized
	// and head-level stylesheet nodes removed.
	HTML string `json:"html"`

	// Body is the byte range of the document body content within HTML;
	// HeaderLength is the number of bytes preceding it.
	Body         Range `json:"body"`
	HeaderLength int   `json:"headerLength"`

	Document     *Document     `json:"document"`
	Modules      []*Module     `json:"modules,omitempty"`
	Declarations []Declaration `json:"declarations,omitempty"`

	Stylesheets []Stylesheet  `json:"stylesheets,omitempty"`
	Styles      []StyleRule   `json:"styles,omitempty"`
	Counters    []CounterDef  `json:"counters,omitempty"`
	InputRefs   []DocumentURI `json:"inputRefs,omitempty"`
	Uses        []ModuleURI   `json:"uses,omitempty"`

	Diagnostics Diagnostics `json:"diagnostics"`
}

// Fragment slices the output HTML at a previously tracked byte range.
// Out-of-bounds ranges return ENOTFOUND rather than panicking.
func (x *Extraction) Fragment(r Range) (string, error) {
	if r.Start < 0 || r.End < r.Start || r.End > len(x.HTML) {
		return "", Errorf(ENOTFOUND, "range [%d,%d) outside output of %d bytes", r.Start, r.End, len(x.HTML))
	}
	return x.HTML[r.Start:r.End], nil
}

// BodyHTML returns the body content window of the output.
func (x *Extraction) BodyHTML() string {
	s, err := x.Fragment(x.Body)
	if err != nil {
		return ""
	}
	return s
}

// ExtractOptions configures one extraction run. Both resolvers are optional
// injected collaborators: they turn local resource references into
// resolvable paths and return false to leave a reference untouched.
type ExtractOptions struct {
	DocumentURI        DocumentURI
	ImageResolver      func(src string) (string, bool)
	StylesheetResolver func(href string) (string, bool)
}

// DocumentExtractor turns annotated HTML into an Extraction.
type DocumentExtractor interface {
	Extract(ctx context.Context, src string, opts ExtractOptions) (*Extraction, error)
}

// Converter converts HTML fragments to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// StoredExtraction is the persisted summary of one extraction run.
type StoredExtraction struct {
	ID          string      `json:"id"`
	DocumentURI DocumentURI `json:"documentUri"`
	Title       string      `json:"title"`
	HTML        string      `json:"html"`
	ContentHash string      `json:"contentHash"`
	BodyStart   int         `json:"bodyStart"`
	BodyEnd     int         `json:"bodyEnd"`
	ModuleCount int         `json:"moduleCount"`
	ErrorCount  int         `json:"errorCount"`
	ExtractedAt string      `json:"extractedAt"`
}

// Validate returns an error if the stored extraction contains invalid fields.
func (s *StoredExtraction) Validate() error {
	if s.DocumentURI == "" {
		return Errorf(EINVALID, "extraction document URI required")
	}
	if s.BodyEnd < s.BodyStart {
		return Errorf(EINVALID, "extraction body range inverted")
	}
	return nil
}

// ExtractionFilter filters stored extraction queries.
type ExtractionFilter struct {
	ID          *string      `json:"id"`
	DocumentURI *DocumentURI `json:"documentUri"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ExtractionService persists extraction runs.
type ExtractionService interface {
	// CreateExtraction stores the summary of an extraction run.
	CreateExtraction(ctx context.Context, x *StoredExtraction) error

	// FindExtractionByID retrieves a stored extraction.
	// Returns ENOTFOUND if it does not exist.
	FindExtractionByID(ctx context.Context, id string) (*StoredExtraction, error)

	// FindExtractions retrieves stored extractions matching the filter.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*StoredExtraction, error)

	// DeleteExtraction permanently removes a stored extraction.
	// Returns ENOTFOUND if it does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}
