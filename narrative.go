package ftml

// DocumentElement is the closed sum of narrative tree nodes.
type DocumentElement interface {
	isDocumentElement()
}

// Section is a document section. Title, when present, is the byte range of
// the title markup in the output HTML.
type Section struct {
	ID        string            `json:"id,omitempty"`
	Level     int               `json:"level,omitempty"`
	Title     *Range            `json:"title,omitempty"`
	Invisible bool              `json:"invisible,omitempty"`
	Children  []DocumentElement `json:"children"`
}

// SkipSection is a section-shaped grouping that does not advance section
// numbering.
type SkipSection struct {
	Children []DocumentElement `json:"children"`
}

// ParagraphKind classifies logical paragraphs.
type ParagraphKind string

// Paragraph kinds.
const (
	ParagraphPlain      ParagraphKind = ""
	ParagraphDefinition ParagraphKind = "definition"
	ParagraphAssertion  ParagraphKind = "assertion"
	ParagraphExample    ParagraphKind = "example"
	ParagraphRemark     ParagraphKind = "remark"
	ParagraphProof      ParagraphKind = "proof"
)

// ParseParagraphKind validates a paragraph kind string.
func ParseParagraphKind(s string) (ParagraphKind, error) {
	switch k := ParagraphKind(s); k {
	case ParagraphPlain, ParagraphDefinition, ParagraphAssertion,
		ParagraphExample, ParagraphRemark, ParagraphProof:
		return k, nil
	}
	return "", SemanticErrorf(KeyParagraph, ReasonInvalidValue, "unknown paragraph kind %q", s)
}

// Paragraph is a logical paragraph.
type Paragraph struct {
	Kind      ParagraphKind     `json:"kind,omitempty"`
	Styles    []string          `json:"styles,omitempty"`
	Title     *Range            `json:"title,omitempty"`
	Invisible bool              `json:"invisible,omitempty"`
	Children  []DocumentElement `json:"children"`
}

// Slide is a presentation slide.
type Slide struct {
	Title    *Range            `json:"title,omitempty"`
	Children []DocumentElement `json:"children"`
}

// ModuleGroup is the narrative identity of a module: one HTML tag seeds both
// a Module (domain side) and a ModuleGroup (narrative side).
type ModuleGroup struct {
	URI      ModuleURI         `json:"uri"`
	Children []DocumentElement `json:"children"`
}

// InlineTerm is a completed formal term embedded in narrative text, with the
// byte range of its rendered markup.
type InlineTerm struct {
	Term     Term  `json:"term"`
	Fragment Range `json:"fragment"`
}

// InputRefElement marks the position at which another document is transcluded.
type InputRefElement struct {
	Target DocumentURI `json:"target"`
}

func (*Section) isDocumentElement()         {}
func (*SkipSection) isDocumentElement()     {}
func (*Paragraph) isDocumentElement()       {}
func (*Slide) isDocumentElement()           {}
func (*ModuleGroup) isDocumentElement()     {}
func (*InlineTerm) isDocumentElement()      {}
func (*InputRefElement) isDocumentElement() {}

// Document is the finished narrative tree.
type Document struct {
	URI      DocumentURI       `json:"uri,omitempty"`
	Title    *Range            `json:"title,omitempty"`
	Elements []DocumentElement `json:"elements"`
}
