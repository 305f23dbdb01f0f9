package ftml

// OpenElement is the closed sum of semantic constructs that can begin at an
// HTML element. One value is created per matched rule and is immutable after
// creation; the splitter decomposes it into up to three partial structures.
type OpenElement interface {
	isOpenElement()
}

// OpenModule begins a module: the dual-identity construct that seeds both a
// domain Module and a narrative ModuleGroup.
type OpenModule struct {
	URI        ModuleURI
	Metatheory ModuleURI
	Language   string
}

// OpenSymbolDeclaration begins a symbol declaration.
type OpenSymbolDeclaration struct {
	URI   SymbolURI
	Role  string
	Arity []ArgumentMode
}

// OpenVariableDeclaration begins a variable declaration.
type OpenVariableDeclaration struct {
	Name string
}

// OpenSection begins a narrative section.
type OpenSection struct {
	ID string
}

// OpenSkipSection begins a section-shaped grouping outside section numbering.
type OpenSkipSection struct{}

// OpenParagraph begins a logical paragraph.
type OpenParagraph struct {
	Kind   ParagraphKind
	Styles []string
}

// OpenSlide begins a presentation slide.
type OpenSlide struct{}

// OpenTitle marks the title markup of the nearest enclosing section,
// paragraph or slide.
type OpenTitle struct{}

// OpenSymbolReference begins an OMID-shaped term.
type OpenSymbolReference struct {
	URI SymbolURI
}

// OpenVariableReference begins an OMV-shaped term.
type OpenVariableReference struct {
	Name string
}

// OpenApplication begins an OMA-shaped term whose arguments arrive as
// positionally-addressed slots, possibly out of document order.
type OpenApplication struct {
	Head Term
}

// OpenBindingApplication begins an OMBIND-shaped term.
type OpenBindingApplication struct {
	Head Term
}

// OpenNotation begins a notation definition for a symbol.
type OpenNotation struct {
	Symbol     SymbolURI
	ID         string
	Precedence int64
}

// OpenArgumentSlot begins one argument of the nearest enclosing application.
type OpenArgumentSlot struct {
	Position ArgumentPosition
}

// OpenTypeAnnotation begins the type term of the nearest enclosing
// declaration.
type OpenTypeAnnotation struct{}

// OpenDefiniens begins the definiens term of the nearest enclosing
// declaration, or of the symbol named by For.
type OpenDefiniens struct {
	For SymbolURI
}

// OpenImport records a signature import.
type OpenImport struct {
	Module ModuleURI
}

// OpenUseModule records a narrative module use.
type OpenUseModule struct {
	Module ModuleURI
}

// OpenInputRef records a cross-document input reference.
type OpenInputRef struct {
	Target DocumentURI
}

// OpenStyle records a style fact.
type OpenStyle struct {
	Rule StyleRule
}

// OpenCounter records a counter definition.
type OpenCounter struct {
	Def CounterDef
}

// OpenSectionLevel overrides the section level for the enclosing frame.
type OpenSectionLevel struct {
	Level int
}

// OpenInvisible marks the enclosing narrative frame as invisible.
type OpenInvisible struct{}

func (*OpenModule) isOpenElement()              {}
func (*OpenSymbolDeclaration) isOpenElement()   {}
func (*OpenVariableDeclaration) isOpenElement() {}
func (*OpenSection) isOpenElement()             {}
func (*OpenSkipSection) isOpenElement()         {}
func (*OpenParagraph) isOpenElement()           {}
func (*OpenSlide) isOpenElement()               {}
func (*OpenTitle) isOpenElement()               {}
func (*OpenSymbolReference) isOpenElement()     {}
func (*OpenVariableReference) isOpenElement()   {}
func (*OpenApplication) isOpenElement()         {}
func (*OpenBindingApplication) isOpenElement()  {}
func (*OpenNotation) isOpenElement()            {}
func (*OpenArgumentSlot) isOpenElement()        {}
func (*OpenTypeAnnotation) isOpenElement()      {}
func (*OpenDefiniens) isOpenElement()           {}
func (*OpenImport) isOpenElement()              {}
func (*OpenUseModule) isOpenElement()           {}
func (*OpenInputRef) isOpenElement()            {}
func (*OpenStyle) isOpenElement()               {}
func (*OpenCounter) isOpenElement()             {}
func (*OpenSectionLevel) isOpenElement()        {}
func (*OpenInvisible) isOpenElement()           {}

// CloseElement names the finalize action to run when the originating HTML
// element ends. Close markers are recorded on the node at open time and
// invoked in reverse push order relative to sibling opens on the same node,
// so inner frames attach to outer ones before those close in turn.
type CloseElement int

// Close markers. Pure meta-facts (import, style, counter, section level,
// invisible) are applied at open time and need no finalize action.
const (
	CloseNone CloseElement = iota
	CloseModule
	CloseSymbolDeclaration
	CloseVariableDeclaration
	CloseSection
	CloseSkipSection
	CloseParagraph
	CloseSlide
	CloseTitle
	CloseTerm
	CloseNotation
	CloseArgumentSlot
	CloseTypeAnnotation
	CloseDefiniens
)

var closeNames = map[CloseElement]string{
	CloseNone:                "none",
	CloseModule:              "module",
	CloseSymbolDeclaration:   "symdecl",
	CloseVariableDeclaration: "vardef",
	CloseSection:             "section",
	CloseSkipSection:         "skipsection",
	CloseParagraph:           "paragraph",
	CloseSlide:               "slide",
	CloseTitle:               "title",
	CloseTerm:                "term",
	CloseNotation:            "notation",
	CloseArgumentSlot:        "arg",
	CloseTypeAnnotation:      "type",
	CloseDefiniens:           "definiens",
}

// String returns the marker name for diagnostics.
func (c CloseElement) String() string {
	if s, ok := closeNames[c]; ok {
		return s
	}
	return "unknown"
}
