package ftml

// domainFrame is a growable "open" variant of a domain structure. Each frame
// is owned exclusively by the stack slot that created it until closed, at
// which point ownership of the finished value transfers to the parent.
type domainFrame interface {
	isDomainFrame()
}

// moduleFrame is an open module accumulating declarations.
type moduleFrame struct {
	uri        ModuleURI
	metatheory ModuleURI
	language   string
	decls      []Declaration
}

// symbolFrame is an open symbol declaration; type and definiens can be filled
// by nested annotations before it closes.
type symbolFrame struct {
	uri       SymbolURI
	role      string
	arity     []ArgumentMode
	typ       Term
	definiens Term
}

// variableFrame is an open variable declaration.
type variableFrame struct {
	name      string
	typ       Term
	definiens Term
}

// refFrame is an open symbol or variable reference: its value is fixed at
// open time and handed upward at close.
type refFrame struct {
	term Term
}

// applyFrame is an open application or binding application with one argument
// assembler for its positionally-addressed slots.
type applyFrame struct {
	head Term
	asm  *ArgumentAssembler
}

// argSlotFrame is an open argument slot waiting for the term built inside it.
type argSlotFrame struct {
	pos  ArgumentPosition
	term Term
}

// typeFrame collects the type term of the nearest enclosing declaration.
type typeFrame struct {
	term Term
}

// definiensFrame collects a definiens term.
type definiensFrame struct {
	forSymbol SymbolURI
	term      Term
}

// notationFrame is an open notation definition.
type notationFrame struct {
	symbol     SymbolURI
	id         string
	precedence int64
}

func (*moduleFrame) isDomainFrame()    {}
func (*symbolFrame) isDomainFrame()    {}
func (*variableFrame) isDomainFrame()  {}
func (*refFrame) isDomainFrame()       {}
func (*applyFrame) isDomainFrame()     {}
func (*argSlotFrame) isDomainFrame()   {}
func (*typeFrame) isDomainFrame()      {}
func (*definiensFrame) isDomainFrame() {}
func (*notationFrame) isDomainFrame()  {}

// narrativeFrame is a growable "open" variant of a narrative structure.
type narrativeFrame interface {
	isNarrativeFrame()
	appendChild(el DocumentElement)
}

type sectionFrame struct {
	id        string
	level     int
	title     *Range
	invisible bool
	children  []DocumentElement
}

type skipSectionFrame struct {
	children []DocumentElement
}

type paragraphFrame struct {
	kind      ParagraphKind
	styles    []string
	title     *Range
	invisible bool
	children  []DocumentElement
}

type slideFrame struct {
	title    *Range
	children []DocumentElement
}

type moduleGroupFrame struct {
	uri      ModuleURI
	children []DocumentElement
}

// titleFrame marks title markup; its byte range is attached to the nearest
// titled frame below it at close.
type titleFrame struct{}

func (f *sectionFrame) appendChild(el DocumentElement)     { f.children = append(f.children, el) }
func (f *skipSectionFrame) appendChild(el DocumentElement) { f.children = append(f.children, el) }
func (f *paragraphFrame) appendChild(el DocumentElement)   { f.children = append(f.children, el) }
func (f *slideFrame) appendChild(el DocumentElement)       { f.children = append(f.children, el) }
func (f *moduleGroupFrame) appendChild(el DocumentElement) { f.children = append(f.children, el) }
func (f *titleFrame) appendChild(el DocumentElement)       {}

func (*sectionFrame) isNarrativeFrame()     {}
func (*skipSectionFrame) isNarrativeFrame() {}
func (*paragraphFrame) isNarrativeFrame()   {}
func (*slideFrame) isNarrativeFrame()       {}
func (*moduleGroupFrame) isNarrativeFrame() {}
func (*titleFrame) isNarrativeFrame()       {}

// metaFact is a non-hierarchical, non-stack fact consumed by the nearest
// enclosing frame (or the document) rather than becoming a frame of its own.
type metaFact interface {
	isMetaFact()
}

type factImport struct{ module ModuleURI }
type factUseModule struct{ module ModuleURI }
type factInputRef struct{ target DocumentURI }
type factStyle struct{ rule StyleRule }
type factCounter struct{ def CounterDef }
type factSectionLevel struct{ level int }
type factInvisible struct{}

func (factImport) isMetaFact()       {}
func (factUseModule) isMetaFact()    {}
func (factInputRef) isMetaFact()     {}
func (factStyle) isMetaFact()        {}
func (factCounter) isMetaFact()      {}
func (factSectionLevel) isMetaFact() {}
func (factInvisible) isMetaFact()    {}
