package ftml

// stackEntry pairs the frames seeded by one open marker with the finalize
// action that closes them.
type stackEntry struct {
	domain    domainFrame
	narrative narrativeFrame
	close     CloseElement
}

// Extractor is the extraction state machine: a single stack of open frames
// plus document-level accumulators. The tree-builder adapter feeds it one
// ProcessElement call per annotated element and one Close call per stored
// close marker; Finish yields the finished trees.
//
// The extractor is single-writer and not safe for concurrent use; one
// instance serves exactly one document.
type Extractor struct {
	stack []stackEntry
	out   *Extraction
	doc   *Document
}

// NewExtractor returns an extractor for one document.
func NewExtractor(uri DocumentURI) *Extractor {
	doc := &Document{URI: uri}
	return &Extractor{
		out: &Extraction{Document: doc},
		doc: doc,
	}
}

// ProcessElement dispatches every recognized key of one element through the
// rule table in attribute declaration order. It returns the close markers to
// store on the node and the semantic errors encountered; an erroring rule
// produces no marker and the element falls through as if unannotated for
// that key.
func (ex *Extractor) ProcessElement(ea *ElementAttributes) ([]CloseElement, []*ExtractionError) {
	var closes []CloseElement
	var errs []*ExtractionError
	for {
		key, ok := ea.next()
		if !ok {
			break
		}
		rule, ok := ruleTable[key]
		if !ok {
			// Auxiliary key on its own: no rule owns it here, pure no-op.
			continue
		}
		c, err := rule(ex, ea)
		if err != nil {
			if xe, ok := err.(*ExtractionError); ok {
				errs = append(errs, xe)
			} else {
				errs = append(errs, &ExtractionError{Key: key, Reason: ReasonInvalidValue, Detail: err.Error()})
			}
			continue
		}
		if c != CloseNone {
			closes = append(closes, c)
		}
	}
	return closes, errs
}

// Open splits a marker and pushes its frames. Meta-facts are applied to the
// nearest consuming frame immediately. Returns the close marker the caller
// must replay when the originating HTML element ends (CloseNone for pure
// facts).
func (ex *Extractor) Open(o OpenElement) CloseElement {
	s := splitOpen(o)
	if s.meta != nil {
		ex.applyMeta(s.meta)
	}
	if s.domain == nil && s.narrative == nil {
		return CloseNone
	}
	ex.stack = append(ex.stack, stackEntry{domain: s.domain, narrative: s.narrative, close: s.close})
	return s.close
}

// Close pops the frame opened by the matching marker and runs its finalize
// action. r is the byte range of the originating element's content in the
// re-serialized output. Close never panics on inconsistent input; mismatches
// surface as extraction errors.
func (ex *Extractor) Close(c CloseElement, r Range) error {
	if c == CloseNone {
		return nil
	}
	i := len(ex.stack) - 1
	for ; i >= 0; i-- {
		if ex.stack[i].close == c {
			break
		}
	}
	if i < 0 {
		err := SemanticErrorf("", ReasonNotInContext, "close marker %s with no open frame", c)
		ex.out.Diagnostics.Report(err)
		return err
	}
	entry := ex.stack[i]
	ex.stack = append(ex.stack[:i], ex.stack[i+1:]...)
	return ex.finalize(entry, r)
}

// Finish flushes unclosed frames and returns the extraction output. The
// adapter fills in the serialized HTML, body range, stylesheets and
// tree-builder warnings afterwards.
func (ex *Extractor) Finish() *Extraction {
	for len(ex.stack) > 0 {
		entry := ex.stack[len(ex.stack)-1]
		ex.stack = ex.stack[:len(ex.stack)-1]
		ex.out.Diagnostics.Warnf("frame %s left open at end of document", entry.close)
		_ = ex.finalize(entry, Range{})
	}
	return ex.out
}

// Report records a semantic error in the extraction diagnostics.
func (ex *Extractor) Report(err error) {
	ex.out.Diagnostics.Report(err)
}

// finalize converts a popped frame into its finished structure and attaches
// it to the parent frame, or to the document-level accumulators when no
// parent frame consumes it.
func (ex *Extractor) finalize(entry stackEntry, r Range) error {
	var firstErr error
	record := func(err error) {
		ex.out.Diagnostics.Report(err)
		if firstErr == nil {
			firstErr = err
		}
	}

	switch f := entry.domain.(type) {
	case nil:
		// Narrative-only frame.
	case *moduleFrame:
		mod := &Module{URI: f.uri, Metatheory: f.metatheory, Language: f.language, Declarations: f.decls}
		if parent := ex.nearestModule(); parent != nil {
			parent.decls = append(parent.decls, &NestedModule{Module: mod})
		} else {
			ex.out.Modules = append(ex.out.Modules, mod)
		}
	case *symbolFrame:
		ex.attachDeclaration(&Symbol{URI: f.uri, Role: f.role, Arity: f.arity, Type: f.typ, Definiens: f.definiens})
	case *variableFrame:
		ex.attachDeclaration(&Variable{Name: f.name, Type: f.typ, Definiens: f.definiens})
	case *refFrame:
		ex.handTerm(f.term, r)
	case *applyFrame:
		var term Term
		if f.asm.Bound() {
			args, errs := f.asm.CloseBound()
			for _, e := range errs {
				record(e)
			}
			term = &Bind{Head: f.head, Args: args}
		} else {
			args, errs := f.asm.Close()
			for _, e := range errs {
				record(e)
			}
			term = &Apply{Head: f.head, Args: args}
		}
		ex.handTerm(term, r)
	case *argSlotFrame:
		if f.term == nil {
			record(SemanticErrorf(KeyArg, ReasonMissingAttribute,
				"argument slot %s closed without a term", f.pos.Surface()))
			break
		}
		app := ex.nearestApplication()
		if app == nil {
			record(SemanticErrorf(KeyArg, ReasonNotInContext,
				"argument slot %s outside an application", f.pos.Surface()))
			break
		}
		if err := app.asm.Write(f.pos, f.term); err != nil {
			record(err)
		}
	case *typeFrame:
		if f.term == nil {
			record(SemanticErrorf(KeyType, ReasonMissingAttribute, "type annotation without a term"))
			break
		}
		if !ex.setDeclarationType(f.term) {
			record(SemanticErrorf(KeyType, ReasonNotInContext, "type annotation outside a declaration"))
		}
	case *definiensFrame:
		if f.term == nil {
			record(SemanticErrorf(KeyDefiniens, ReasonMissingAttribute, "definiens without a term"))
			break
		}
		if !ex.setDeclarationDefiniens(f.term, f.forSymbol) {
			record(SemanticErrorf(KeyDefiniens, ReasonNotInContext, "definiens outside a declaration"))
		}
	case *notationFrame:
		ex.attachDeclaration(&NotationDecl{Symbol: f.symbol, ID: f.id, Precedence: f.precedence, Fragment: r})
	}

	switch f := entry.narrative.(type) {
	case nil:
		// Domain-only frame.
	case *sectionFrame:
		ex.attachNarrative(&Section{ID: f.id, Level: f.level, Title: f.title, Invisible: f.invisible, Children: f.children})
	case *skipSectionFrame:
		ex.attachNarrative(&SkipSection{Children: f.children})
	case *paragraphFrame:
		ex.attachNarrative(&Paragraph{Kind: f.kind, Styles: f.styles, Title: f.title, Invisible: f.invisible, Children: f.children})
	case *slideFrame:
		ex.attachNarrative(&Slide{Title: f.title, Children: f.children})
	case *moduleGroupFrame:
		ex.attachNarrative(&ModuleGroup{URI: f.uri, Children: f.children})
	case *titleFrame:
		if !ex.setTitle(r) {
			record(SemanticErrorf(KeyTitle, ReasonNotInContext, "title without a titled ancestor"))
		}
	}

	return firstErr
}

// handTerm routes a completed term upward: to the nearest term-consuming
// frame (argument slot, type annotation, definiens), or into the narrative
// tree as an inline term when nothing formal consumes it.
func (ex *Extractor) handTerm(t Term, r Range) {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		switch f := ex.stack[i].domain.(type) {
		case *argSlotFrame:
			if f.term != nil {
				ex.Report(SemanticErrorf(KeyArg, ReasonDuplicateValue,
					"argument slot %s received a second term", f.pos.Surface()))
				return
			}
			f.term = t
			return
		case *typeFrame:
			if f.term != nil {
				ex.Report(SemanticErrorf(KeyType, ReasonDuplicateValue, "type annotation received a second term"))
				return
			}
			f.term = t
			return
		case *definiensFrame:
			if f.term != nil {
				ex.Report(SemanticErrorf(KeyDefiniens, ReasonDuplicateValue, "definiens received a second term"))
				return
			}
			f.term = t
			return
		}
	}
	ex.attachNarrative(&InlineTerm{Term: t, Fragment: r})
}

// attachNarrative appends a finished narrative element to the nearest open
// narrative frame, or to the document when none is open.
func (ex *Extractor) attachNarrative(el DocumentElement) {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		if nf := ex.stack[i].narrative; nf != nil {
			if _, ok := nf.(*titleFrame); ok {
				continue
			}
			nf.appendChild(el)
			return
		}
	}
	ex.doc.Elements = append(ex.doc.Elements, el)
}

// attachDeclaration appends a finished declaration to the nearest open
// module, or to the document-level declaration list when no module is open.
func (ex *Extractor) attachDeclaration(d Declaration) {
	if m := ex.nearestModule(); m != nil {
		m.decls = append(m.decls, d)
		return
	}
	ex.out.Declarations = append(ex.out.Declarations, d)
}

func (ex *Extractor) nearestModule() *moduleFrame {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		if m, ok := ex.stack[i].domain.(*moduleFrame); ok {
			return m
		}
	}
	return nil
}

func (ex *Extractor) nearestApplication() *applyFrame {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		if a, ok := ex.stack[i].domain.(*applyFrame); ok {
			return a
		}
	}
	return nil
}

// hasTitleAcceptor reports whether a title marker opened now would find a
// section, paragraph or slide to attach to. Used by the title rule for its
// structural-misuse check.
func (ex *Extractor) hasTitleAcceptor() bool {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		switch ex.stack[i].narrative.(type) {
		case *sectionFrame, *paragraphFrame, *slideFrame:
			return true
		}
	}
	return false
}

func (ex *Extractor) setTitle(r Range) bool {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		switch f := ex.stack[i].narrative.(type) {
		case *sectionFrame:
			if f.title == nil {
				f.title = &Range{Start: r.Start, End: r.End}
			}
			return true
		case *paragraphFrame:
			if f.title == nil {
				f.title = &Range{Start: r.Start, End: r.End}
			}
			return true
		case *slideFrame:
			if f.title == nil {
				f.title = &Range{Start: r.Start, End: r.End}
			}
			return true
		}
	}
	return false
}

func (ex *Extractor) setDeclarationType(t Term) bool {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		switch f := ex.stack[i].domain.(type) {
		case *symbolFrame:
			f.typ = t
			return true
		case *variableFrame:
			f.typ = t
			return true
		}
	}
	return false
}

func (ex *Extractor) setDeclarationDefiniens(t Term, forSymbol SymbolURI) bool {
	for i := len(ex.stack) - 1; i >= 0; i-- {
		switch f := ex.stack[i].domain.(type) {
		case *symbolFrame:
			if forSymbol != "" && f.uri != forSymbol {
				continue
			}
			f.definiens = t
			return true
		case *variableFrame:
			if forSymbol != "" {
				continue
			}
			f.definiens = t
			return true
		}
	}
	return false
}

// applyMeta hands a meta-fact to its nearest consumer.
func (ex *Extractor) applyMeta(m metaFact) {
	switch m := m.(type) {
	case factImport:
		if mod := ex.nearestModule(); mod != nil {
			mod.decls = append(mod.decls, &Import{Module: m.module})
			return
		}
		ex.Report(SemanticErrorf(KeyImport, ReasonNotInContext, "import of %s outside a module", m.module))
	case factUseModule:
		if mod := ex.nearestModule(); mod != nil {
			mod.decls = append(mod.decls, &UseModule{Module: m.module})
			return
		}
		ex.out.Uses = append(ex.out.Uses, m.module)
	case factInputRef:
		ex.out.InputRefs = append(ex.out.InputRefs, m.target)
		ex.attachNarrative(&InputRefElement{Target: m.target})
	case factStyle:
		ex.out.Styles = append(ex.out.Styles, m.rule)
	case factCounter:
		ex.out.Counters = append(ex.out.Counters, m.def)
	case factSectionLevel:
		for i := len(ex.stack) - 1; i >= 0; i-- {
			if f, ok := ex.stack[i].narrative.(*sectionFrame); ok {
				f.level = m.level
				return
			}
		}
		ex.Report(SemanticErrorf(KeySectionLevel, ReasonNotInContext, "section level override outside a section"))
	case factInvisible:
		for i := len(ex.stack) - 1; i >= 0; i-- {
			switch f := ex.stack[i].narrative.(type) {
			case *sectionFrame:
				f.invisible = true
				return
			case *paragraphFrame:
				f.invisible = true
				return
			}
		}
		// Document-level invisibility has nothing to mark; silently inert.
	}
}
