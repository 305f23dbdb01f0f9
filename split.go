package ftml

// split is the decomposition of one open marker into up to three independent
// partial structures: a domain-side frame, a narrative-side frame and a
// meta-fact. Any part may be absent; a marker yielding none of the three
// would be a true no-op, and splitOpen produces no such value.
type split struct {
	domain    domainFrame
	narrative narrativeFrame
	meta      metaFact
	close     CloseElement
}

// splitOpen is pure and total over the closed OpenElement sum.
//
// Policy: dual-identity elements (module) seed both trees from one HTML tag;
// single-identity elements seed one side; pure facts (style, counter, import,
// use, input-reference, section-level, invisible) seed neither and are
// consumed by the nearest enclosing frame instead.
func splitOpen(o OpenElement) split {
	switch o := o.(type) {
	case *OpenModule:
		return split{
			domain:    &moduleFrame{uri: o.URI, metatheory: o.Metatheory, language: o.Language},
			narrative: &moduleGroupFrame{uri: o.URI},
			close:     CloseModule,
		}
	case *OpenSymbolDeclaration:
		return split{
			domain: &symbolFrame{uri: o.URI, role: o.Role, arity: o.Arity},
			close:  CloseSymbolDeclaration,
		}
	case *OpenVariableDeclaration:
		return split{domain: &variableFrame{name: o.Name}, close: CloseVariableDeclaration}
	case *OpenSection:
		return split{narrative: &sectionFrame{id: o.ID}, close: CloseSection}
	case *OpenSkipSection:
		return split{narrative: &skipSectionFrame{}, close: CloseSkipSection}
	case *OpenParagraph:
		return split{narrative: &paragraphFrame{kind: o.Kind, styles: o.Styles}, close: CloseParagraph}
	case *OpenSlide:
		return split{narrative: &slideFrame{}, close: CloseSlide}
	case *OpenTitle:
		return split{narrative: &titleFrame{}, close: CloseTitle}
	case *OpenSymbolReference:
		return split{domain: &refFrame{term: &SymbolRef{URI: o.URI}}, close: CloseTerm}
	case *OpenVariableReference:
		return split{domain: &refFrame{term: &VarRef{Name: o.Name}}, close: CloseTerm}
	case *OpenApplication:
		return split{
			domain: &applyFrame{head: o.Head, asm: NewArgumentAssembler(false)},
			close:  CloseTerm,
		}
	case *OpenBindingApplication:
		return split{
			domain: &applyFrame{head: o.Head, asm: NewArgumentAssembler(true)},
			close:  CloseTerm,
		}
	case *OpenNotation:
		return split{
			domain: &notationFrame{symbol: o.Symbol, id: o.ID, precedence: o.Precedence},
			close:  CloseNotation,
		}
	case *OpenArgumentSlot:
		return split{domain: &argSlotFrame{pos: o.Position}, close: CloseArgumentSlot}
	case *OpenTypeAnnotation:
		return split{domain: &typeFrame{}, close: CloseTypeAnnotation}
	case *OpenDefiniens:
		return split{domain: &definiensFrame{forSymbol: o.For}, close: CloseDefiniens}
	case *OpenImport:
		return split{meta: factImport{module: o.Module}}
	case *OpenUseModule:
		return split{meta: factUseModule{module: o.Module}}
	case *OpenInputRef:
		return split{meta: factInputRef{target: o.Target}}
	case *OpenStyle:
		return split{meta: factStyle{rule: o.Rule}}
	case *OpenCounter:
		return split{meta: factCounter{def: o.Def}}
	case *OpenSectionLevel:
		return split{meta: factSectionLevel{level: o.Level}}
	case *OpenInvisible:
		return split{meta: factInvisible{}}
	}
	// The sum is closed; a new variant must be added here before it can be
	// constructed by a rule.
	return split{}
}
