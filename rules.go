package ftml

import (
	"strconv"
	"strings"
)

// ruleFunc handles one semantic key: it reads the typed attribute values it
// owns (consuming auxiliary keys from the remaining list), constructs the
// open marker and pushes it, and returns the close marker the framework
// should remember. On failure it returns a typed error naming the offending
// key and reason, and pushes nothing.
type ruleFunc func(ex *Extractor, ea *ElementAttributes) (CloseElement, error)

// ruleTable maps each rule-bearing key to its handler. Auxiliary keys
// (head, argmode, args, role, metatheory, language, notationid, precedence)
// have no entry: they are consumed by their owning rule and are no-ops when
// they appear alone.
var ruleTable = map[AttributeKey]ruleFunc{
	KeyModule:       ruleModule,
	KeySymdecl:      ruleSymdecl,
	KeyVardef:       ruleVardef,
	KeySection:      ruleSection,
	KeySkipSection:  ruleSkipSection,
	KeySectionLevel: ruleSectionLevel,
	KeyParagraph:    ruleParagraph,
	KeySlide:        ruleSlide,
	KeyTitle:        ruleTitle,
	KeyTerm:         ruleTerm,
	KeyArg:          ruleArg,
	KeyNotation:     ruleNotation,
	KeyType:         ruleType,
	KeyDefiniens:    ruleDefiniens,
	KeyImport:       ruleImport,
	KeyUseModule:    ruleUseModule,
	KeyInputRef:     ruleInputRef,
	KeyStyle:        ruleStyle,
	KeyCounter:      ruleCounter,
	KeyInvisible:    ruleInvisible,
}

func ruleModule(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyModule)
	uri, err := ParseModuleURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeyModule, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	open := &OpenModule{URI: uri}
	if mv, ok := ea.Take(KeyMetatheory); ok {
		mt, err := ParseModuleURI(mv)
		if err != nil {
			return CloseNone, SemanticErrorf(KeyMetatheory, ReasonInvalidURI, "%s", ErrorMessage(err))
		}
		open.Metatheory = mt
	}
	if lv, ok := ea.Take(KeyLanguage); ok {
		if !validLanguageTag(lv) {
			return CloseNone, SemanticErrorf(KeyLanguage, ReasonInvalidValue, "invalid language tag %q", lv)
		}
		open.Language = lv
	}
	return ex.Open(open), nil
}

func ruleSymdecl(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeySymdecl)
	uri, err := ParseSymbolURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeySymdecl, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	open := &OpenSymbolDeclaration{URI: uri}
	if av, ok := ea.Take(KeyArgs); ok {
		modes, err := ParseArgumentModes(av)
		if err != nil {
			return CloseNone, err
		}
		open.Arity = modes
	}
	if rv, ok := ea.Take(KeyRole); ok {
		open.Role = rv
	}
	return ex.Open(open), nil
}

func ruleVardef(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyVardef)
	if v == "" {
		return CloseNone, SemanticErrorf(KeyVardef, ReasonMissingAttribute, "variable name required")
	}
	return ex.Open(&OpenVariableDeclaration{Name: v}), nil
}

func ruleSection(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	// The section id is optional; an anonymous section is valid.
	v, _ := ea.Peek(KeySection)
	return ex.Open(&OpenSection{ID: v}), nil
}

func ruleSkipSection(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	return ex.Open(&OpenSkipSection{}), nil
}

func ruleSectionLevel(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeySectionLevel)
	level, err := strconv.Atoi(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeySectionLevel, ReasonInvalidValue, "level %q is not a number", v)
	}
	return ex.Open(&OpenSectionLevel{Level: level}), nil
}

func ruleParagraph(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyParagraph)
	kind, err := ParseParagraphKind(v)
	if err != nil {
		return CloseNone, err
	}
	open := &OpenParagraph{Kind: kind}
	// A style attribute on the paragraph element is the paragraph's own
	// style list; consuming it here keeps the standalone style rule from
	// reprocessing it as a document-level fact.
	if sv, ok := ea.Take(KeyStyle); ok {
		for _, s := range strings.Split(sv, ",") {
			if s = strings.TrimSpace(s); s != "" {
				open.Styles = append(open.Styles, s)
			}
		}
	}
	return ex.Open(open), nil
}

func ruleSlide(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	return ex.Open(&OpenSlide{}), nil
}

func ruleTitle(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	if !ex.hasTitleAcceptor() {
		return CloseNone, SemanticErrorf(KeyTitle, ReasonNotInContext,
			"title outside a section, paragraph or slide")
	}
	return ex.Open(&OpenTitle{}), nil
}

// Term kinds follow the OpenMath shapes the attribute vocabulary encodes.
const (
	termKindOMID   = "OMID"
	termKindOMV    = "OMV"
	termKindOMA    = "OMA"
	termKindOMBIND = "OMBIND"
)

func ruleTerm(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	kind, _ := ea.Peek(KeyTerm)
	head, ok := ea.Take(KeyHead)
	if !ok {
		return CloseNone, SemanticErrorf(KeyHead, ReasonMissingAttribute, "term %q requires a head", kind)
	}
	switch kind {
	case termKindOMID:
		uri, err := ParseSymbolURI(head)
		if err != nil {
			return CloseNone, SemanticErrorf(KeyHead, ReasonInvalidURI, "%s", ErrorMessage(err))
		}
		return ex.Open(&OpenSymbolReference{URI: uri}), nil
	case termKindOMV:
		if head == "" {
			return CloseNone, SemanticErrorf(KeyHead, ReasonMissingAttribute, "variable reference requires a name")
		}
		return ex.Open(&OpenVariableReference{Name: head}), nil
	case termKindOMA:
		h, err := parseHeadTerm(head)
		if err != nil {
			return CloseNone, err
		}
		return ex.Open(&OpenApplication{Head: h}), nil
	case termKindOMBIND:
		h, err := parseHeadTerm(head)
		if err != nil {
			return CloseNone, err
		}
		return ex.Open(&OpenBindingApplication{Head: h}), nil
	}
	return CloseNone, SemanticErrorf(KeyTerm, ReasonInvalidValue, "unknown term kind %q", kind)
}

// parseHeadTerm reads an application head: a symbol URI when the value has
// the module?name shape, a variable reference otherwise.
func parseHeadTerm(head string) (Term, error) {
	if head == "" {
		return nil, SemanticErrorf(KeyHead, ReasonMissingAttribute, "application requires a head")
	}
	if strings.ContainsRune(head, '?') {
		uri, err := ParseSymbolURI(head)
		if err != nil {
			return nil, SemanticErrorf(KeyHead, ReasonInvalidURI, "%s", ErrorMessage(err))
		}
		return &SymbolRef{URI: uri}, nil
	}
	if strings.ContainsAny(head, " \t\n") {
		return nil, SemanticErrorf(KeyHead, ReasonInvalidURI, "head %q contains whitespace", head)
	}
	return &VarRef{Name: head}, nil
}

func ruleArg(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyArg)
	// The mode attribute is optional: absent, it defaults from the shape of
	// the position string (one digit reads as a simple slot, two as a
	// sequence entry).
	mode := ModeSimple
	if len(v) == 2 {
		mode = ModeSequence
	}
	if mv, ok := ea.Take(KeyArgMode); ok {
		m, err := ParseArgumentMode(mv)
		if err != nil {
			return CloseNone, err
		}
		mode = m
	}
	pos, err := ParseArgumentPosition(v, mode)
	if err != nil {
		return CloseNone, err
	}
	return ex.Open(&OpenArgumentSlot{Position: pos}), nil
}

func ruleNotation(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyNotation)
	uri, err := ParseSymbolURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeyNotation, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	open := &OpenNotation{Symbol: uri}
	if idv, ok := ea.Take(KeyNotationID); ok {
		open.ID = idv
	}
	if pv, ok := ea.Take(KeyPrecedence); ok {
		p, err := strconv.ParseInt(pv, 10, 64)
		if err != nil {
			return CloseNone, SemanticErrorf(KeyPrecedence, ReasonInvalidValue, "precedence %q is not a number", pv)
		}
		open.Precedence = p
	}
	return ex.Open(open), nil
}

func ruleType(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	return ex.Open(&OpenTypeAnnotation{}), nil
}

func ruleDefiniens(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	open := &OpenDefiniens{}
	// An empty value means "the enclosing declaration".
	if v, _ := ea.Peek(KeyDefiniens); v != "" {
		uri, err := ParseSymbolURI(v)
		if err != nil {
			return CloseNone, SemanticErrorf(KeyDefiniens, ReasonInvalidURI, "%s", ErrorMessage(err))
		}
		open.For = uri
	}
	return ex.Open(open), nil
}

func ruleImport(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyImport)
	uri, err := ParseModuleURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeyImport, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	return ex.Open(&OpenImport{Module: uri}), nil
}

func ruleUseModule(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyUseModule)
	uri, err := ParseModuleURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeyUseModule, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	return ex.Open(&OpenUseModule{Module: uri}), nil
}

func ruleInputRef(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyInputRef)
	uri, err := ParseDocumentURI(v)
	if err != nil {
		return CloseNone, SemanticErrorf(KeyInputRef, ReasonInvalidURI, "%s", ErrorMessage(err))
	}
	return ex.Open(&OpenInputRef{Target: uri}), nil
}

func ruleStyle(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	// A paragraph on the same element owns the style list whichever
	// attribute comes first in source order; hand the key back so the
	// paragraph rule consumes it.
	if ea.pending(KeyParagraph) {
		ea.requeue(KeyStyle)
		return CloseNone, nil
	}
	v, _ := ea.Peek(KeyStyle)
	if v == "" {
		return CloseNone, SemanticErrorf(KeyStyle, ReasonMissingAttribute, "style name required")
	}
	rule := StyleRule{Name: v}
	if cv, ok := ea.Take(KeyCounter); ok {
		rule.Counter = cv
	}
	return ex.Open(&OpenStyle{Rule: rule}), nil
}

func ruleCounter(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	// A style rule on the same element owns the counter binding.
	if ea.pending(KeyStyle) {
		ea.requeue(KeyCounter)
		return CloseNone, nil
	}
	v, _ := ea.Peek(KeyCounter)
	if v == "" {
		return CloseNone, SemanticErrorf(KeyCounter, ReasonMissingAttribute, "counter name required")
	}
	def := CounterDef{Name: v}
	// "name@parent" resets the counter whenever the parent advances.
	if i := strings.IndexByte(v, '@'); i >= 0 {
		def.Name, def.Parent = v[:i], v[i+1:]
		if def.Name == "" || def.Parent == "" {
			return CloseNone, SemanticErrorf(KeyCounter, ReasonInvalidValue, "malformed counter %q", v)
		}
	}
	return ex.Open(&OpenCounter{Def: def}), nil
}

func ruleInvisible(ex *Extractor, ea *ElementAttributes) (CloseElement, error) {
	v, _ := ea.Peek(KeyInvisible)
	switch v {
	case "", "true":
		return ex.Open(&OpenInvisible{}), nil
	case "false":
		return CloseNone, nil
	}
	return CloseNone, SemanticErrorf(KeyInvisible, ReasonInvalidValue, "invisible must be true or false, got %q", v)
}

// validLanguageTag accepts a primary subtag of 2-3 lowercase letters with an
// optional region subtag.
func validLanguageTag(s string) bool {
	primary, region, hasRegion := strings.Cut(s, "-")
	if len(primary) < 2 || len(primary) > 3 {
		return false
	}
	for i := 0; i < len(primary); i++ {
		if primary[i] < 'a' || primary[i] > 'z' {
			return false
		}
	}
	if !hasRegion {
		return true
	}
	if len(region) < 2 || len(region) > 4 {
		return false
	}
	for i := 0; i < len(region); i++ {
		c := region[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
