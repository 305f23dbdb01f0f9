package ftml

// AttributePrefix is the reserved prefix shared by every FTML attribute.
const AttributePrefix = "data-ftml-"

// AttributeKey names one unit of FTML semantics. Every key has a canonical
// two-way mapping to its attribute name: Attribute() prepends the prefix,
// KeyFromAttribute strips it.
type AttributeKey string

// Attribute keys. Keys without a rule of their own (head, argmode, args,
// metatheory, language, role, notationid, precedence, title-range helpers)
// are auxiliary: they are consumed by the rule that owns them and are no-ops
// when they appear on their own.
const (
	KeyModule       AttributeKey = "module"
	KeyMetatheory   AttributeKey = "metatheory"
	KeyLanguage     AttributeKey = "language"
	KeySymdecl      AttributeKey = "symdecl"
	KeyArgs         AttributeKey = "args"
	KeyRole         AttributeKey = "role"
	KeyVardef       AttributeKey = "vardef"
	KeySection      AttributeKey = "section"
	KeySkipSection  AttributeKey = "skipsection"
	KeySectionLevel AttributeKey = "sectionlevel"
	KeyParagraph    AttributeKey = "paragraph"
	KeySlide        AttributeKey = "slide"
	KeyTitle        AttributeKey = "title"
	KeyTerm         AttributeKey = "term"
	KeyHead         AttributeKey = "head"
	KeyArg          AttributeKey = "arg"
	KeyArgMode      AttributeKey = "argmode"
	KeyNotation     AttributeKey = "notation"
	KeyNotationID   AttributeKey = "notationid"
	KeyPrecedence   AttributeKey = "precedence"
	KeyType         AttributeKey = "type"
	KeyDefiniens    AttributeKey = "definiens"
	KeyImport       AttributeKey = "import"
	KeyUseModule    AttributeKey = "usemodule"
	KeyInputRef     AttributeKey = "inputref"
	KeyStyle        AttributeKey = "style"
	KeyCounter      AttributeKey = "counter"
	KeyInvisible    AttributeKey = "invisible"
)

// allKeys is the closed vocabulary, used for recognition membership checks.
var allKeys = map[AttributeKey]struct{}{
	KeyModule: {}, KeyMetatheory: {}, KeyLanguage: {}, KeySymdecl: {},
	KeyArgs: {}, KeyRole: {}, KeyVardef: {}, KeySection: {},
	KeySkipSection: {}, KeySectionLevel: {}, KeyParagraph: {}, KeySlide: {},
	KeyTitle: {}, KeyTerm: {}, KeyHead: {}, KeyArg: {}, KeyArgMode: {},
	KeyNotation: {}, KeyNotationID: {}, KeyPrecedence: {}, KeyType: {},
	KeyDefiniens: {}, KeyImport: {}, KeyUseModule: {}, KeyInputRef: {},
	KeyStyle: {}, KeyCounter: {}, KeyInvisible: {},
}

// Attribute is one raw HTML attribute as delivered by the tree builder.
type Attribute struct {
	Name  string
	Value string
}

// Attribute returns the full attribute name for a key.
func (k AttributeKey) Attribute() string {
	return AttributePrefix + string(k)
}

// KeyFromAttribute maps an attribute name back to its key.
// Returns false for names outside the FTML vocabulary.
func KeyFromAttribute(name string) (AttributeKey, bool) {
	if len(name) <= len(AttributePrefix) || name[:len(AttributePrefix)] != AttributePrefix {
		return "", false
	}
	k := AttributeKey(name[len(AttributePrefix):])
	if _, ok := allKeys[k]; !ok {
		return "", false
	}
	return k, true
}

// RecognizeAttributes scans an element's raw attribute list and returns the
// recognized semantic keys in source declaration order. Unrecognized
// attributes are left alone; the caller passes them through to the output
// untouched. Pure function of the attribute list.
func RecognizeAttributes(attrs []Attribute) []AttributeKey {
	var keys []AttributeKey
	for _, a := range attrs {
		if k, ok := KeyFromAttribute(a.Name); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// ElementAttributes is the mutable per-element view handed to rules: the raw
// attributes plus the remaining recognized keys. A rule that consumes a key
// removes it so no later rule or the default pass-through reprocesses it.
type ElementAttributes struct {
	attrs []Attribute
	keys  []AttributeKey
}

// NewElementAttributes builds the rule-dispatch view for one element.
func NewElementAttributes(attrs []Attribute) *ElementAttributes {
	return &ElementAttributes{attrs: attrs, keys: RecognizeAttributes(attrs)}
}

// Remaining returns the not-yet-consumed keys in declaration order.
func (ea *ElementAttributes) Remaining() []AttributeKey {
	return ea.keys
}

// Peek returns the raw value for a key without consuming it.
func (ea *ElementAttributes) Peek(key AttributeKey) (string, bool) {
	name := key.Attribute()
	for _, a := range ea.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Take consumes a key: it is removed from the remaining list and its raw
// value returned. Returns false if the element does not carry the key or if
// another rule already consumed it; a consumed key is never handed out twice
// regardless of declaration order.
func (ea *ElementAttributes) Take(key AttributeKey) (string, bool) {
	for i, k := range ea.keys {
		if k == key {
			ea.keys = append(ea.keys[:i], ea.keys[i+1:]...)
			v, _ := ea.Peek(key)
			return v, true
		}
	}
	return "", false
}

// pending reports whether a key is still in the remaining list.
func (ea *ElementAttributes) pending(key AttributeKey) bool {
	for _, k := range ea.keys {
		if k == key {
			return true
		}
	}
	return false
}

// requeue puts a dispatched key back at the end of the remaining list so a
// later owning rule can consume it.
func (ea *ElementAttributes) requeue(key AttributeKey) {
	ea.keys = append(ea.keys, key)
}

// next pops the first remaining key for dispatch.
func (ea *ElementAttributes) next() (AttributeKey, bool) {
	if len(ea.keys) == 0 {
		return "", false
	}
	k := ea.keys[0]
	ea.keys = ea.keys[1:]
	return k, true
}
