package ftml

// Term is the closed sum of formal term shapes extraction produces. The set
// is sealed: exhaustive switches over *SymbolRef, *VarRef, *Apply and *Bind
// cover every case.
type Term interface {
	isTerm()
}

// SymbolRef is a reference to a declared symbol (an OMID-shaped leaf).
type SymbolRef struct {
	URI SymbolURI `json:"uri"`
}

// VarRef is a reference to a bound or declared variable (an OMV-shaped leaf).
type VarRef struct {
	Name string `json:"name"`
}

// Apply is a function-application-shaped term: a head applied to a dense,
// positionally-ordered argument list.
type Apply struct {
	Head Term       `json:"head"`
	Args []Argument `json:"args"`
}

// Bind is a variable-binding-shaped term: a head binding arguments of which
// some are variables.
type Bind struct {
	Head Term            `json:"head"`
	Args []BoundArgument `json:"args"`
}

func (*SymbolRef) isTerm() {}
func (*VarRef) isTerm()    {}
func (*Apply) isTerm()     {}
func (*Bind) isTerm()      {}

// Argument is one finished argument slot of an application: a single term or
// a dense term sequence, depending on mode.
type Argument struct {
	Mode     ArgumentMode `json:"mode"`
	Term     Term         `json:"term,omitempty"`
	Sequence []Term       `json:"sequence,omitempty"`
}

// BoundArgument is an argument slot of a binding application. It carries the
// additional distinction between "this slot is itself a bound variable"
// (Variable/Variables set) and "this slot is a plain term" (embedded
// Argument only).
type BoundArgument struct {
	Argument
	Variable  *VarRef   `json:"variable,omitempty"`
	Variables []*VarRef `json:"variables,omitempty"`
}
