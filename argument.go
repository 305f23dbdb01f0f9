package ftml

import "strconv"

// ArgumentMode classifies how an argument slot is filled.
type ArgumentMode byte

// Argument modes: single term, term sequence, bound variable, bound variable
// sequence.
const (
	ModeSimple        ArgumentMode = 'i'
	ModeSequence      ArgumentMode = 'a'
	ModeBound         ArgumentMode = 'b'
	ModeBoundSequence ArgumentMode = 'B'
)

// ParseArgumentMode parses a single mode character.
func ParseArgumentMode(s string) (ArgumentMode, error) {
	if len(s) != 1 {
		return 0, SemanticErrorf(KeyArgMode, ReasonInvalidValue, "mode %q is not a single character", s)
	}
	m := ArgumentMode(s[0])
	switch m {
	case ModeSimple, ModeSequence, ModeBound, ModeBoundSequence:
		return m, nil
	}
	return 0, SemanticErrorf(KeyArgMode, ReasonInvalidValue, "unknown argument mode %q", s)
}

// ParseArgumentModes parses a compact arity string like "iib" into a mode
// list, used for declared symbol arities.
func ParseArgumentModes(s string) ([]ArgumentMode, error) {
	modes := make([]ArgumentMode, 0, len(s))
	for i := 0; i < len(s); i++ {
		m, err := ParseArgumentMode(s[i : i+1])
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// IsSequence reports whether the mode fills a slot with a term sequence.
func (m ArgumentMode) IsSequence() bool {
	return m == ModeSequence || m == ModeBoundSequence
}

// IsBound reports whether the mode marks a binding slot.
func (m ArgumentMode) IsBound() bool {
	return m == ModeBound || m == ModeBoundSequence
}

// String returns the surface mode character.
func (m ArgumentMode) String() string { return string(byte(m)) }

// ArgumentPosition addresses one write into an application's argument list.
// Index (and SequenceIndex for sequence writes) are zero-based internally;
// the compact surface syntax is one-based.
type ArgumentPosition struct {
	Index         int
	SequenceIndex int // -1 for a simple (whole-slot) write
	Mode          ArgumentMode
}

// ParseArgumentPosition decodes the compact surface string: a single digit
// is a simple slot index, two digits are an (argument, sequence-index) pair.
// Arguments can arrive out of document order, so the pair may reference a
// sequence entry far beyond anything written so far.
func ParseArgumentPosition(s string, mode ArgumentMode) (ArgumentPosition, error) {
	switch len(s) {
	case 1:
		d, ok := digit(s[0])
		if !ok {
			return ArgumentPosition{}, SemanticErrorf(KeyArg, ReasonInvalidValue, "position %q is not a digit", s)
		}
		return ArgumentPosition{Index: d - 1, SequenceIndex: -1, Mode: mode}, nil
	case 2:
		d, ok1 := digit(s[0])
		c, ok2 := digit(s[1])
		if !ok1 || !ok2 {
			return ArgumentPosition{}, SemanticErrorf(KeyArg, ReasonInvalidValue, "position %q is not a digit pair", s)
		}
		return ArgumentPosition{Index: d - 1, SequenceIndex: c - 1, Mode: mode}, nil
	}
	return ArgumentPosition{}, SemanticErrorf(KeyArg, ReasonInvalidValue, "position %q must be one or two digits", s)
}

func digit(b byte) (int, bool) {
	if b < '1' || b > '9' {
		return 0, false
	}
	return int(b - '0'), true
}

// IsSequence reports whether this position writes a single sequence entry.
func (p ArgumentPosition) IsSequence() bool { return p.SequenceIndex >= 0 }

// Surface re-derives the one-based compact surface string.
func (p ArgumentPosition) Surface() string {
	if p.SequenceIndex < 0 {
		return strconv.Itoa(p.Index + 1)
	}
	return strconv.Itoa(p.Index+1) + strconv.Itoa(p.SequenceIndex+1)
}

// slotState is the per-slot accumulator state.
type slotState byte

const (
	slotUnset slotState = iota
	slotSimple
	slotWholeSequence
	slotSparseSequence
)

// OpenArgument accumulates one argument slot of an in-progress application.
// State machine: Unset -> Simple(term) | Sequence(whole term) on a simple
// write, Unset | Sparse -> Sparse on an indexed write. Simple and whole-
// sequence states are terminal; any further write is a mismatched-argument
// error, as is rewriting an already-set sparse entry.
type OpenArgument struct {
	mode   ArgumentMode
	state  slotState
	term   Term
	sparse []Term // nil entries are unfilled
}

// Write records one positional write into the slot.
func (a *OpenArgument) Write(pos ArgumentPosition, t Term) error {
	if a.state == slotUnset {
		a.mode = pos.Mode
	}
	if pos.IsSequence() {
		switch a.state {
		case slotSimple, slotWholeSequence:
			return SemanticErrorf(KeyArg, ReasonMismatchedArgument,
				"sequence write %s into terminal %s slot", pos.Surface(), a.mode)
		}
		for len(a.sparse) <= pos.SequenceIndex {
			a.sparse = append(a.sparse, nil)
		}
		if a.sparse[pos.SequenceIndex] != nil {
			return SemanticErrorf(KeyArg, ReasonMismatchedArgument,
				"sequence entry %s written twice (expected mode %s)", pos.Surface(), a.mode)
		}
		a.sparse[pos.SequenceIndex] = t
		a.state = slotSparseSequence
		return nil
	}
	if a.state != slotUnset {
		return SemanticErrorf(KeyArg, ReasonMismatchedArgument,
			"argument %s written twice (expected mode %s)", pos.Surface(), a.mode)
	}
	a.term = t
	if pos.Mode.IsSequence() {
		a.state = slotWholeSequence
	} else {
		a.state = slotSimple
	}
	return nil
}

// Close finalizes the slot. A sparse sequence closes only if every entry is
// filled; otherwise the close fails with an incomplete-sequence error and the
// caller omits the argument from the finished term.
func (a *OpenArgument) Close() (Argument, error) {
	switch a.state {
	case slotSimple:
		return Argument{Mode: a.mode, Term: a.term}, nil
	case slotWholeSequence:
		return Argument{Mode: a.mode, Term: a.term}, nil
	case slotSparseSequence:
		for i, t := range a.sparse {
			if t == nil {
				return Argument{}, SemanticErrorf(KeyArg, ReasonIncompleteSequence,
					"sequence entry %d never written", i+1)
			}
		}
		return Argument{Mode: a.mode, Sequence: a.sparse}, nil
	}
	return Argument{}, SemanticErrorf(KeyArg, ReasonIncompleteSequence, "argument slot never written")
}

// CloseBound finalizes the slot for a binding application. A simple variable
// term under a bound mode closes to the bound-variable variant; a fully
// filled sequence whose every element is a variable term coerces to the
// bound-sequence variant; anything else remains a plain argument.
func (a *OpenArgument) CloseBound() (BoundArgument, error) {
	arg, err := a.Close()
	if err != nil {
		return BoundArgument{}, err
	}
	out := BoundArgument{Argument: arg}
	if v, ok := arg.Term.(*VarRef); ok && a.mode.IsBound() && !a.mode.IsSequence() {
		out.Variable = v
		return out, nil
	}
	if len(arg.Sequence) > 0 {
		vars := make([]*VarRef, 0, len(arg.Sequence))
		for _, t := range arg.Sequence {
			v, ok := t.(*VarRef)
			if !ok {
				return out, nil
			}
			vars = append(vars, v)
		}
		out.Variables = vars
	}
	return out, nil
}

// ArgumentAssembler builds the dense argument list of one application or
// binding, one accumulator per declared slot. Slots grow on demand because
// positions can arrive out of document order.
type ArgumentAssembler struct {
	slots []*OpenArgument
	bound bool
}

// NewArgumentAssembler returns an assembler; bound selects the binding
// variant with variable coercion on close.
func NewArgumentAssembler(bound bool) *ArgumentAssembler {
	return &ArgumentAssembler{bound: bound}
}

// Write routes one positional write to its slot accumulator.
func (as *ArgumentAssembler) Write(pos ArgumentPosition, t Term) error {
	if pos.Index < 0 {
		return SemanticErrorf(KeyArg, ReasonInvalidValue, "argument index out of range")
	}
	for len(as.slots) <= pos.Index {
		as.slots = append(as.slots, &OpenArgument{})
	}
	return as.slots[pos.Index].Write(pos, t)
}

// Close finalizes every slot. Slots that fail to close (never written, or a
// sequence with gaps) are omitted from the result and reported; the list
// stays dense over the slots that did close.
func (as *ArgumentAssembler) Close() ([]Argument, []*ExtractionError) {
	var errs []*ExtractionError
	args := make([]Argument, 0, len(as.slots))
	for i, slot := range as.slots {
		arg, err := slot.Close()
		if err != nil {
			errs = append(errs, positionedError(err, i))
			continue
		}
		args = append(args, arg)
	}
	return args, errs
}

// CloseBound is Close for binding applications.
func (as *ArgumentAssembler) CloseBound() ([]BoundArgument, []*ExtractionError) {
	var errs []*ExtractionError
	args := make([]BoundArgument, 0, len(as.slots))
	for i, slot := range as.slots {
		arg, err := slot.CloseBound()
		if err != nil {
			errs = append(errs, positionedError(err, i))
			continue
		}
		args = append(args, arg)
	}
	return args, errs
}

// Bound reports whether the assembler builds a binding application.
func (as *ArgumentAssembler) Bound() bool { return as.bound }

func positionedError(err error, index int) *ExtractionError {
	if xe, ok := err.(*ExtractionError); ok {
		return &ExtractionError{Key: xe.Key, Reason: xe.Reason,
			Detail: "argument " + strconv.Itoa(index+1) + ": " + xe.Detail}
	}
	return &ExtractionError{Key: KeyArg, Reason: ReasonMismatchedArgument, Detail: err.Error()}
}
