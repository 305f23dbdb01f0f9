package ftml

// Declaration is the closed sum of domain declarations a module can carry.
type Declaration interface {
	isDeclaration()
}

// Symbol is a symbol declaration.
type Symbol struct {
	URI       SymbolURI      `json:"uri"`
	Role      string         `json:"role,omitempty"`
	Arity     []ArgumentMode `json:"arity,omitempty"`
	Type      Term           `json:"type,omitempty"`
	Definiens Term           `json:"definiens,omitempty"`
}

// Variable is a variable declaration.
type Variable struct {
	Name      string `json:"name"`
	Type      Term   `json:"type,omitempty"`
	Definiens Term   `json:"definiens,omitempty"`
}

// NestedModule is a module declared inside another module.
type NestedModule struct {
	Module *Module `json:"module"`
}

// Import records a dependency of a module on another module's signature.
type Import struct {
	Module ModuleURI `json:"module"`
}

// UseModule records a narrative-scoped use of another module.
type UseModule struct {
	Module ModuleURI `json:"module"`
}

// NotationDecl maps a symbol head plus its arguments to rendered markup; the
// markup itself is addressed by its byte range in the output HTML.
type NotationDecl struct {
	Symbol     SymbolURI `json:"symbol"`
	ID         string    `json:"id,omitempty"`
	Precedence int64     `json:"precedence,omitempty"`
	Fragment   Range     `json:"fragment"`
}

func (*Symbol) isDeclaration()       {}
func (*Variable) isDeclaration()     {}
func (*NestedModule) isDeclaration() {}
func (*Import) isDeclaration()       {}
func (*UseModule) isDeclaration()    {}
func (*NotationDecl) isDeclaration() {}

// Module is a finished domain module: the machine-checkable content tree.
type Module struct {
	URI          ModuleURI     `json:"uri"`
	Metatheory   ModuleURI     `json:"metatheory,omitempty"`
	Language     string        `json:"language,omitempty"`
	Declarations []Declaration `json:"declarations"`
}
