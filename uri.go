package ftml

import "strings"

// ModuleURI identifies a formal module. URIs are opaque tokens: this package
// only checks that they are parseable and uses them as hashable keys.
type ModuleURI string

// SymbolURI identifies a symbol declaration. The canonical surface shape is
// "module?name", e.g. "m?s".
type SymbolURI string

// DocumentURI identifies a document, used for cross-document input references.
type DocumentURI string

// ParseModuleURI validates a module URI.
func ParseModuleURI(s string) (ModuleURI, error) {
	if err := checkURI(s); err != nil {
		return "", err
	}
	return ModuleURI(s), nil
}

// ParseSymbolURI validates a symbol URI of the shape "module?name".
func ParseSymbolURI(s string) (SymbolURI, error) {
	if err := checkURI(s); err != nil {
		return "", err
	}
	i := strings.IndexByte(s, '?')
	if i <= 0 || i == len(s)-1 {
		return "", Errorf(EINVALID, "symbol URI %q must have the form module?name", s)
	}
	return SymbolURI(s), nil
}

// ParseDocumentURI validates a document URI.
func ParseDocumentURI(s string) (DocumentURI, error) {
	if err := checkURI(s); err != nil {
		return "", err
	}
	return DocumentURI(s), nil
}

// Module returns the module component of a symbol URI.
func (u SymbolURI) Module() ModuleURI {
	s := string(u)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return ModuleURI(s[:i])
	}
	return ModuleURI(s)
}

// Name returns the name component of a symbol URI.
func (u SymbolURI) Name() string {
	s := string(u)
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[i+1:]
	}
	return s
}

func checkURI(s string) error {
	if s == "" {
		return Errorf(EINVALID, "empty URI")
	}
	if strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }) >= 0 {
		return Errorf(EINVALID, "URI %q contains whitespace", s)
	}
	return nil
}
