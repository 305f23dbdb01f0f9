// Package etree renders the domain side of an extraction as XML using
// beevik/etree, for interchange with XML-based proof-system tooling.
package etree

import (
	"strconv"

	"github.com/beevik/etree"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Export serializes the modules and document-level declarations of an
// extraction as an indented XML document.
func Export(x *ftml.Extraction) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ftml")
	if x.Document != nil && x.Document.URI != "" {
		root.CreateAttr("document", string(x.Document.URI))
	}
	for _, m := range x.Modules {
		writeModule(root, m)
	}
	for _, d := range x.Declarations {
		writeDeclaration(root, d)
	}

	doc.Indent(2)
	return doc.WriteToString()
}

func writeModule(parent *etree.Element, m *ftml.Module) {
	el := parent.CreateElement("module")
	el.CreateAttr("uri", string(m.URI))
	if m.Metatheory != "" {
		el.CreateAttr("metatheory", string(m.Metatheory))
	}
	if m.Language != "" {
		el.CreateAttr("language", m.Language)
	}
	for _, d := range m.Declarations {
		writeDeclaration(el, d)
	}
}

func writeDeclaration(parent *etree.Element, d ftml.Declaration) {
	switch d := d.(type) {
	case *ftml.Symbol:
		el := parent.CreateElement("symbol")
		el.CreateAttr("uri", string(d.URI))
		if d.Role != "" {
			el.CreateAttr("role", d.Role)
		}
		if len(d.Arity) > 0 {
			el.CreateAttr("args", modesString(d.Arity))
		}
		if d.Type != nil {
			writeTerm(el.CreateElement("type"), d.Type)
		}
		if d.Definiens != nil {
			writeTerm(el.CreateElement("definiens"), d.Definiens)
		}
	case *ftml.Variable:
		el := parent.CreateElement("variable")
		el.CreateAttr("name", d.Name)
		if d.Type != nil {
			writeTerm(el.CreateElement("type"), d.Type)
		}
		if d.Definiens != nil {
			writeTerm(el.CreateElement("definiens"), d.Definiens)
		}
	case *ftml.NestedModule:
		writeModule(parent, d.Module)
	case *ftml.Import:
		parent.CreateElement("import").CreateAttr("module", string(d.Module))
	case *ftml.UseModule:
		parent.CreateElement("use").CreateAttr("module", string(d.Module))
	case *ftml.NotationDecl:
		el := parent.CreateElement("notation")
		el.CreateAttr("symbol", string(d.Symbol))
		if d.ID != "" {
			el.CreateAttr("id", d.ID)
		}
		if d.Precedence != 0 {
			el.CreateAttr("precedence", strconv.FormatInt(d.Precedence, 10))
		}
		el.CreateAttr("start", strconv.Itoa(d.Fragment.Start))
		el.CreateAttr("end", strconv.Itoa(d.Fragment.End))
	}
}

// writeTerm serializes a term in OpenMath-flavored element names.
func writeTerm(parent *etree.Element, t ftml.Term) {
	switch t := t.(type) {
	case *ftml.SymbolRef:
		parent.CreateElement("om-symbol").CreateAttr("uri", string(t.URI))
	case *ftml.VarRef:
		parent.CreateElement("om-variable").CreateAttr("name", t.Name)
	case *ftml.Apply:
		el := parent.CreateElement("om-apply")
		writeTerm(el.CreateElement("head"), t.Head)
		for _, a := range t.Args {
			writeArgument(el, a)
		}
	case *ftml.Bind:
		el := parent.CreateElement("om-bind")
		writeTerm(el.CreateElement("head"), t.Head)
		for _, a := range t.Args {
			arg := writeArgument(el, a.Argument)
			if a.Variable != nil {
				arg.CreateAttr("variable", a.Variable.Name)
			}
		}
	}
}

func writeArgument(parent *etree.Element, a ftml.Argument) *etree.Element {
	el := parent.CreateElement("argument")
	el.CreateAttr("mode", a.Mode.String())
	if a.Term != nil {
		writeTerm(el, a.Term)
	}
	for _, t := range a.Sequence {
		writeTerm(el, t)
	}
	return el
}

func modesString(modes []ftml.ArgumentMode) string {
	b := make([]byte, len(modes))
	for i, m := range modes {
		b[i] = byte(m)
	}
	return string(b)
}
