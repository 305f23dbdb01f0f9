package html

import (
	"bytes"

	xhtml "golang.org/x/net/html"
)

// voidElements never get a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawTextElements carry unescaped text content.
var rawTextElements = map[string]bool{
	"script": true, "style": true,
}

// writeOpenTag serializes a start tag with escaped attribute values and
// returns nothing; offsets are taken from the buffer length around the call.
func writeOpenTag(buf *bytes.Buffer, tag string, attrs []attrPair, selfClosing bool) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	for _, a := range attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.name)
		buf.WriteString(`="`)
		buf.WriteString(xhtml.EscapeString(a.value))
		buf.WriteByte('"')
	}
	if selfClosing {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
}

// attrPair mirrors the tree builder's attribute shape for serialization.
type attrPair struct {
	name  string
	value string
}

func writeCloseTag(buf *bytes.Buffer, tag string) {
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

// writeText serializes text content. Raw-text parents (script, style) keep
// their bytes verbatim; everything else is entity-escaped so the output
// stays well formed regardless of what the tokenizer decoded.
func writeText(buf *bytes.Buffer, text, parentTag string) {
	if rawTextElements[parentTag] {
		buf.WriteString(text)
		return
	}
	buf.WriteString(xhtml.EscapeString(text))
}

func writeComment(buf *bytes.Buffer, text string) {
	buf.WriteString("<!--")
	buf.WriteString(text)
	buf.WriteString("-->")
}

func writeDoctype(buf *bytes.Buffer, text string) {
	buf.WriteString("<!DOCTYPE ")
	buf.WriteString(text)
	buf.WriteByte('>')
}
