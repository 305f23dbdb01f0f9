// Package html implements the FTML tree-sink adapter on top of the
// golang.org/x/net/html tokenizer. It bridges the tokenizer's push contract
// to the rule table, tracks exact byte offsets over the re-serialized
// output, and lifts head-level stylesheets out of the document.
package html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Compile-time interface verification.
var _ ftml.DocumentExtractor = (*Extractor)(nil)

// Extractor implements ftml.DocumentExtractor. It is stateless and safe to
// share; each Extract call builds its own sink.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs one synchronous, fully in-memory extraction over src.
// Malformed HTML never fails the call: the adapter recovers, records a
// warning, and keeps building the best possible tree. The only error paths
// are context cancellation.
func (e *Extractor) Extract(ctx context.Context, src string, opts ftml.ExtractOptions) (*ftml.Extraction, error) {
	s := newSink(opts)
	if err := s.run(ctx, src); err != nil {
		return nil, err
	}
	return s.finish(), nil
}

// sink is the per-document adapter state: the node arena, the open element
// stack, the output buffer, and the extractor state machine it feeds. Only
// the sink mutates the arena; the tokenizer delivers tokens single-threaded
// and non-reentrant.
type sink struct {
	opts  ftml.ExtractOptions
	arena arena
	buf   bytes.Buffer
	open  []nodeID
	ex    *ftml.Extractor

	warnings []string
	styles   *stylesheetSet

	body     ftml.Range
	haveBody bool
}

func newSink(opts ftml.ExtractOptions) *sink {
	return &sink{
		opts:   opts,
		ex:     ftml.NewExtractor(opts.DocumentURI),
		styles: newStylesheetSet(),
	}
}

func (s *sink) run(ctx context.Context, src string) error {
	z := xhtml.NewTokenizer(strings.NewReader(src))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch z.Next() {
		case xhtml.ErrorToken:
			if err := z.Err(); err != io.EOF {
				s.warnf("tree builder: %v", err)
			}
			s.closeRemaining()
			return nil
		case xhtml.TextToken:
			s.appendText(string(z.Text()))
		case xhtml.StartTagToken:
			s.startElement(z.Token(), false)
		case xhtml.SelfClosingTagToken:
			s.startElement(z.Token(), true)
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			s.endElement(string(name))
		case xhtml.CommentToken:
			s.appendFlat(nodeComment, string(z.Text()))
		case xhtml.DoctypeToken:
			s.appendFlat(nodeDoctype, string(z.Text()))
		}
	}
}

// startElement creates a node for a start tag, rewrites resolvable resource
// references, dispatches the element's FTML attributes through the rule
// table, and serializes the open tag.
func (s *sink) startElement(t xhtml.Token, selfClosing bool) {
	tag := t.Data
	attrs := make([]ftml.Attribute, 0, len(t.Attr))
	for _, a := range t.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs = append(attrs, ftml.Attribute{Name: name, Value: a.Val})
	}

	if tag == "img" && s.opts.ImageResolver != nil {
		for i := range attrs {
			if attrs[i].Name == "src" {
				if resolved, ok := s.opts.ImageResolver(attrs[i].Value); ok {
					attrs[i].Value = resolved
				}
			}
		}
	}
	if tag == "link" && s.opts.StylesheetResolver != nil && attrValue(attrs, "rel") == "stylesheet" {
		for i := range attrs {
			if attrs[i].Name == "href" {
				if resolved, ok := s.opts.StylesheetResolver(attrs[i].Value); ok {
					attrs[i].Value = resolved
				}
			}
		}
	}

	ea := ftml.NewElementAttributes(attrs)
	closes, errs := s.ex.ProcessElement(ea)
	for _, e := range errs {
		s.ex.Report(e)
	}

	selfClosed := selfClosing && !voidElements[tag]
	id := s.arena.newNode(node{kind: nodeElement, tag: tag, attrs: attrs, closes: closes, selfClosed: selfClosed, parent: noNode})
	s.arena.attach(id, s.top())

	n := s.arena.at(id)
	n.start = s.buf.Len()
	writeOpenTag(&s.buf, tag, toPairs(attrs), selfClosed)
	n.contentStart = s.buf.Len()
	n.contentEnd = n.contentStart
	n.end = s.buf.Len()
	s.propagate()

	if voidElements[tag] || selfClosing {
		s.closeNode(id)
		return
	}
	s.open = append(s.open, id)
}

// endElement matches an end tag against the open stack. Unmatched end tags
// are ignored with a warning; elements skipped over are implicitly closed
// with a warning, preserving the best possible tree.
func (s *sink) endElement(tag string) {
	match := -1
	for i := len(s.open) - 1; i >= 0; i-- {
		if s.arena.at(s.open[i]).tag == tag {
			match = i
			break
		}
	}
	if match < 0 {
		s.warnf("unmatched </%s> ignored", tag)
		return
	}
	for len(s.open) > match+1 {
		id := s.pop()
		s.warnf("unclosed <%s> implicitly closed by </%s>", s.arena.at(id).tag, tag)
		s.closeNode(id)
	}
	s.closeNode(s.pop())
}

// appendText serializes a text token under the current parent and extends
// every open ancestor's byte range.
func (s *sink) appendText(text string) {
	if text == "" {
		return
	}
	parentTag := ""
	if p := s.top(); p != noNode {
		parentTag = s.arena.at(p).tag
	}
	id := s.arena.newNode(node{kind: nodeText, text: text, parent: noNode})
	s.arena.attach(id, s.top())
	n := s.arena.at(id)
	n.start = s.buf.Len()
	writeText(&s.buf, text, parentTag)
	n.end = s.buf.Len()
	n.contentStart, n.contentEnd = n.start, n.end
	s.propagate()
}

// appendFlat serializes a comment or doctype node.
func (s *sink) appendFlat(kind nodeKind, text string) {
	id := s.arena.newNode(node{kind: kind, text: text, parent: noNode})
	s.arena.attach(id, s.top())
	n := s.arena.at(id)
	n.start = s.buf.Len()
	if kind == nodeComment {
		writeComment(&s.buf, text)
	} else {
		writeDoctype(&s.buf, text)
	}
	n.end = s.buf.Len()
	n.contentStart, n.contentEnd = n.start, n.end
	s.propagate()
}

// closeNode finalizes one element: it writes the close tag, records the body
// content window, lifts head-level stylesheets out of the output, and then
// replays the node's stored close markers against the extractor in reverse
// declaration order. Semantic errors are reported, never fatal.
func (s *sink) closeNode(id nodeID) {
	n := s.arena.at(id)
	if n.kind == nodeElement && !voidElements[n.tag] && !n.selfClosed {
		n.contentEnd = s.buf.Len()
		writeCloseTag(&s.buf, n.tag)
	}
	n.end = s.buf.Len()
	s.propagate()

	if n.tag == "body" && !s.haveBody {
		s.haveBody = true
		s.body = ftml.Range{Start: n.contentStart, End: n.contentEnd}
	}

	if s.liftStylesheet(id) {
		return
	}

	r := ftml.Range{Start: n.contentStart, End: n.contentEnd}
	for i := len(n.closes) - 1; i >= 0; i-- {
		// Errors are already folded into the extraction diagnostics;
		// closing must not abort the traversal.
		_ = s.ex.Close(n.closes[i], r)
	}
}

// liftStylesheet extracts head-level stylesheet links and inline style
// blocks into the stylesheet list and deletes the node from the output so
// rendered fragments never duplicate document styles.
func (s *sink) liftStylesheet(id nodeID) bool {
	n := s.arena.at(id)
	if n.kind != nodeElement || !s.arena.inHead(id) {
		return false
	}
	switch {
	case n.tag == "style":
		s.styles.add(ftml.StylesheetInline, s.buf.String()[n.contentStart:n.contentEnd])
	case n.tag == "link" && attrValue(n.attrs, "rel") == "stylesheet":
		href := attrValue(n.attrs, "href")
		if href == "" {
			return false
		}
		s.styles.add(ftml.StylesheetLink, href)
	default:
		return false
	}

	start, end := n.start, n.end
	s.buf.Truncate(start)
	s.arena.detach(id)
	s.arena.shift(end, start-end)
	s.propagate()
	return true
}

// closeRemaining drains the open stack at end of input.
func (s *sink) closeRemaining() {
	for len(s.open) > 0 {
		id := s.pop()
		if tag := s.arena.at(id).tag; tag != "html" && tag != "head" && tag != "body" {
			s.warnf("unclosed <%s> at end of input", tag)
		}
		s.closeNode(id)
	}
}

func (s *sink) finish() *ftml.Extraction {
	out := s.ex.Finish()
	out.HTML = s.buf.String()
	if s.haveBody {
		out.Body = s.body
	} else {
		out.Body = ftml.Range{Start: 0, End: len(out.HTML)}
	}
	out.HeaderLength = out.Body.Start
	out.Stylesheets = s.styles.list
	out.Diagnostics.Warnings = append(out.Diagnostics.Warnings, s.warnings...)
	return out
}

// propagate refreshes the running end offsets of every open ancestor so any
// node's byte range is recoverable at any point during the build.
func (s *sink) propagate() {
	end := s.buf.Len()
	for _, id := range s.open {
		n := s.arena.at(id)
		n.end = end
		n.contentEnd = end
	}
}

func (s *sink) top() nodeID {
	if len(s.open) == 0 {
		return noNode
	}
	return s.open[len(s.open)-1]
}

func (s *sink) pop() nodeID {
	id := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	return id
}

func (s *sink) warnf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func attrValue(attrs []ftml.Attribute, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func toPairs(attrs []ftml.Attribute) []attrPair {
	pairs := make([]attrPair, len(attrs))
	for i, a := range attrs {
		pairs[i] = attrPair{name: a.Name, value: a.Value}
	}
	return pairs
}
