// Package ftml extracts structured document models from HTML annotated
// with the FTML semantic attribute vocabulary (data-ftml-*). One pass over
// an annotated document produces two parallel trees: a narrative tree
// (sections, paragraphs, slides) for the human-facing document, and a
// domain tree (modules, symbol declarations, terms) for the machine-checkable
// content, plus side metadata (styles, counters, stylesheet references,
// cross-document input references).
//
// This package contains the domain types and the pure extraction machinery:
// the attribute vocabulary, the rule table, the open/close marker model, the
// argument assembler, and the extractor state machine. Following Ben
// Johnson's Standard Package Layout, implementations that carry a dependency
// live in subdirectories named after that dependency (html/ for the
// tree-builder adapter, sqlite/ for persistence, goquery/ for inspection,
// etree/ for XML export).
package ftml
