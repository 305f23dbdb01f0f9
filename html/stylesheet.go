package html

import (
	"github.com/cespare/xxhash/v2"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// stylesheetSet accumulates lifted stylesheets, de-duplicated by content
// hash while preserving first-occurrence order.
type stylesheetSet struct {
	list []ftml.Stylesheet
	seen map[uint64]struct{}
}

func newStylesheetSet() *stylesheetSet {
	return &stylesheetSet{seen: make(map[uint64]struct{})}
}

func (s *stylesheetSet) add(kind ftml.StylesheetKind, value string) {
	h := xxhash.New()
	_, _ = h.WriteString(string(kind))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(value)
	key := h.Sum64()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.list = append(s.list, ftml.Stylesheet{Kind: kind, Value: value})
}
