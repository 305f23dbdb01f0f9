// Package goquery provides DOM-level inspection of FTML-annotated HTML,
// independent of the extraction state machine. It answers "what is annotated
// where" without building trees, which makes it a useful cross-check against
// the extractor and the backend of the CLI inspect command.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Annotation is one FTML attribute occurrence on one element.
type Annotation struct {
	Tag   string
	Key   ftml.AttributeKey
	Value string
	Depth int
}

// ListAnnotations returns every recognized FTML attribute in document order.
// An element carrying several keys yields one annotation per key, in the
// element's attribute declaration order. Unrecognized data-ftml-* names are
// skipped, matching the extractor's recognition rule.
func ListAnnotations(html string) ([]Annotation, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ftml.Errorf(ftml.EINVALID, "failed to parse HTML: %v", err)
	}

	var out []Annotation
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		for _, a := range node.Attr {
			key, ok := ftml.KeyFromAttribute(a.Key)
			if !ok {
				continue
			}
			out = append(out, Annotation{
				Tag:   node.Data,
				Key:   key,
				Value: a.Val,
				Depth: sel.Parents().Length(),
			})
		}
	})
	return out, nil
}

// CountByKey aggregates annotations into per-key counts.
func CountByKey(annotations []Annotation) map[ftml.AttributeKey]int {
	counts := make(map[ftml.AttributeKey]int, len(annotations))
	for _, a := range annotations {
		counts[a.Key]++
	}
	return counts
}
