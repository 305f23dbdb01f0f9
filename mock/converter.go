package mock

import ftml "github.com/FlexiFormal/ftml-sub001"

var _ ftml.Converter = (*Converter)(nil)

// Converter is a mock implementation of ftml.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
