package main

import (
	"fmt"
	"os"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	out, err := deps.Extractor.Extract(deps.Ctx, string(data), ftml.ExtractOptions{
		DocumentURI: documentURI(c.File),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
		return err
	}

	xml, err := etree.Export(out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, xml)
	return nil
}
