package main

import (
	"fmt"

	ftml "github.com/FlexiFormal/ftml-sub001"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, ftml.ExtractionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'ftml extract --save' to create one.")
		return nil
	}

	for _, x := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  modules=%d errors=%d  %s\n",
			x.ID, x.DocumentURI, x.ModuleCount, x.ErrorCount, x.ExtractedAt)
	}

	return nil
}
