package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/goquery"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	annotations, err := goquery.ListAnnotations(string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ftml.ErrorMessage(err))
		return err
	}

	if len(annotations) == 0 {
		fmt.Fprintln(deps.Stdout, "No FTML annotations found.")
		return nil
	}

	for _, a := range annotations {
		indent := strings.Repeat("  ", a.Depth)
		fmt.Fprintf(deps.Stdout, "%s<%s> %s=%q\n", indent, a.Tag, a.Key, a.Value)
	}

	counts := goquery.CountByKey(annotations)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	fmt.Fprintf(deps.Stdout, "\n%d annotations:", len(annotations))
	for _, k := range keys {
		fmt.Fprintf(deps.Stdout, " %s=%d", k, counts[ftml.AttributeKey(k)])
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
