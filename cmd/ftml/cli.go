package main

import (
	"context"
	"io"

	ftml "github.com/FlexiFormal/ftml-sub001"
	"github.com/FlexiFormal/ftml-sub001/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractions ftml.ExtractionService
	Extractor   ftml.DocumentExtractor
	Converter   ftml.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract semantic trees from annotated HTML files"`
	Inspect InspectCmd `cmd:"" help:"List the FTML annotations in an HTML file"`
	Export  ExportCmd  `cmd:"" help:"Export extracted modules as XML"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" help:"Annotated HTML files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	JSON        bool     `help:"Print the full extraction output as JSON"`
	Markdown    bool     `help:"Print the body content as Markdown"`
	Save        bool     `help:"Persist extraction summaries to the database"`
	Out         string   `short:"o" help:"Write .html/.json artifacts under this directory"`
	Verbose     bool     `short:"v" help:"Log each extraction"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File string `arg:"" help:"Annotated HTML file"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File string `arg:"" help:"Annotated HTML file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}
