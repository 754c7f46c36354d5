package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds shared context and output streams for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape an attribute/value table from a factpage"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL      string        `arg:"" help:"Factpage URL"`
	Selector string        `short:"s" default:"div div div div div table tbody" help:"CSS selector path to the table bodies"`
	Timeout  time.Duration `short:"t" default:"10s" help:"HTTP fetch timeout"`
	Browser  bool          `short:"b" help:"Render the page in a headless browser before extracting"`
	Output   string        `short:"o" help:"Write the table to a CSV file instead of stdout"`
	Head     int           `short:"n" help:"Show only the first N rows (0 shows all)"`
	Verbose  bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}
