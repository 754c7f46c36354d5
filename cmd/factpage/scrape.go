package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/factpage"
	"github.com/fwojciec/factpage/fs"
	fpgoquery "github.com/fwojciec/factpage/goquery"
	fphttp "github.com/fwojciec/factpage/http"
	"github.com/fwojciec/factpage/rod"
	"github.com/fwojciec/factpage/scrape"
	fpslog "github.com/fwojciec/factpage/slog"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fetcher, err := c.newFetcher(deps.Stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	var extractor factpage.TableExtractor = fpgoquery.NewExtractor(fpgoquery.WithSelector(c.Selector))
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		fetcher = fpslog.NewLoggingFetcher(fetcher, logger)
		extractor = fpslog.NewLoggingExtractor(extractor, logger)
	}

	scraper := scrape.New(fetcher, extractor)
	table, err := scraper.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", factpage.ErrorMessage(err))
		return err
	}

	if c.Head > 0 {
		table = factpage.NewTable(table.Head(c.Head))
	}

	if c.Output != "" {
		if err := fs.NewWriter(c.Output).WriteTable(table); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d rows to %s\n", table.Len(), c.Output)
		return nil
	}

	fmt.Fprint(deps.Stdout, factpage.FormatTable(table))
	return nil
}

// newFetcher selects the fetcher implementation for the command's flags.
func (c *ScrapeCmd) newFetcher(stderr io.Writer) (factpage.Fetcher, error) {
	if !c.Browser {
		return fphttp.NewFetcher(fphttp.WithTimeout(c.Timeout)), nil
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}
