// Package scrape orchestrates the factpage pipeline: fetch, extract,
// tabulate. The steps run strictly in sequence against a single URL.
package scrape

import (
	"context"

	"github.com/fwojciec/factpage"
)

// State tracks pipeline progress. Each step checks its precondition and
// returns an EINVALID error when called out of order.
type State int

const (
	// StateUnfetched is the initial state; no page content is held.
	StateUnfetched State = iota

	// StateFetched means the page HTML has been retrieved.
	StateFetched

	// StateExtracted means pairs have been extracted; the source HTML
	// has been released.
	StateExtracted
)

// String returns the state name for logging and error messages.
func (s State) String() string {
	switch s {
	case StateUnfetched:
		return "unfetched"
	case StateFetched:
		return "fetched"
	case StateExtracted:
		return "extracted"
	default:
		return "unknown"
	}
}

// Scraper runs the extraction pipeline for one factpage.
// Not safe for concurrent use; the pipeline is sequential by design.
type Scraper struct {
	Fetcher   factpage.Fetcher
	Extractor factpage.TableExtractor

	state State
	html  string
	pairs []factpage.Pair
}

// New creates a Scraper in StateUnfetched.
func New(fetcher factpage.Fetcher, extractor factpage.TableExtractor) *Scraper {
	return &Scraper{Fetcher: fetcher, Extractor: extractor}
}

// State returns the current pipeline state.
func (s *Scraper) State() State {
	return s.state
}

// Fetch retrieves the page at url and holds its HTML for extraction.
// On error the scraper remains in StateUnfetched and no content is held.
func (s *Scraper) Fetch(ctx context.Context, url string) error {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	s.html = html
	s.state = StateFetched
	return nil
}

// Extract runs the table extractor over the fetched HTML. Calling it
// before a successful Fetch is a precondition violation. The source HTML
// is released once extraction succeeds; the document only lives for the
// duration of this step.
func (s *Scraper) Extract() error {
	if s.state < StateFetched {
		return factpage.Errorf(factpage.EINVALID, "no page content: call Fetch before Extract")
	}
	pairs, err := s.Extractor.Extract(s.html)
	if err != nil {
		return err
	}
	s.pairs = pairs
	s.html = ""
	s.state = StateExtracted
	return nil
}

// Table builds the normalized result table from the extracted pairs.
// Calling it before a successful Extract is a precondition violation.
func (s *Scraper) Table() (*factpage.Table, error) {
	if s.state < StateExtracted {
		return nil, factpage.Errorf(factpage.EINVALID, "no extracted pairs: call Extract before Table")
	}
	return factpage.NewTable(s.pairs), nil
}

// Run executes the full pipeline against url and returns the result
// table. Either the whole pipeline completes or the first error is
// returned with no partial table.
func (s *Scraper) Run(ctx context.Context, url string) (*factpage.Table, error) {
	if err := s.Fetch(ctx, url); err != nil {
		return nil, err
	}
	if err := s.Extract(); err != nil {
		return nil, err
	}
	return s.Table()
}
