// Package goquery provides a CSS-selector-based implementation of
// factpage.TableExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/factpage"
)

// DefaultSelector is the nested container path down to the table bodies
// on a Sodir factpage. It encodes one site's current markup and is
// expected to need adjustment per target page; pass WithSelector to
// override it.
const DefaultSelector = "div div div div div table tbody"

// attributeCutMark separates the attribute label from trailing tooltip
// text the source markup concatenates into the same cell.
const attributeCutMark = "\n\n\n\n"

// Ensure Extractor implements factpage.TableExtractor at compile time.
var _ factpage.TableExtractor = (*Extractor)(nil)

// Extractor extracts attribute/value pairs from factpage HTML using a
// configurable CSS selector path to locate table bodies.
type Extractor struct {
	selector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelector sets the CSS selector path used to locate table bodies.
// Defaults to DefaultSelector.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.selector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selector: DefaultSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML, locates table bodies via the configured
// selector, and returns the retained (attribute, value) pairs in document
// order. Rows missing either cell, or whose cleaned attribute or value is
// empty, are skipped silently.
func (e *Extractor) Extract(html string) ([]factpage.Pair, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, factpage.Errorf(factpage.EINVALID, "failed to parse HTML: %v", err)
	}

	var pairs []factpage.Pair
	doc.Find(e.selector).Each(func(_ int, tbody *goquery.Selection) {
		tbody.Find("tr").Each(func(_ int, row *goquery.Selection) {
			attribute, value := processRow(row)
			if attribute != "" && value != "" {
				pairs = append(pairs, factpage.Pair{Attribute: attribute, Value: value})
			}
		})
	})

	return pairs, nil
}

// processRow splits a table row into its attribute (first cell) and value
// (second cell). A missing cell yields "" for that side.
func processRow(row *goquery.Selection) (attribute, value string) {
	cells := row.Find("td")
	if cells.Length() > 0 {
		attribute = cleanAttribute(cells.Eq(0))
	}
	if cells.Length() > 1 {
		value = extractValue(cells.Eq(1))
	}
	return attribute, value
}

// cleanAttribute takes the cell text without trimming and truncates it at
// the first run of four newlines, keeping the label before the trailing
// tooltip text.
func cleanAttribute(cell *goquery.Selection) string {
	text := cell.Text()
	before, _, _ := strings.Cut(text, attributeCutMark)
	return before
}

// extractValue returns the trimmed text of the cell's button if it has
// one, ignoring any sibling text; otherwise the trimmed full cell text.
func extractValue(cell *goquery.Selection) string {
	if button := cell.Find("button"); button.Length() > 0 {
		return strings.TrimSpace(button.First().Text())
	}
	return strings.TrimSpace(cell.Text())
}
