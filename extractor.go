package factpage

// Pair holds one (attribute, value) row extracted from a factpage table.
// Both fields are non-empty in any pair returned by a TableExtractor.
type Pair struct {
	Attribute string
	Value     string
}

// TableExtractor extracts attribute/value pairs from factpage HTML.
type TableExtractor interface {
	// Extract locates table bodies in the HTML and returns the retained
	// pairs in document order. Rows with fewer than two cells, or whose
	// cleaned attribute or value is empty, are dropped silently.
	Extract(html string) ([]Pair, error)
}
