package factpage

import (
	"regexp"
	"strings"
)

// Column names of a Table, in order.
const (
	ColumnAttribute = "Attribute"
	ColumnValue     = "Value"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// Table is an ordered two-column collection of extracted pairs.
// Row order matches encounter order in the source document. Attribute
// names are not unique; duplicates are preserved.
type Table struct {
	rows []Pair
}

// NewTable builds a Table from extracted pairs. The attribute of each
// pair is normalized: every run of one-or-more newlines collapses to a
// single space, then surrounding whitespace is trimmed. Values are kept
// as extracted.
func NewTable(pairs []Pair) *Table {
	rows := make([]Pair, len(pairs))
	for i, p := range pairs {
		rows[i] = Pair{
			Attribute: NormalizeAttribute(p.Attribute),
			Value:     p.Value,
		}
	}
	return &Table{rows: rows}
}

// NormalizeAttribute collapses newline runs into single spaces and trims
// surrounding whitespace.
func NormalizeAttribute(s string) string {
	return strings.TrimSpace(newlineRuns.ReplaceAllString(s, " "))
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return []string{ColumnAttribute, ColumnValue}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the table rows in order. The returned slice is a copy.
func (t *Table) Rows() []Pair {
	rows := make([]Pair, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Head returns up to n leading rows. A non-positive n yields no rows.
func (t *Table) Head(n int) []Pair {
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	rows := make([]Pair, n)
	copy(rows, t.rows[:n])
	return rows
}
