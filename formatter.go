package factpage

import (
	"strings"
	"unicode/utf8"
)

// FormatTable renders a table as aligned plain text for display.
// The attribute column is padded to the widest attribute; one row per
// line. Returns "" for an empty table.
func FormatTable(t *Table) string {
	rows := t.Rows()
	if len(rows) == 0 {
		return ""
	}

	width := utf8.RuneCountInString(ColumnAttribute)
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Attribute); n > width {
			width = n
		}
	}

	var b strings.Builder
	writeRow := func(attr, val string) {
		b.WriteString(attr)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(attr)+2))
		b.WriteString(val)
		b.WriteString("\n")
	}

	writeRow(ColumnAttribute, ColumnValue)
	for _, r := range rows {
		writeRow(r.Attribute, r.Value)
	}

	return b.String()
}
