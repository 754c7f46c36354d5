// Package fs provides file-based output for result tables.
package fs

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/fwojciec/factpage"
)

// WriteCSV writes the table to w as CSV with a header row.
func WriteCSV(w io.Writer, table *factpage.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(table.Columns()); err != nil {
		return err
	}
	for _, row := range table.Rows() {
		if err := cw.Write([]string{row.Attribute, row.Value}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Writer writes result tables to CSV files.
type Writer struct {
	path string
}

// NewWriter creates a Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteTable writes the table to the configured path, replacing any
// existing file.
func (w *Writer) WriteTable(table *factpage.Table) error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
