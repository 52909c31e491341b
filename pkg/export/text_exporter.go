package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextExporter renders Dataset records as plain delimited lines. Fields are
// written verbatim: no quoting or escaping is applied.
type TextExporter struct {
	separator string
}

// NewTextExporter builds a text exporter joining fields with separator.
func NewTextExporter(separator string) *TextExporter {
	if separator == "" {
		separator = ","
	}
	return &TextExporter{separator: separator}
}

// Render writes the header line followed by one line per row.
func (e *TextExporter) Render(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("text export requires at least one header")
	}
	buf := bufio.NewWriter(w)
	if _, err := buf.WriteString(strings.Join(data.Headers, e.separator) + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range data.Rows {
		if _, err := buf.WriteString(strings.Join(row, e.separator) + "\n"); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flush text export: %w", err)
	}
	return nil
}
