package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer

	// Comma is the field delimiter (default ',').
	Comma rune

	// Sanitize prefixes cells that a spreadsheet would evaluate as a formula.
	Sanitize bool
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, Comma: ','}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row followed by rows. Rows are written with
// their own length; short rows are not padded.
func (c *CSVFormatter) Format(headers []string, rows [][]string) error {
	csvWriter := csv.NewWriter(c.writer)
	if c.Comma != 0 {
		csvWriter.Comma = c.Comma
	}

	if err := csvWriter.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := row
		if c.Sanitize {
			record = make([]string, len(row))
			for i, cell := range row {
				record[i] = sanitizeCell(cell)
			}
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell guards against CSV injection by prefixing dangerous characters
// that could trigger formula execution in spreadsheet applications.
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	default:
		return val
	}
}
