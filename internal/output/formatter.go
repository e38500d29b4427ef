// Package output renders tables for the terminal and writes result files.
//
// Supported formats:
//   - Table: human-readable text tables (grid, simple, github, psql, plain)
//   - CSV / TSV: delimited text with header row
//   - JSON Lines: one JSON object per row
//   - Parquet: one optional string column per header
//   - XLSX: one worksheet, numbers stored as numbers
//
// Example usage:
//
//	formatter, err := output.NewFormatter("csv", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(headers, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vegasq/csvtbl/internal/query"
)

// ErrUnsupportedFormat is returned for an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a header row and data rows in
// the target format, and SetOutput to change the output destination.
type Formatter interface {
	// Format writes headers and rows in the formatter's specific format
	Format(headers []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Format names accepted by NewFormatter.
const (
	FormatCSV     = "csv"
	FormatTSV     = "tsv"
	FormatJSONL   = "jsonl"
	FormatParquet = "parquet"
	FormatXLSX    = "xlsx"
)

// NewFormatter returns the file formatter for name.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatTSV:
		f := NewCSVFormatter(w)
		f.Comma = '\t'
		return f, nil
	case FormatJSONL, "json", "ndjson":
		return NewJSONFormatter(w), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	case FormatXLSX:
		return NewXLSXFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: csv, tsv, jsonl, parquet, xlsx)", ErrUnsupportedFormat, name)
	}
}

// FormatForPath picks a format name from a file extension. Unknown
// extensions are written as CSV.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return FormatTSV
	case ".jsonl", ".json", ".ndjson":
		return FormatJSONL
	case ".parquet":
		return FormatParquet
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// columnNames returns one unique, non-empty name per column, covering
// the widest row. Duplicates get a numeric suffix, missing names are
// "column_N" (1-based).
func columnNames(headers []string, rows [][]string) []string {
	width := tableWidth(headers, rows)

	names := make([]string, width)
	seen := make(map[string]bool, width)
	for i := 0; i < width; i++ {
		base := ""
		if i < len(headers) {
			base = headers[i]
		}
		if base == "" {
			base = "column_" + strconv.Itoa(i+1)
		}

		name := base
		for n := 2; seen[name]; n++ {
			name = base + "_" + strconv.Itoa(n)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// tableWidth is the number of columns needed to hold the header and every row.
func tableWidth(headers []string, rows [][]string) int {
	width := len(headers)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// exactNumber types s and reports whether it can be written as a number
// without changing its text: formatting the number again must give back s.
// "007", "1.50", 20-digit ids and out-of-range floats stay strings.
func exactNumber(s string) (query.Value, bool) {
	v := query.Typeify(s)
	switch v.Kind() {
	case query.KindInt:
		return v, strconv.FormatInt(v.Int64(), 10) == s
	case query.KindFloat:
		f := v.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return v, false
		}
		return v, strconv.FormatFloat(f, 'f', -1, 64) == s
	default:
		return v, false
	}
}
