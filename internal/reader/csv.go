package reader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vegasq/csvtbl/internal/table"
)

const utf8BOM = "\ufeff"

// ctxCheckInterval is how many records are read between context checks.
const ctxCheckInterval = 4096

func readCSVFile(ctx context.Context, path string, delimiter rune) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(ctx, f, delimiter)
}

// ReadCSV parses delimited text. The first record is the header; records
// may have any number of fields. A leading UTF-8 byte order mark is dropped.
func ReadCSV(ctx context.Context, r io.Reader, delimiter rune) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if delimiter != 0 {
		cr.Comma = delimiter
	}

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, table.ErrEmptyInput
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)

	rows := make([][]string, 0)
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, record)

		if len(rows)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
	}

	return headers, rows, nil
}
