package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/csvtbl/internal/table"
)

// readXLSX reads one worksheet; the first non-empty row is the header.
// Blank rows are dropped, as the CSV reader drops blank lines.
func readXLSX(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, table.ErrEmptyInput
		}
		sheet = sheets[0]
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var headers []string
	rows := make([][]string, 0, len(all))
	for _, row := range all {
		if len(row) == 0 {
			continue
		}
		if headers == nil {
			headers = row
			continue
		}
		rows = append(rows, row)
	}

	if headers == nil {
		return nil, nil, table.ErrEmptyInput
	}
	return headers, rows, nil
}
