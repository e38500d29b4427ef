package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/csvtbl/internal/query"
)

// SheetName is the worksheet XLSXFormatter writes to.
const SheetName = "Sheet1"

// XLSXFormatter writes rows to a single-sheet workbook. Numeric cells are
// stored as numbers, everything else as text.
type XLSXFormatter struct {
	writer io.Writer
}

// NewXLSXFormatter creates a new XLSX formatter
func NewXLSXFormatter(w io.Writer) *XLSXFormatter {
	return &XLSXFormatter{writer: w}
}

// SetOutput sets the output writer
func (x *XLSXFormatter) SetOutput(w io.Writer) {
	x.writer = w
}

// Format writes the header to row 1 and data rows below it.
func (x *XLSXFormatter) Format(headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, s := range row {
			values[j] = xlsxCell(s)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(x.writer); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func xlsxCell(s string) interface{} {
	v, ok := exactNumber(s)
	switch {
	case ok && v.Kind() == query.KindInt:
		return v.Int64()
	case ok:
		return v.Float64()
	default:
		return s
	}
}
