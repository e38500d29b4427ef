package query

import (
	"strconv"

	"github.com/vegasq/csvtbl/internal/table"
)

// Column type names reported by Describe.
const (
	ColumnInt   = "int"
	ColumnFloat = "float"
	ColumnText  = "text"
	ColumnMixed = "mixed"
	ColumnEmpty = "empty"
)

// ColumnInfo summarises how the cells of one column type.
type ColumnInfo struct {
	Name    string
	Type    string
	Values  int // non-empty cells
	Numeric int // cells that type as Int or Float
	Missing int // empty cells plus rows too short for the column
}

// Describe infers a type for every column of t using the same rule that
// filters and aggregates apply to cells.
//
// A column is int when every non-empty cell is an Int, float when every
// non-empty cell is a number and at least one is a Float, text when none
// are numbers, and mixed otherwise. Columns without values are empty.
func Describe(t *table.Table) []ColumnInfo {
	headers := t.Headers()
	infos := make([]ColumnInfo, len(headers))

	for col, name := range headers {
		info := ColumnInfo{Name: name}
		floats := 0

		for row := range t.All() {
			if col >= len(row) || row[col] == "" {
				info.Missing++
				continue
			}
			info.Values++

			switch Typeify(row[col]).Kind() {
			case KindInt:
				info.Numeric++
			case KindFloat:
				info.Numeric++
				floats++
			}
		}

		switch {
		case info.Values == 0:
			info.Type = ColumnEmpty
		case info.Numeric == 0:
			info.Type = ColumnText
		case info.Numeric < info.Values:
			info.Type = ColumnMixed
		case floats > 0:
			info.Type = ColumnFloat
		default:
			info.Type = ColumnInt
		}

		infos[col] = info
	}

	return infos
}

// Row renders info as table cells in the order of ColumnInfoHeaders.
func (c ColumnInfo) Row() []string {
	return []string{
		c.Name,
		c.Type,
		strconv.Itoa(c.Values),
		strconv.Itoa(c.Numeric),
		strconv.Itoa(c.Missing),
	}
}

// ColumnInfoHeaders names the cells produced by ColumnInfo.Row.
func ColumnInfoHeaders() []string {
	return []string{"name", "type", "values", "numeric", "missing"}
}
