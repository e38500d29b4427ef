// Package table holds the in-memory representation of a loaded data file:
// an ordered header row and the data rows beneath it, all as strings.
package table

import (
	"errors"
	"iter"
	"slices"
)

// ErrEmptyInput is returned when a file has no header or no data rows.
var ErrEmptyInput = errors.New("input is empty")

// Table is an immutable header + rows pair. It owns its cells: New copies
// its input and Rows hands out copies.
//
// Rows may be shorter (or longer) than the header; cells are never padded
// or truncated on load.
type Table struct {
	headers []string
	rows    [][]string
}

// New builds a Table. It fails with ErrEmptyInput when headers or rows are
// empty; a header-only file counts as empty.
func New(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 || len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	h := make([]string, len(headers))
	copy(h, headers)

	r := make([][]string, len(rows))
	for i, row := range rows {
		r[i] = slices.Clone(row)
	}

	return &Table{headers: h, rows: r}, nil
}

// Headers returns a copy of the header row.
func (t *Table) Headers() []string {
	h := make([]string, len(t.headers))
	copy(h, t.headers)
	return h
}

// Rows returns a copy of the data rows in file order.
func (t *Table) Rows() [][]string {
	r := make([][]string, len(t.rows))
	for i, row := range t.rows {
		r[i] = slices.Clone(row)
	}
	return r
}

// All yields the data rows in file order without copying them. The yielded
// slices are read-only; clone a row before keeping or changing it.
func (t *Table) All() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range t.rows {
			if !yield(row[:len(row):len(row)]) {
				return
			}
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// ColumnIndex returns the position of the first header equal to name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, h := range t.headers {
		if h == name {
			return i, true
		}
	}
	return -1, false
}
