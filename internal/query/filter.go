package query

import (
	"fmt"
	"slices"

	"github.com/vegasq/csvtbl/internal/table"
)

// compare applies a numeric comparison
func compare(left Value, operator Operator, right Value) bool {
	c := compareNumbers(left, right)
	switch operator {
	case OpEqual:
		return c == 0
	case OpGreater:
		return c > 0
	case OpLess:
		return c < 0
	default:
		return false
	}
}

// compareStrings compares raw text. Only equality is defined for text; the
// ordering operators never match.
func compareStrings(left string, operator Operator, right string) bool {
	return operator == OpEqual && left == right
}

// resolveField maps a field name to its column, first match wins.
func resolveField(t *table.Table, field string) (int, error) {
	idx, ok := t.ColumnIndex(field)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return idx, nil
}

// Filter returns the rows of t that satisfy cond, in table order.
func Filter(t *table.Table, cond FilterCondition) ([][]string, error) {
	rows, _, err := FilterWithStats(t, cond)
	return rows, err
}

// FilterWithStats is Filter plus a count of the rows it looked at and why
// rows were skipped.
func FilterWithStats(t *table.Table, cond FilterCondition) ([][]string, Stats, error) {
	var stats Stats

	col, err := resolveField(t, cond.Field)
	if err != nil {
		return nil, stats, err
	}

	// The type of the comparison value fixes the mode for the whole scan.
	want := Typeify(cond.Value)
	numeric := want.IsNumber()

	filtered := make([][]string, 0)
	for row := range t.All() {
		stats.Scanned++

		if col >= len(row) {
			stats.ShortRows++
			continue
		}
		cell := row[col]

		var match bool
		if numeric {
			got := Typeify(cell)
			if !got.IsNumber() {
				stats.NonNumeric++
				continue
			}
			match = compare(got, cond.Operator, want)
		} else {
			match = compareStrings(cell, cond.Operator, cond.Value)
		}

		if match {
			filtered = append(filtered, slices.Clone(row))
		}
	}

	stats.Matched = len(filtered)
	return filtered, stats, nil
}
