package query

import (
	"fmt"

	"github.com/vegasq/csvtbl/internal/table"
)

// Aggregate reduces the numeric cells of one column to a single value.
func Aggregate(t *table.Table, cond AggregateCondition) (Value, error) {
	v, _, err := AggregateWithStats(t, cond)
	return v, err
}

// AggregateWithStats is Aggregate plus scan counts. Matched is the number of
// cells that took part in the reduction.
func AggregateWithStats(t *table.Table, cond AggregateCondition) (Value, Stats, error) {
	var stats Stats

	col, err := resolveField(t, cond.Field)
	if err != nil {
		return Value{}, stats, err
	}

	values := make([]Value, 0, t.Len())
	for row := range t.All() {
		stats.Scanned++

		if col >= len(row) {
			stats.ShortRows++
			continue
		}

		v := Typeify(row[col])
		if !v.IsNumber() {
			stats.NonNumeric++
			continue
		}
		values = append(values, v)
	}
	stats.Matched = len(values)

	if len(values) == 0 {
		return Value{}, stats, fmt.Errorf("%w in column %q", ErrNoNumericData, cond.Field)
	}

	result, err := reduce(cond.Op, values)
	if err != nil {
		return Value{}, stats, err
	}
	return result, stats, nil
}

// reduce applies op to a non-empty slice of numbers.
func reduce(op AggregateOp, values []Value) (Value, error) {
	switch op {
	case AggMin:
		best := values[0]
		for _, v := range values[1:] {
			if compareNumbers(v, best) < 0 {
				best = v
			}
		}
		return best, nil
	case AggMax:
		best := values[0]
		for _, v := range values[1:] {
			if compareNumbers(v, best) > 0 {
				best = v
			}
		}
		return best, nil
	case AggSum:
		return sum(values), nil
	case AggAvg:
		return Float(sum(values).Float64() / float64(len(values))), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown aggregate %q", ErrInvalidConditionFormat, string(op))
	}
}

// sum adds values left to right, starting from integer zero.
func sum(values []Value) Value {
	total := Int(0)
	for _, v := range values {
		total = addNumbers(total, v)
	}
	return total
}
