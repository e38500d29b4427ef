package query

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
)

// Kind tags the representation held by a Value.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// Value is a typed cell: an int64, a float64 or the original text.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Typeify types a raw string. Strings containing '.' are parsed as floats,
// everything else as integers; anything that fails to parse is Text with the
// input unchanged. Surrounding whitespace is ignored for the numeric attempt.
// Digits may be grouped with single underscores ("1_000"); hex literals are
// Text.
func Typeify(raw string) Value {
	s, ok := numericForm(strings.TrimSpace(raw))
	if !ok {
		return Text(raw)
	}

	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return Float(f)
		}
		return Text(raw)
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int(i)
	}
	if errors.Is(err, strconv.ErrRange) {
		// Out of int64 range but still a well-formed integer.
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil || errors.Is(ferr, strconv.ErrRange) {
			return Float(f)
		}
	}
	return Text(raw)
}

// numericForm strips digit-group underscores from s. It reports false for
// hex literals and for underscores that do not sit between two digits.
func numericForm(s string) (string, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Kind reports the representation of v.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v is an Int or a Float.
func (v Value) IsNumber() bool { return v.kind == KindInt || v.kind == KindFloat }

// Int64 returns the integer held by an Int value, or the truncated float.
func (v Value) Int64() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns the numeric value as a float64. Text values return 0.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return 0
	}
}

// String renders ints as plain integers and integral floats with a trailing
// ".0", so 602 and 602.0 stay distinguishable in output.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".NI") {
			s += ".0"
		}
		return s
	default:
		return v.s
	}
}

// compareNumbers orders two numeric values. Two ints compare exactly; any
// other pair compares as float64.
func compareNumbers(a, b Value) int {
	if a.kind == KindInt && b.kind == KindInt {
		return cmp.Compare(a.i, b.i)
	}
	return cmp.Compare(a.Float64(), b.Float64())
}

// addNumbers adds two numeric values. Int+Int stays Int unless it overflows.
func addNumbers(a, b Value) Value {
	if a.kind == KindInt && b.kind == KindInt {
		s := a.i + b.i
		if (a.i > 0 && b.i > 0 && s < 0) || (a.i < 0 && b.i < 0 && s >= 0) {
			return Float(float64(a.i) + float64(b.i))
		}
		return Int(s)
	}
	return Float(a.Float64() + b.Float64())
}
