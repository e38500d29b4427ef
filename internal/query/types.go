// Package query parses single-condition filter and aggregate expressions and
// evaluates them against a table.
//
// Two expression forms are supported:
//
//	price>500        filter: field, one of = > <, value
//	price=avg        aggregate: field, =, one of min max avg sum
//
// Cell values are typed with Typeify. A filter whose value types as a number
// compares numerically and skips rows whose cell is not a number; any other
// filter compares text and only supports equality.
//
// Example usage:
//
//	cond, err := ParseFilter("brand=apple")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := Filter(tbl, cond)
package query

// TokenType represents the type of a token
type TokenType int

const (
	TokenIdent TokenType = iota

	// Operators
	TokenEqual   // =
	TokenGreater // >
	TokenLess    // <

	// Special
	TokenEOF
	TokenError
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenEqual:
		return "'='"
	case TokenGreater:
		return "'>'"
	case TokenLess:
		return "'<'"
	case TokenEOF:
		return "end of input"
	default:
		return "invalid character"
	}
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Operator is a filter comparison operator.
type Operator string

const (
	OpEqual   Operator = "="
	OpGreater Operator = ">"
	OpLess    Operator = "<"
)

// AggregateOp is a column reduction.
type AggregateOp string

const (
	AggMin AggregateOp = "min"
	AggMax AggregateOp = "max"
	AggAvg AggregateOp = "avg"
	AggSum AggregateOp = "sum"
)

// FilterCondition is a parsed filter expression. Value holds the text after
// the operator exactly as written.
type FilterCondition struct {
	Field    string
	Operator Operator
	Value    string
}

func (c FilterCondition) String() string {
	return c.Field + string(c.Operator) + c.Value
}

// AggregateCondition is a parsed aggregate expression.
type AggregateCondition struct {
	Field string
	Op    AggregateOp
}

func (c AggregateCondition) String() string {
	return c.Field + "=" + string(c.Op)
}

// Stats describes a single scan. Rows skipped for being too short or for
// holding a non-numeric cell are counted but never reported as errors.
type Stats struct {
	Scanned    int
	Matched    int
	ShortRows  int
	NonNumeric int
}
