package query

import (
	"fmt"
	"strings"
)

// Parser parses a single condition
type Parser struct {
	lexer *Lexer
	input string
	cur   Token
}

// NewParser creates a new parser
func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input), input: input}
	p.advance()
	return p
}

// advance moves to the next token
func (p *Parser) advance() {
	p.cur = p.lexer.NextToken()
}

// errorf wraps ErrInvalidConditionFormat with the raw input and a reason.
func (p *Parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidConditionFormat, p.input, fmt.Sprintf(format, args...))
}

// ParseFilter parses field<op>value where op is one of = > <.
func ParseFilter(expr string) (FilterCondition, error) {
	if err := ValidateCondition(expr); err != nil {
		return FilterCondition{}, err
	}

	p := NewParser(expr)
	return p.parseFilter()
}

// ParseAggregate parses field=op where op is one of min max avg sum.
func ParseAggregate(expr string) (AggregateCondition, error) {
	if err := ValidateCondition(expr); err != nil {
		return AggregateCondition{}, err
	}

	p := NewParser(expr)
	return p.parseAggregate()
}

func (p *Parser) parseFilter() (FilterCondition, error) {
	field, err := p.parseField()
	if err != nil {
		return FilterCondition{}, err
	}

	var op Operator
	switch p.cur.Type {
	case TokenEqual:
		op = OpEqual
	case TokenGreater:
		op = OpGreater
	case TokenLess:
		op = OpLess
	default:
		return FilterCondition{}, p.errorf("expected one of = > < at offset %d, got %v", p.cur.Pos, p.cur.Type)
	}

	value := p.lexer.Rest()
	if value == "" {
		return FilterCondition{}, p.errorf("missing value after %q", string(op))
	}
	if i := strings.IndexByte(value, '\n'); i >= 0 {
		return FilterCondition{}, p.errorf("line break in value at offset %d", len(p.input)-len(value)+i)
	}

	return FilterCondition{Field: field, Operator: op, Value: value}, nil
}

func (p *Parser) parseAggregate() (AggregateCondition, error) {
	field, err := p.parseField()
	if err != nil {
		return AggregateCondition{}, err
	}

	if p.cur.Type != TokenEqual {
		return AggregateCondition{}, p.errorf("expected '=' at offset %d, got %v", p.cur.Pos, p.cur.Type)
	}

	op := AggregateOp(p.lexer.Rest())
	switch op {
	case AggMin, AggMax, AggAvg, AggSum:
	default:
		return AggregateCondition{}, p.errorf("unknown aggregate %q (want min, max, avg or sum)", string(op))
	}

	return AggregateCondition{Field: field, Op: op}, nil
}

// parseField consumes the leading identifier and the token after it.
func (p *Parser) parseField() (string, error) {
	if p.cur.Type != TokenIdent {
		return "", p.errorf("expected field name at offset %d, got %v", p.cur.Pos, p.cur.Type)
	}
	field := p.cur.Value
	p.advance()
	return field, nil
}
