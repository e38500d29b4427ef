package query

// Lexer tokenizes the head of a condition: the field name and the operator.
// Everything after the operator is taken verbatim with Rest.
type Lexer struct {
	input string
	pos   int
	ch    byte
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// offset is the byte index of the current character.
func (l *Lexer) offset() int {
	return l.pos - 1
}

func (l *Lexer) atEnd() bool {
	return l.offset() >= len(l.input)
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}

// readIdentifier reads [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) readIdentifier() string {
	start := l.offset()
	for !l.atEnd() && isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.offset()]
}

// NextToken returns the next token. There is no whitespace skipping: a space
// is an invalid character in the head of a condition.
func (l *Lexer) NextToken() Token {
	start := l.offset()

	if l.atEnd() {
		return Token{Type: TokenEOF, Pos: start}
	}

	var tok Token
	switch l.ch {
	case '=':
		tok = Token{Type: TokenEqual, Value: "=", Pos: start}
		l.readChar()
	case '>':
		tok = Token{Type: TokenGreater, Value: ">", Pos: start}
		l.readChar()
	case '<':
		tok = Token{Type: TokenLess, Value: "<", Pos: start}
		l.readChar()
	default:
		if isIdentStart(l.ch) {
			tok = Token{Type: TokenIdent, Value: l.readIdentifier(), Pos: start}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch), Pos: start}
			l.readChar()
		}
	}

	return tok
}

// Rest returns the unread input unchanged and moves the lexer to the end.
func (l *Lexer) Rest() string {
	if l.atEnd() {
		return ""
	}
	rest := l.input[l.offset():]
	l.pos = len(l.input) + 1
	l.ch = 0
	return rest
}
