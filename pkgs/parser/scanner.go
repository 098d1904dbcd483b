package parser

import "strings"

// scanner is a byte cursor over a message payload with line/column tracking.
// All grammars in this package are anchored: they consume the entire input or
// fail, so the scanner never needs lookahead beyond one byte.
type scanner struct {
	input string
	pos   int
	line  int // 1-based
	col   int // 0-based, matches the ParseError caret pointer
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	return s.input[s.pos]
}

// advance consumes one byte and updates position tracking.
func (s *scanner) advance() byte {
	b := s.input[s.pos]
	s.pos++
	if b == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return b
}

// skipWhitespace consumes spaces, tabs, carriage returns and newlines,
// returning how many bytes were skipped.
func (s *scanner) skipWhitespace() int {
	n := 0
	for !s.eof() && isSpace(s.peek()) {
		s.advance()
		n++
	}
	return n
}

// takeToken consumes a maximal run of non-whitespace bytes.
func (s *scanner) takeToken() string {
	start := s.pos
	for !s.eof() && !isSpace(s.peek()) {
		s.advance()
	}
	return s.input[start:s.pos]
}

// lineContext returns the full text of the line the cursor is on, for error
// reporting.
func (s *scanner) lineContext() string {
	start := strings.LastIndexByte(s.input[:s.pos], '\n') + 1
	end := strings.IndexByte(s.input[s.pos:], '\n')
	if end == -1 {
		return s.input[start:]
	}
	return s.input[start : s.pos+end]
}

// errorf creates a ParseError anchored at the current cursor position.
func (s *scanner) errorf(format string, args ...interface{}) *ParseError {
	return NewDetailedParseError(s.line, s.col, s.lineContext(), format, args...)
}

// errorAt creates a ParseError pointing at an earlier column on the current
// line, typically the start of the offending token.
func (s *scanner) errorAt(col int, format string, args ...interface{}) *ParseError {
	return NewDetailedParseError(s.line, col, s.lineContext(), format, args...)
}

// Character classes. The protocol is plain ASCII; multi-byte runes never
// satisfy any class and therefore fail the grammar they appear in.

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphaNum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// isWord reports whether every byte of tok satisfies class. Empty tokens
// never match.
func isWord(tok string, class func(byte) bool) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !class(tok[i]) {
			return false
		}
	}
	return true
}

// isIdentifier reports whether tok is a letter followed by letters or digits.
func isIdentifier(tok string) bool {
	if tok == "" || !isAlpha(tok[0]) {
		return false
	}
	return isWord(tok, isAlphaNum)
}

// isFieldName reports whether tok is a valid data-source field name: a
// letter or underscore followed by letters, digits or underscores.
func isFieldName(tok string) bool {
	if tok == "" {
		return false
	}
	if !isAlpha(tok[0]) && tok[0] != '_' {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isAlphaNum(tok[i]) && tok[i] != '_' {
			return false
		}
	}
	return true
}

// isNumericLiteral reports whether tok is a standard decimal or exponential
// numeric literal: an optional sign, digits with an optional fraction, and
// an optional exponent. At least one mantissa digit is required.
func isNumericLiteral(tok string) bool {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	digits := 0
	for i < len(tok) && isDigit(tok[i]) {
		i++
		digits++
	}
	if i < len(tok) && tok[i] == '.' {
		i++
		for i < len(tok) && isDigit(tok[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(tok) && isDigit(tok[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(tok)
}
