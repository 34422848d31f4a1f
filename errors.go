package mj

import "fmt"

// Position locates a token or error in the input text. Offset is a byte
// offset; Line and Column are 1-based and rune-oriented.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// LexErrorKind classifies lexical failures.
type LexErrorKind int

const (
	LexUnexpectedChar LexErrorKind = iota
	LexUnterminatedString
	LexInvalidEscape
	LexInvalidNumber
)

// LexError reports a malformed token. It carries the position of the
// offending input so callers can point at the exact byte.
type LexError struct {
	Kind LexErrorKind
	Pos  Position
	// Detail holds the offending text: the unexpected character, the bad
	// escape sequence, or the rejected number literal.
	Detail string
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexUnexpectedChar:
		// An empty Detail means the input ended where a character was
		// required, e.g. a truncated literal like "tru".
		if e.Detail == "" {
			return fmt.Sprintf("unexpected end of input at %s", e.Pos)
		}
		return fmt.Sprintf("unexpected character %q at %s", e.Detail, e.Pos)
	case LexUnterminatedString:
		return fmt.Sprintf("unterminated string at %s", e.Pos)
	case LexInvalidEscape:
		return fmt.Sprintf("invalid escape sequence %q at %s", e.Detail, e.Pos)
	case LexInvalidNumber:
		return fmt.Sprintf("invalid number literal %q at %s", e.Detail, e.Pos)
	}
	return fmt.Sprintf("lex error at %s", e.Pos)
}

// ParseErrorKind classifies grammar failures.
type ParseErrorKind int

const (
	ParseUnexpectedToken ParseErrorKind = iota
	ParseUnexpectedEOF
	ParseTrailingData
	ParseMaxDepth
)

// ParseError reports a grammar violation. The first error aborts the whole
// parse; there is no partial tree.
type ParseError struct {
	Kind     ParseErrorKind
	Pos      Position
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseUnexpectedToken:
		return fmt.Sprintf("expected %s but found %s at %s", e.Expected, e.Found, e.Pos)
	case ParseUnexpectedEOF:
		return fmt.Sprintf("unexpected end of input at %s", e.Pos)
	case ParseTrailingData:
		return fmt.Sprintf("trailing %s after top-level value at %s", e.Found, e.Pos)
	case ParseMaxDepth:
		return fmt.Sprintf("exceeded maximum nesting depth %d at %s", maxNestingDepth, e.Pos)
	}
	return fmt.Sprintf("parse error at %s", e.Pos)
}
