package mj

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TokenKind identifies a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenComma
	TokenString
	TokenNumber
	TokenTrue
	TokenFalse
	TokenNull
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenTrue:
		return "'true'"
	case TokenFalse:
		return "'false'"
	case TokenNull:
		return "'null'"
	}
	return "unknown token"
}

// Token is a single lexical unit. Literal holds the decoded text for
// strings and the raw scanned text for numbers; Pos points at the token's
// first character.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

// Lexer turns input text into a stream of tokens. Each call to Next
// advances an internal cursor; the stream is not restartable.
type Lexer struct {
	src  string
	off  int
	line int
	col  int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) pos() Position {
	return Position{Offset: l.off, Line: l.line, Column: l.col}
}

// peek returns the rune at the cursor without consuming it. A zero width
// means end of input.
func (l *Lexer) peek() (rune, int) {
	if l.off >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *Lexer) next() rune {
	r, w := l.peek()
	if w == 0 {
		return 0
	}
	l.off += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for {
		switch r, _ := l.peek(); r {
		case ' ', '\t', '\n', '\r':
			l.next()
		default:
			return
		}
	}
}

// Next returns the next token, skipping any whitespace before it. At end of
// input it returns a TokenEOF token; it never resumes after an error.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	start := l.pos()

	r, w := l.peek()
	if w == 0 {
		return Token{Kind: TokenEOF, Pos: start}, nil
	}

	switch r {
	case '{':
		l.next()
		return Token{Kind: TokenLBrace, Pos: start}, nil
	case '}':
		l.next()
		return Token{Kind: TokenRBrace, Pos: start}, nil
	case '[':
		l.next()
		return Token{Kind: TokenLBracket, Pos: start}, nil
	case ']':
		l.next()
		return Token{Kind: TokenRBracket, Pos: start}, nil
	case ':':
		l.next()
		return Token{Kind: TokenColon, Pos: start}, nil
	case ',':
		l.next()
		return Token{Kind: TokenComma, Pos: start}, nil
	case '"':
		l.next()
		return l.scanString(start)
	case 't':
		return l.scanWord("true", TokenTrue, start)
	case 'f':
		return l.scanWord("false", TokenFalse, start)
	case 'n':
		return l.scanWord("null", TokenNull, start)
	}

	if r == '-' || r == '+' || r == '.' || isDigit(r) {
		return l.scanNumber(start)
	}

	l.next()
	return Token{}, &LexError{Kind: LexUnexpectedChar, Pos: start, Detail: string(r)}
}

// scanWord matches an exact lowercase literal (true, false, null).
func (l *Lexer) scanWord(want string, kind TokenKind, start Position) (Token, error) {
	for _, c := range want {
		r, w := l.peek()
		if w == 0 {
			return Token{}, &LexError{Kind: LexUnexpectedChar, Pos: l.pos()}
		}
		if r != c {
			return Token{}, &LexError{Kind: LexUnexpectedChar, Pos: l.pos(), Detail: string(r)}
		}
		l.next()
	}
	return Token{Kind: kind, Literal: want, Pos: start}, nil
}

// scanNumber scans a number with a deliberately permissive grammar: the
// maximal run of digits, sign, dot, and exponent characters is taken, then
// accepted iff strconv can parse it. This admits leading zeros, a bare
// leading dot, and a leading plus, but still rejects runs such as "1.2.3"
// or "1e". The scanned text is retained verbatim for re-rendering.
func (l *Lexer) scanNumber(start Position) (Token, error) {
	for {
		r, w := l.peek()
		if w == 0 || !(isDigit(r) || r == '+' || r == '-' || r == '.' || r == 'e' || r == 'E') {
			break
		}
		l.next()
	}
	lit := l.src[start.Offset:l.off]
	if _, err := strconv.ParseFloat(lit, 64); err != nil {
		return Token{}, &LexError{Kind: LexInvalidNumber, Pos: start, Detail: lit}
	}
	return Token{Kind: TokenNumber, Literal: lit, Pos: start}, nil
}

// scanString scans a string whose opening quote has been consumed, decoding
// all escape sequences. \uXXXX escapes accumulate into a UTF-16 buffer that
// is flushed before any other content, so surrogate pairs decode to a
// single scalar value.
func (l *Lexer) scanString(start Position) (Token, error) {
	var sb strings.Builder
	var units []uint16

	flush := func() {
		if len(units) > 0 {
			sb.WriteString(string(utf16.Decode(units)))
			units = units[:0]
		}
	}

	for {
		r, w := l.peek()
		if w == 0 {
			return Token{}, &LexError{Kind: LexUnterminatedString, Pos: start}
		}

		switch {
		case r == '"':
			l.next()
			flush()
			return Token{Kind: TokenString, Literal: sb.String(), Pos: start}, nil
		case r == '\\':
			escStart := l.pos()
			l.next()
			e, ew := l.peek()
			if ew == 0 {
				return Token{}, &LexError{Kind: LexUnterminatedString, Pos: start}
			}
			l.next()
			switch e {
			case '"', '\\', '/':
				flush()
				sb.WriteRune(e)
			case 'b':
				flush()
				sb.WriteByte('\b')
			case 'f':
				flush()
				sb.WriteByte('\f')
			case 'n':
				flush()
				sb.WriteByte('\n')
			case 'r':
				flush()
				sb.WriteByte('\r')
			case 't':
				flush()
				sb.WriteByte('\t')
			case 'u':
				var unit uint16
				for i := 0; i < 4; i++ {
					h, hw := l.peek()
					d, ok := hexDigit(h)
					if hw == 0 || !ok {
						return Token{}, &LexError{
							Kind:   LexInvalidEscape,
							Pos:    escStart,
							Detail: l.src[escStart.Offset:l.off],
						}
					}
					l.next()
					unit = unit<<4 | d
				}
				units = append(units, unit)
			default:
				return Token{}, &LexError{Kind: LexInvalidEscape, Pos: escStart, Detail: `\` + string(e)}
			}
		case r < 0x20:
			// Control characters must be escaped inside strings.
			return Token{}, &LexError{Kind: LexUnexpectedChar, Pos: l.pos(), Detail: string(r)}
		default:
			l.next()
			flush()
			sb.WriteRune(r)
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func hexDigit(r rune) (uint16, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint16(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint16(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint16(r-'A') + 10, true
	}
	return 0, false
}
