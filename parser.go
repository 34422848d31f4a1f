package mj

// maxNestingDepth bounds container recursion so adversarially nested input
// fails with a ParseError instead of exhausting the call stack. The limit
// matches the one encoding/json adopted for the same reason.
const maxNestingDepth = 10000

// Parser consumes the lexer's token stream top-down with one token of
// lookahead. The grammar is LL(1): the kind of the current token alone
// selects the production.
type Parser struct {
	lex   *Lexer
	tok   Token
	depth int
}

// Parse parses a complete JSON document. A bare scalar is a valid document;
// anything left over after the top-level value is an error. On failure the
// returned error is a *LexError or *ParseError carrying the source
// position; there is no partial tree.
func Parse(input string) (Value, error) {
	p := &Parser{lex: NewLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenEOF {
		return nil, &ParseError{Kind: ParseTrailingData, Pos: p.tok.Pos, Found: p.tok.Kind.String()}
	}
	return v, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) expect(kind TokenKind, what string) error {
	if p.tok.Kind == TokenEOF {
		return &ParseError{Kind: ParseUnexpectedEOF, Pos: p.tok.Pos}
	}
	if p.tok.Kind != kind {
		return &ParseError{Kind: ParseUnexpectedToken, Pos: p.tok.Pos, Expected: what, Found: p.tok.Kind.String()}
	}
	return p.advance()
}

func (p *Parser) enter(pos Position) error {
	p.depth++
	if p.depth > maxNestingDepth {
		return &ParseError{Kind: ParseMaxDepth, Pos: pos}
	}
	return nil
}

func (p *Parser) parseValue() (Value, error) {
	switch p.tok.Kind {
	case TokenLBrace:
		return p.parseObject()
	case TokenLBracket:
		return p.parseArray()
	case TokenString:
		s := String(p.tok.Literal)
		return s, p.advance()
	case TokenNumber:
		n := Number{Literal: p.tok.Literal}
		return n, p.advance()
	case TokenTrue:
		return Bool(true), p.advance()
	case TokenFalse:
		return Bool(false), p.advance()
	case TokenNull:
		return Null{}, p.advance()
	case TokenEOF:
		return nil, &ParseError{Kind: ParseUnexpectedEOF, Pos: p.tok.Pos}
	default:
		return nil, &ParseError{Kind: ParseUnexpectedToken, Pos: p.tok.Pos, Expected: "value", Found: p.tok.Kind.String()}
	}
}

func (p *Parser) parseObject() (Value, error) {
	if err := p.enter(p.tok.Pos); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if err := p.advance(); err != nil {
		return nil, err
	}

	obj := Object{}
	if p.tok.Kind == TokenRBrace {
		return obj, p.advance()
	}

	for {
		if p.tok.Kind == TokenEOF {
			return nil, &ParseError{Kind: ParseUnexpectedEOF, Pos: p.tok.Pos}
		}
		if p.tok.Kind != TokenString {
			return nil, &ParseError{Kind: ParseUnexpectedToken, Pos: p.tok.Pos, Expected: "object key", Found: p.tok.Kind.String()}
		}
		key := p.tok.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(TokenColon, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// Duplicate keys are kept in order; Object.Get resolves them
		// last-key-wins.
		obj = append(obj, Member{Key: key, Value: val})

		switch p.tok.Kind {
		case TokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRBrace:
			return obj, p.advance()
		case TokenEOF:
			return nil, &ParseError{Kind: ParseUnexpectedEOF, Pos: p.tok.Pos}
		default:
			return nil, &ParseError{Kind: ParseUnexpectedToken, Pos: p.tok.Pos, Expected: "',' or '}'", Found: p.tok.Kind.String()}
		}
	}
}

func (p *Parser) parseArray() (Value, error) {
	if err := p.enter(p.tok.Pos); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if err := p.advance(); err != nil {
		return nil, err
	}

	arr := Array{}
	if p.tok.Kind == TokenRBracket {
		return arr, p.advance()
	}

	for {
		el, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, el)

		switch p.tok.Kind {
		case TokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRBracket:
			return arr, p.advance()
		case TokenEOF:
			return nil, &ParseError{Kind: ParseUnexpectedEOF, Pos: p.tok.Pos}
		default:
			return nil, &ParseError{Kind: ParseUnexpectedToken, Pos: p.tok.Pos, Expected: "',' or ']'", Found: p.tok.Kind.String()}
		}
	}
}
