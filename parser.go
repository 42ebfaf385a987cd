package brx

// Parser is a recursive-descent parser over a Lexer's token sequence,
// implementing the precedence alternation < concatenation <
// quantification < atom. It assigns 1-based indices to capturing
// groups in the order their opening '(' appears.
type Parser struct {
	toks     []Token
	pos      int
	captures int
	opts     compileOptions
}

// NewParser constructs a Parser over an already-lexed token sequence.
func NewParser(toks []Token, opts compileOptions) *Parser {
	return &Parser{toks: toks, opts: opts}
}

// ParsePattern lexes and parses src in one call, returning the AST
// root and the number of capturing groups assigned.
func ParsePattern(src string, opts compileOptions) (Node, int, error) {
	toks, err := NewLexer(src).Lex()
	if err != nil {
		return nil, 0, err
	}
	p := NewParser(toks, opts)
	node, err := p.Parse()
	if err != nil {
		return nil, 0, err
	}
	return node, p.captures, nil
}

// Parse consumes the entire token sequence, returning an error if any
// tokens remain unconsumed after a full alternation.
func (p *Parser) Parse() (Node, error) {
	node, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenEOF {
		return nil, &CompileError{Msg: "unexpected token", Pos: p.peek().Offset}
	}
	return node, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Type: TokenEOF, Offset: p.endOffset()}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt TokenType) bool {
	if p.peek().Type == tt {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) endOffset() int {
	if len(p.toks) == 0 {
		return 0
	}
	return p.toks[len(p.toks)-1].Offset + 1
}

// alternation := concatenation ( '|' concatenation )*
func (p *Parser) parseAlternation() (Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenPipe {
		return left, nil
	}
	branches := []Node{left}
	for p.peek().Type == TokenPipe {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		branches = append(branches, right)
	}
	return &AlternateNode{Branches: branches}, nil
}

// concatenation := quantifier+
func (p *Parser) parseConcat() (Node, error) {
	var nodes []Node
	for p.isConcatItemStart() {
		n, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	switch len(nodes) {
	case 0:
		return &ConcatNode{}, nil
	case 1:
		return nodes[0], nil
	default:
		return &ConcatNode{Children: nodes}, nil
	}
}

func (p *Parser) isConcatItemStart() bool {
	switch p.peek().Type {
	case TokenPipe, TokenRParen, TokenEOF:
		return false
	}
	return true
}

// quantifier := atom ( '*' | '+' | '?' | '{' n (',' m)? '}' )?
func (p *Parser) parseQuantified() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.peek().Type {
	case TokenStar:
		p.advance()
		return &RepeatNode{Child: atom, Min: 0, Max: infiniteRepeat, Greedy: true}, nil
	case TokenPlus:
		p.advance()
		return &RepeatNode{Child: atom, Min: 1, Max: infiniteRepeat, Greedy: true}, nil
	case TokenQuestion:
		p.advance()
		return &RepeatNode{Child: atom, Min: 0, Max: 1, Greedy: true}, nil
	case TokenLBrace:
		return p.parseBoundedRepeat(atom)
	}
	return atom, nil
}

func (p *Parser) parseBoundedRepeat(atom Node) (Node, error) {
	open := p.advance() // consume '{'
	min, ok := p.parseNumber()
	if !ok {
		return nil, &CompileError{Msg: "invalid quantifier: expected number", Pos: p.peek().Offset}
	}
	max := min
	if p.peek().Type == TokenComma {
		p.advance()
		if p.peek().Type == TokenRBrace {
			max = infiniteRepeat
		} else {
			m, ok := p.parseNumber()
			if !ok {
				return nil, &CompileError{Msg: "invalid quantifier: expected number", Pos: p.peek().Offset}
			}
			max = m
		}
	}
	if !p.expect(TokenRBrace) {
		return nil, &CompileError{Msg: "unclosed brace", Pos: open.Offset}
	}
	if max != infiniteRepeat && max < min {
		return nil, &CompileError{Msg: "invalid quantifier: max less than min", Pos: open.Offset}
	}
	return &RepeatNode{Child: atom, Min: min, Max: max, Greedy: true}, nil
}

func (p *Parser) parseNumber() (int, bool) {
	start := p.pos
	n := 0
	for p.peek().Type == TokenLiteral && p.peek().Val >= '0' && p.peek().Val <= '9' {
		n = n*10 + int(p.advance().Val-'0')
	}
	return n, p.pos != start
}

// atom := LITERAL | '.' | group | class | escape | '^' | '$'
func (p *Parser) parseAtom() (Node, error) {
	t := p.advance()
	switch t.Type {
	case TokenLiteral:
		return &LiteralNode{Byte: t.Val}, nil
	case TokenDot:
		return &DotNode{}, nil
	case TokenCaret:
		return &AnchorStartNode{}, nil
	case TokenDollar:
		return &AnchorEndNode{}, nil
	case TokenLParen:
		return p.parseGroup(t)
	case TokenLBracket:
		return p.parseCharClass()
	case TokenEscape:
		return p.parseEscape(t)
	case TokenRange:
		return &LiteralNode{Byte: '-'}, nil
	case TokenComma:
		return &LiteralNode{Byte: ','}, nil
	case TokenLBrace:
		return &LiteralNode{Byte: '{'}, nil
	case TokenRBrace:
		return &LiteralNode{Byte: '}'}, nil
	default:
		return nil, &CompileError{Msg: "unexpected token", Pos: t.Offset}
	}
}

// group := '(' ( '?' ( ':' | '=' | '!' ) )? alternation ')'
func (p *Parser) parseGroup(open Token) (Node, error) {
	if p.peek().Type == TokenQuestion {
		p.advance()
		m := p.peek()
		if m.Type == TokenLiteral && m.Val == ':' {
			p.advance()
			body, err := p.parseAlternation()
			if err != nil {
				return nil, err
			}
			if !p.expect(TokenRParen) {
				return nil, &CompileError{Msg: "unclosed parenthesis", Pos: open.Offset}
			}
			return body, nil
		}
		if m.Type == TokenLiteral && (m.Val == '=' || m.Val == '!') {
			p.advance()
			body, err := p.parseAlternation()
			if err != nil {
				return nil, err
			}
			if !p.expect(TokenRParen) {
				return nil, &CompileError{Msg: "unclosed parenthesis", Pos: open.Offset}
			}
			// Lookaround syntax is accepted but the body is emitted
			// inline: no real zero-width lookaround semantics.
			return body, nil
		}
		return nil, &CompileError{Msg: "invalid group modifier", Pos: open.Offset}
	}

	p.captures++
	idx := p.captures
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.expect(TokenRParen) {
		return nil, &CompileError{Msg: "unclosed parenthesis", Pos: open.Offset}
	}
	return &GroupNode{Index: idx, Child: body}, nil
}

// class := '[' '^'? class_item* ']'
func (p *Parser) parseCharClass() (Node, error) {
	negated := false
	if p.peek().Type == TokenCaret {
		p.advance()
		negated = true
	}

	var set CharSet
	for {
		t := p.peek()
		if t.Type == TokenRBracket {
			break
		}
		if t.Type == TokenEOF {
			return nil, &CompileError{Msg: "unclosed character class", Pos: p.endOffset()}
		}

		b, isByte, err := p.classItemByte(&set)
		if err != nil {
			return nil, err
		}
		if !isByte {
			continue
		}

		if p.peek().Type == TokenRange {
			p.advance()
			if p.peek().Type == TokenRBracket {
				set.Set(b)
				set.Set('-')
				continue
			}
			b2, isByte2, err := p.classItemByte(&set)
			if err != nil {
				return nil, err
			}
			if !isByte2 {
				set.Set(b)
				set.Set('-')
				continue
			}
			if b2 < b {
				return nil, &CompileError{Msg: "invalid character range", Pos: t.Offset}
			}
			set.SetRange(b, b2)
			continue
		}

		set.Set(b)
	}
	p.advance() // consume ']'

	if p.opts.foldCase {
		set = foldCaseSet(set)
	}
	if negated {
		return &NegCharClassNode{Set: set}, nil
	}
	return &CharClassNode{Set: set}, nil
}

// classItemByte consumes one token inside a character class. Escapes
// that denote a named predicate (\d \D \w \W \s \S) union their byte
// membership directly into set and report isByte=false; everything
// else reports the single byte it contributes.
//
// \b is backspace (0x08) inside a class, not the word-boundary
// assertion it is outside one — the same table split every regex
// engine that rejects a bare \b assertion still makes for \b in a
// class. \B has no meaning as a byte and stays rejected here too.
func (p *Parser) classItemByte(set *CharSet) (byte, bool, error) {
	t := p.advance()
	if t.Type != TokenEscape {
		return t.Val, true, nil
	}
	switch t.Val {
	case 'd':
		set.Union(digitSet())
		return 0, false, nil
	case 'D':
		set.Union(invertSet(digitSet()))
		return 0, false, nil
	case 'w':
		set.Union(wordSet())
		return 0, false, nil
	case 'W':
		set.Union(invertSet(wordSet()))
		return 0, false, nil
	case 's':
		set.Union(spaceSet())
		return 0, false, nil
	case 'S':
		set.Union(invertSet(spaceSet()))
		return 0, false, nil
	case 'x':
		return p.readHexByte(), true, nil
	case 'b':
		return 0x08, true, nil
	case 'B':
		return 0, false, &CompileError{Msg: "\\B is not a valid character class escape", Pos: t.Offset}
	case 't':
		return '\t', true, nil
	case 'r':
		return '\r', true, nil
	case 'n':
		return '\n', true, nil
	case 'f':
		return '\f', true, nil
	case 'v':
		return '\v', true, nil
	case 'a':
		return '\a', true, nil
	case 'e':
		return 0x1b, true, nil
	default:
		return t.Val, true, nil
	}
}

// parseEscape handles the outside-of-class escape table.
func (p *Parser) parseEscape(t Token) (Node, error) {
	switch t.Val {
	case 'd':
		return &CharClassNode{Pred: PredDigit}, nil
	case 'D':
		return &NegCharClassNode{Pred: PredDigit}, nil
	case 'w':
		return &CharClassNode{Pred: PredWord}, nil
	case 'W':
		return &NegCharClassNode{Pred: PredWord}, nil
	case 's':
		return &CharClassNode{Pred: PredSpace}, nil
	case 'S':
		return &NegCharClassNode{Pred: PredSpace}, nil
	case 'b', 'B':
		return nil, &CompileError{Msg: "word-boundary assertions are not supported", Pos: t.Offset}
	case 't':
		return &LiteralNode{Byte: '\t'}, nil
	case 'r':
		return &LiteralNode{Byte: '\r'}, nil
	case 'n':
		return &LiteralNode{Byte: '\n'}, nil
	case 'f':
		return &LiteralNode{Byte: '\f'}, nil
	case 'v':
		return &LiteralNode{Byte: '\v'}, nil
	case 'a':
		return &LiteralNode{Byte: '\a'}, nil
	case 'e':
		return &LiteralNode{Byte: 0x1b}, nil
	case 'x':
		return &LiteralNode{Byte: p.readHexByte()}, nil
	default:
		if t.Val >= '1' && t.Val <= '9' {
			return &BackrefNode{Group: int(t.Val - '0')}, nil
		}
		return &LiteralNode{Byte: t.Val}, nil
	}
}

// readHexByte consumes up to two following literal hex-digit tokens
// (case-insensitive), building one byte. Stops early, without
// consuming, on the first non-hex-digit token.
func (p *Parser) readHexByte() byte {
	var v byte
	for count := 0; count < 2; count++ {
		t := p.peek()
		if t.Type != TokenLiteral || !isHexDigit(t.Val) {
			break
		}
		v = v*16 + hexDigitValue(t.Val)
		p.advance()
	}
	return v
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexDigitValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
