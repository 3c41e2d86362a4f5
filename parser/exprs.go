package parser

import "strings"

func (p *parser) exprSpanFrom(start int) exprSpan {
	return exprSpan{p.spanFrom(start)}
}

// parseExpr parses a full expression, assignment included. Assignment is
// right-associative.
func (p *parser) parseExpr() ExprContext {
	start := p.pos
	left := p.parseTernaryExpr()
	if sym, n := p.assignOp(); sym != "" {
		p.consume(n)
		value := p.parseExpr()
		return &AssignExprContext{exprSpan: p.exprSpanFrom(start), Op: sym, Target: left, Value: value}
	}
	return left
}

var assignSymbols = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true, ">>>=": true,
}

func (p *parser) assignOp() (string, int) {
	if sym, n := p.angleOp(); strings.HasSuffix(sym, "=") && assignSymbols[sym] {
		return sym, n
	}
	if t := p.cur(); t.Kind == TokenPunct && assignSymbols[t.Text] && t.Text[0] != '>' {
		return t.Text, 1
	}
	return "", 0
}

func (p *parser) parseTernaryExpr() ExprContext {
	start := p.pos
	cond := p.parseBinaryExpr(0)
	if !p.atPunct("?") {
		return cond
	}
	p.advance()
	then := p.parseTernaryExpr()
	p.expectPunct(":")
	els := p.parseTernaryExpr()
	return &TernaryExprContext{exprSpan: p.exprSpanFrom(start), Cond: cond, Then: then, Else: els}
}

// binary operator precedence levels, loosest first
var binaryLevels = [][]string{
	{"||"},
	{"&&"},
	{"|"},
	{"^"},
	{"&"},
	{"==", "!=", "<>", "===", "!=="},
	{"<", "<=", ">", ">="},
	{"<<", ">>", ">>>"},
	{"+", "-"},
	{"*", "/"},
}

const relationalLevel = 6

func (p *parser) parseBinaryExpr(level int) ExprContext {
	if level == len(binaryLevels) {
		return p.parseUnaryExpr()
	}
	start := p.pos
	left := p.parseBinaryExpr(level + 1)
	for {
		if level == relationalLevel && p.atWord("instanceof") {
			p.advance()
			typ := p.parseTypeRef()
			left = &InstanceOfExprContext{exprSpan: p.exprSpanFrom(start), Operand: left, Type: typ}
			continue
		}
		sym, n := p.binaryOpAt(level)
		if sym == "" {
			return left
		}
		p.consume(n)
		right := p.parseBinaryExpr(level + 1)
		left = &BinaryExprContext{exprSpan: p.exprSpanFrom(start), Op: sym, Left: left, Right: right}
	}
}

func (p *parser) binaryOpAt(level int) (string, int) {
	syms := binaryLevels[level]
	if angle, n := p.angleOp(); angle != "" {
		for _, s := range syms {
			if s == angle {
				return angle, n
			}
		}
		return "", 0
	}
	t := p.cur()
	if t.Kind != TokenPunct {
		return "", 0
	}
	for _, s := range syms {
		if s == t.Text {
			return s, 1
		}
	}
	return "", 0
}

var prefixOps = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
}

func (p *parser) parseUnaryExpr() ExprContext {
	start := p.pos
	if t := p.cur(); t.Kind == TokenPunct && prefixOps[t.Text] {
		p.advance()
		operand := p.parseUnaryExpr()
		return &UnaryExprContext{exprSpan: p.exprSpanFrom(start), Op: t.Text, Prefix: true, Operand: operand}
	}
	if cast := p.tryParseCast(); cast != nil {
		return cast
	}
	return p.parsePostfixExpr()
}

// tryParseCast speculatively matches `(Type) operand`. A parenthesized
// type followed by a token that can begin an operand is a cast; anything
// else rolls back to a parenthesized expression.
func (p *parser) tryParseCast() ExprContext {
	if !p.atPunct("(") {
		return nil
	}
	save := p.pos
	p.advance()
	typ := p.tryParseTypeRef()
	if typ == nil || !p.atPunct(")") {
		p.pos = save
		return nil
	}
	p.advance()
	if !p.startsOperand() {
		p.pos = save
		return nil
	}
	operand := p.parseUnaryExpr()
	return &CastExprContext{exprSpan: p.exprSpanFrom(save), Type: typ, Operand: operand}
}

func (p *parser) startsOperand() bool {
	switch p.cur().Kind {
	case TokenIdent, TokenIntLiteral, TokenLongLiteral, TokenDoubleLiteral, TokenStringLiteral:
		return true
	case TokenPunct:
		t := p.cur().Text
		return t == "(" || t == "!" || t == "~" || t == "["
	}
	return false
}

func (p *parser) parsePostfixExpr() ExprContext {
	start := p.pos
	e := p.parsePrimaryExpr()
	for {
		switch {
		case p.atPunct(".") && p.peekTok(1).Kind == TokenIdent:
			p.advance()
			name := p.expectIdent()
			if p.atPunct("(") {
				args := p.parseArgs()
				e = &CallExprContext{exprSpan: p.exprSpanFrom(start), Receiver: e, Name: name, Args: args}
			} else {
				e = &FieldAccessExprContext{exprSpan: p.exprSpanFrom(start), Receiver: e, Name: name}
			}
		case p.atPunct("["):
			p.advance()
			idx := p.parseExpr()
			p.expectPunct("]")
			e = &IndexExprContext{exprSpan: p.exprSpanFrom(start), Receiver: e, Index: idx}
		case p.atPunct("++") || p.atPunct("--"):
			t := p.advance()
			e = &UnaryExprContext{exprSpan: p.exprSpanFrom(start), Op: t.Text, Prefix: false, Operand: e}
		default:
			return e
		}
	}
}

func (p *parser) parseArgs() []ExprContext {
	p.expectPunct("(")
	var args []ExprContext
	for !p.atPunct(")") {
		args = append(args, p.parseExpr())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return args
}

func (p *parser) parsePrimaryExpr() ExprContext {
	start := p.pos
	t := p.cur()
	switch t.Kind {
	case TokenIntLiteral, TokenLongLiteral, TokenDoubleLiteral, TokenStringLiteral:
		p.advance()
		return &LiteralExprContext{exprSpan: p.exprSpanFrom(start), Tok: t}
	case TokenPunct:
		switch t.Text {
		case "(":
			p.advance()
			e := p.parseExpr()
			p.expectPunct(")")
			return e
		case "[":
			return p.parseQuery()
		}
	case TokenIdent:
		switch {
		case p.atAnyWord("true", "false", "null"):
			p.advance()
			return &LiteralExprContext{exprSpan: p.exprSpanFrom(start), Tok: t}
		case p.atWord("this"):
			p.advance()
			return &ThisExprContext{exprSpan: p.exprSpanFrom(start)}
		case p.atWord("super"):
			p.advance()
			return &SuperExprContext{exprSpan: p.exprSpanFrom(start)}
		case p.atWord("new"):
			p.advance()
			creator := p.parseCreator()
			return &NewExprContext{exprSpan: p.exprSpanFrom(start), Creator: creator}
		default:
			name := p.expectIdent()
			if p.atPunct("(") {
				args := p.parseArgs()
				return &CallExprContext{exprSpan: p.exprSpanFrom(start), Name: name, Args: args}
			}
			return &VarExprContext{exprSpan: p.exprSpanFrom(start), Name: name}
		}
	}
	p.errf("expected expression, found %s", t.Describe())
	return nil
}

func (p *parser) parseCreator() *CreatorContext {
	start := p.pos
	c := &CreatorContext{Type: p.parseTypeRef()}
	switch {
	case p.atPunct("("):
		iStart := p.pos
		args := p.parseArgs()
		c.Ctor = &CtorInitContext{span: p.spanFrom(iStart), Args: args}
	case p.atPunct("{"):
		p.parseBraceInit(c)
	case p.atPunct("["):
		iStart := p.pos
		p.advance()
		size := p.parseExpr()
		p.expectPunct("]")
		c.Array = &ArrayInitContext{span: p.spanFrom(iStart), Size: size}
	default:
		p.errf("expected initializer, found %s", p.cur().Describe())
	}
	c.span = p.spanFrom(start)
	return c
}

// parseBraceInit matches `{...}` after a creator type: either a value list
// or `key => value` pairs. An empty `{}` is a value list.
func (p *parser) parseBraceInit(c *CreatorContext) {
	start := p.pos
	p.expectPunct("{")
	if p.eatPunct("}") {
		c.List = &ListInitContext{span: p.spanFrom(start)}
		return
	}
	firstStart := p.pos
	first := p.parseExpr()
	if p.atPunct("=>") {
		m := &MapInitContext{}
		p.advance()
		value := p.parseExpr()
		m.Pairs = append(m.Pairs, &MapPairContext{span: p.spanFrom(firstStart), Key: first, Value: value})
		for p.eatPunct(",") {
			pairStart := p.pos
			key := p.parseExpr()
			p.expectPunct("=>")
			val := p.parseExpr()
			m.Pairs = append(m.Pairs, &MapPairContext{span: p.spanFrom(pairStart), Key: key, Value: val})
		}
		p.expectPunct("}")
		m.span = p.spanFrom(start)
		c.Map = m
		return
	}
	l := &ListInitContext{Values: []ExprContext{first}}
	for p.eatPunct(",") {
		l.Values = append(l.Values, p.parseExpr())
	}
	p.expectPunct("}")
	l.span = p.spanFrom(start)
	c.List = l
}

// parseQuery matches an inline SOQL/SOSL query. The query body is captured
// as raw text; only the `:expr` bindings are parsed, using the normal
// expression grammar.
func (p *parser) parseQuery() *QueryExprContext {
	start := p.pos
	open := p.expectPunct("[")
	q := &QueryExprContext{}
	switch {
	case p.atWord("select"):
	case p.atWord("find"):
		q.Sosl = true
	default:
		p.errf("expected \"select\" or \"find\", found %s", p.cur().Describe())
	}
	depth := 1
	for {
		t := p.cur()
		if t.Kind == TokenEOF {
			p.errf("unterminated query")
		}
		if t.Kind == TokenPunct {
			switch t.Text {
			case "[":
				depth++
			case "]":
				depth--
				if depth == 0 {
					closeTok := p.advance()
					q.Raw = strings.TrimSpace(string(p.src[open.Offset+1 : closeTok.Offset]))
					q.exprSpan = p.exprSpanFrom(start)
					return q
				}
			case ":":
				p.advance()
				q.Bindings = append(q.Bindings, p.parseTernaryExpr())
				continue
			}
		}
		p.advance()
	}
}
