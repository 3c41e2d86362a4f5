package parser

import "strings"

func (p *parser) parseBlock() *BlockContext {
	start := p.pos
	p.expectPunct("{")
	b := &BlockContext{}
	for !p.atPunct("}") {
		b.Statements = append(b.Statements, p.parseStatement())
	}
	p.expectPunct("}")
	b.span = p.spanFrom(start)
	return b
}

func (p *parser) parseStatement() *StmtContext {
	start := p.pos
	s := &StmtContext{}
	switch {
	case p.atPunct("{"):
		s.Block = p.parseBlock()
	case p.atWord("if"):
		s.If = p.parseIf()
	case p.atWord("switch"):
		s.Switch = p.parseSwitch()
	case p.atWord("for"):
		s.For = p.parseFor()
	case p.atWord("while"):
		s.While = p.parseWhile()
	case p.atWord("do"):
		s.DoWhile = p.parseDoWhile()
	case p.atWord("try"):
		s.Try = p.parseTry()
	case p.atWord("return"):
		s.Return = p.parseReturn()
	case p.atWord("throw"):
		s.Throw = p.parseThrow()
	case p.atWord("break"):
		bStart := p.pos
		p.advance()
		p.expectPunct(";")
		s.Break = &BreakContext{span: p.spanFrom(bStart)}
	case p.atWord("continue"):
		cStart := p.pos
		p.advance()
		p.expectPunct(";")
		s.Continue = &ContinueContext{span: p.spanFrom(cStart)}
	case p.atAnyWord("insert", "update", "delete", "undelete", "upsert", "merge"):
		s.Dml = p.parseDml()
	case p.atRunAs():
		s.RunAs = p.parseRunAs()
	default:
		if decl := p.tryParseLocalVarDecl(); decl != nil {
			s.VarDecl = decl
		} else {
			s.Expr = p.parseExpr()
			p.expectPunct(";")
		}
	}
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseIf() *IfContext {
	start := p.pos
	p.expectWord("if")
	p.expectPunct("(")
	s := &IfContext{Cond: p.parseExpr()}
	p.expectPunct(")")
	s.Then = p.parseStatement()
	if p.eatWord("else") {
		s.Else = p.parseStatement()
	}
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseSwitch() *SwitchContext {
	start := p.pos
	p.expectWord("switch")
	p.expectWord("on")
	s := &SwitchContext{Value: p.parseExpr()}
	p.expectPunct("{")
	for !p.atPunct("}") {
		s.Whens = append(s.Whens, p.parseWhen())
	}
	p.expectPunct("}")
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseWhen() *WhenContext {
	start := p.pos
	p.expectWord("when")
	w := &WhenContext{}
	switch {
	case p.atWord("else"):
		t := p.advance()
		w.Else = &t
	default:
		// `when Type name` binds on type; otherwise it is a value list
		save := p.pos
		if typ := p.tryParseTypeRef(); typ != nil && p.cur().Kind == TokenIdent &&
			p.peekTok(1).Kind == TokenPunct && p.peekTok(1).Text == "{" {
			w.Type = typ
			w.Binding = p.expectIdent()
			break
		} else {
			p.pos = save
		}
		for {
			w.Values = append(w.Values, p.parseTernaryExpr())
			if !p.eatPunct(",") {
				break
			}
		}
	}
	w.Body = p.parseBlock()
	w.span = p.spanFrom(start)
	return w
}

func (p *parser) parseFor() *ForContext {
	start := p.pos
	p.expectWord("for")
	p.expectPunct("(")
	s := &ForContext{}

	// enhanced shape: `Type name : iterable`
	save := p.pos
	if typ := p.tryParseTypeRef(); typ != nil && p.cur().Kind == TokenIdent &&
		p.peekTok(1).Kind == TokenPunct && p.peekTok(1).Text == ":" {
		eStart := save
		e := &EnhancedForContext{Type: typ, Name: p.expectIdent()}
		p.expectPunct(":")
		e.Iterable = p.parseExpr()
		e.span = p.spanFrom(eStart)
		s.Enhanced = e
	} else {
		p.pos = save
		s.Classic = p.parseClassicFor()
	}
	p.expectPunct(")")
	s.Body = p.parseStatement()
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseClassicFor() *ClassicForContext {
	start := p.pos
	c := &ClassicForContext{}
	if !p.atPunct(";") {
		if decl := p.tryParseLocalVarDeclNoSemi(); decl != nil {
			c.Decl = decl
		} else {
			for {
				c.InitExprs = append(c.InitExprs, p.parseExpr())
				if !p.eatPunct(",") {
					break
				}
			}
		}
	}
	p.expectPunct(";")
	if !p.atPunct(";") {
		c.Cond = p.parseExpr()
	}
	p.expectPunct(";")
	for !p.atPunct(")") {
		c.Updates = append(c.Updates, p.parseExpr())
		if !p.eatPunct(",") {
			break
		}
	}
	c.span = p.spanFrom(start)
	return c
}

func (p *parser) parseWhile() *WhileContext {
	start := p.pos
	p.expectWord("while")
	p.expectPunct("(")
	s := &WhileContext{Cond: p.parseExpr()}
	p.expectPunct(")")
	s.Body = p.parseStatement()
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseDoWhile() *DoWhileContext {
	start := p.pos
	p.expectWord("do")
	s := &DoWhileContext{Body: p.parseStatement()}
	p.expectWord("while")
	p.expectPunct("(")
	s.Cond = p.parseExpr()
	p.expectPunct(")")
	p.expectPunct(";")
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseTry() *TryContext {
	start := p.pos
	p.expectWord("try")
	s := &TryContext{Body: p.parseBlock()}
	for p.atWord("catch") {
		cStart := p.pos
		p.advance()
		p.expectPunct("(")
		c := &CatchContext{Type: p.parseTypeRef(), Name: p.expectIdent()}
		p.expectPunct(")")
		c.Body = p.parseBlock()
		c.span = p.spanFrom(cStart)
		s.Catches = append(s.Catches, c)
	}
	if p.eatWord("finally") {
		s.Finally = p.parseBlock()
	}
	if len(s.Catches) == 0 && s.Finally == nil {
		p.errf("expected \"catch\" or \"finally\", found %s", p.cur().Describe())
	}
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseReturn() *ReturnContext {
	start := p.pos
	p.expectWord("return")
	s := &ReturnContext{}
	if !p.atPunct(";") {
		s.Expr = p.parseExpr()
	}
	p.expectPunct(";")
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseThrow() *ThrowContext {
	start := p.pos
	p.expectWord("throw")
	s := &ThrowContext{Expr: p.parseExpr()}
	p.expectPunct(";")
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) atRunAs() bool {
	return p.atWord("system") &&
		p.peekTok(1).Kind == TokenPunct && p.peekTok(1).Text == "." &&
		p.peekTok(2).Kind == TokenIdent && strings.EqualFold(p.peekTok(2).Text, "runas") &&
		p.peekTok(3).Kind == TokenPunct && p.peekTok(3).Text == "(" &&
		p.runAsHasBlock()
}

// runAsHasBlock distinguishes the runAs statement from an ordinary
// System.runAs(...) call expression by looking for the block after the
// closing parenthesis.
func (p *parser) runAsHasBlock() bool {
	depth := 0
	for i := p.pos + 3; i < len(p.toks); i++ {
		t := p.toks[i]
		if t.Kind != TokenPunct {
			continue
		}
		switch t.Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) &&
					p.toks[i+1].Kind == TokenPunct && p.toks[i+1].Text == "{"
			}
		}
	}
	return false
}

func (p *parser) parseRunAs() *RunAsContext {
	start := p.pos
	p.expectWord("system")
	p.expectPunct(".")
	p.advance() // runAs
	p.expectPunct("(")
	s := &RunAsContext{}
	for !p.atPunct(")") {
		s.Args = append(s.Args, p.parseExpr())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	s.Body = p.parseBlock()
	s.span = p.spanFrom(start)
	return s
}

func (p *parser) parseDml() *DmlContext {
	start := p.pos
	s := &DmlContext{Op: p.advance()}
	op := strings.ToLower(s.Op.Text)
	if p.atWord("as") {
		p.advance()
		switch {
		case p.atWord("user"):
			t := p.advance()
			s.UserMode = &t
		case p.atWord("system"):
			t := p.advance()
			s.SystemMode = &t
		default:
			p.errf("expected \"user\" or \"system\", found %s", p.cur().Describe())
		}
	}
	s.Args = append(s.Args, p.parseExpr())
	if op == "merge" {
		s.Args = append(s.Args, p.parseExpr())
	}
	if op == "upsert" && !p.atPunct(";") {
		s.UpsertField = p.parseDottedName()
	}
	p.expectPunct(";")
	s.span = p.spanFrom(start)
	return s
}

// parseDottedName matches `a` or `a.b.c` into a single IdContext, used for
// an upsert's external-id field.
func (p *parser) parseDottedName() *IdContext {
	start := p.pos
	text := p.expectIdent().Text
	for p.atPunct(".") && p.peekTok(1).Kind == TokenIdent {
		p.advance()
		text += "." + p.advance().Text
	}
	return &IdContext{span: p.spanFrom(start), Text: text}
}

// tryParseLocalVarDecl speculatively matches `Type name [= expr] (, ...)*;`
// including the trailing semicolon.
func (p *parser) tryParseLocalVarDecl() *LocalVarDeclContext {
	save := p.pos
	decl := p.tryParseLocalVarDeclNoSemi()
	if decl == nil {
		return nil
	}
	if !p.eatPunct(";") {
		p.pos = save
		return nil
	}
	decl.span = p.spanFrom(save)
	return decl
}

func (p *parser) tryParseLocalVarDeclNoSemi() *LocalVarDeclContext {
	save := p.pos
	typ := p.tryParseTypeRef()
	if typ == nil || p.cur().Kind != TokenIdent {
		p.pos = save
		return nil
	}
	// a declarator must follow directly; anything else was an expression
	next := p.peekTok(1)
	if next.Kind != TokenPunct || (next.Text != "=" && next.Text != "," && next.Text != ";") {
		p.pos = save
		return nil
	}
	decl := &LocalVarDeclContext{Type: typ}
	decl.Declarators = p.parseDeclarators(p.expectIdent())
	decl.span = p.spanFrom(save)
	return decl
}
