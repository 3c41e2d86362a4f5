package parser

import "strings"

// modifier keywords, folded. The two-word forms are matched separately.
var modifierWords = map[string]bool{
	"abstract": true, "final": true, "global": true, "override": true,
	"private": true, "protected": true, "public": true, "static": true,
	"testmethod": true, "transient": true, "virtual": true,
	"webservice": true,
}

func (p *parser) parseCompilationUnit() *CompilationUnitContext {
	start := p.pos
	unit := &CompilationUnitContext{}
	if p.atWord("trigger") {
		unit.Trigger = p.parseTriggerUnit()
		unit.span = p.spanFrom(start)
		return unit
	}
	mods := p.parseModifiers()
	switch {
	case p.atWord("class"):
		unit.Class = p.parseClassDecl(mods, start)
	case p.atWord("interface"):
		unit.Interface = p.parseInterfaceDecl(mods, start)
	case p.atWord("enum"):
		unit.Enum = p.parseEnumDecl(mods, start)
	default:
		p.errf("expected class, interface, enum, or trigger, found %s", p.cur().Describe())
	}
	if p.cur().Kind != TokenEOF {
		p.errf("expected end of input, found %s", p.cur().Describe())
	}
	unit.span = p.spanFrom(start)
	return unit
}

// parseModifiers matches any run of modifiers: annotations, single-word
// keywords, and the two-word sharing forms.
func (p *parser) parseModifiers() []*ModifierContext {
	var mods []*ModifierContext
	for {
		start := p.pos
		switch {
		case p.atPunct("@"):
			ann := p.parseAnnotation()
			mods = append(mods, &ModifierContext{span: p.spanFrom(start), Annotation: ann})
		case p.atAnyWord("with", "without", "inherited") &&
			strings.EqualFold(p.peekTok(1).Text, "sharing") && p.peekTok(1).Kind == TokenIdent:
			first := p.advance()
			second := p.advance()
			mods = append(mods, &ModifierContext{
				span:    p.spanFrom(start),
				Keyword: first.Text + " " + second.Text,
			})
		case p.cur().Kind == TokenIdent && modifierWords[strings.ToLower(p.cur().Text)]:
			t := p.advance()
			mods = append(mods, &ModifierContext{span: p.spanFrom(start), Keyword: t.Text})
		default:
			return mods
		}
	}
}

func (p *parser) parseAnnotation() *AnnotationContext {
	start := p.pos
	p.expectPunct("@")
	ann := &AnnotationContext{Name: p.expectIdent()}
	if p.eatPunct("(") {
		// arguments are separated by commas or plain whitespace
		for !p.atPunct(")") {
			ann.Args = append(ann.Args, p.parseAnnotationArg())
			p.eatPunct(",")
		}
		p.expectPunct(")")
	}
	ann.span = p.spanFrom(start)
	return ann
}

func (p *parser) parseAnnotationArg() *AnnotationArgContext {
	start := p.pos
	arg := &AnnotationArgContext{}
	if p.cur().Kind == TokenIdent && p.peekTok(1).Kind == TokenPunct && p.peekTok(1).Text == "=" {
		arg.Name = p.expectIdent()
		p.expectPunct("=")
	}
	arg.Value = p.parseAnnotationValue()
	arg.span = p.spanFrom(start)
	return arg
}

func (p *parser) parseAnnotationValue() *AnnotationValueContext {
	start := p.pos
	v := &AnnotationValueContext{}
	switch {
	case p.atPunct("@"):
		v.Annotation = p.parseAnnotation()
	case p.atPunct("{"):
		p.advance()
		v.IsArray = true
		for !p.atPunct("}") {
			v.Array = append(v.Array, p.parseAnnotationValue())
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct("}")
	default:
		v.Expr = p.parseTernaryExpr()
	}
	v.span = p.spanFrom(start)
	return v
}

func (p *parser) parseClassDecl(mods []*ModifierContext, start int) *ClassDeclContext {
	p.expectWord("class")
	d := &ClassDeclContext{Modifiers: mods, Name: p.expectIdent()}
	if p.eatWord("extends") {
		d.SuperClass = p.parseTypeRef()
	}
	if p.eatWord("implements") {
		for {
			d.Interfaces = append(d.Interfaces, p.parseTypeRef())
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct("{")
	for !p.atPunct("}") {
		d.Body = append(d.Body, p.parseMember())
	}
	p.expectPunct("}")
	d.span = p.spanFrom(start)
	return d
}

func (p *parser) parseInterfaceDecl(mods []*ModifierContext, start int) *InterfaceDeclContext {
	p.expectWord("interface")
	d := &InterfaceDeclContext{Modifiers: mods, Name: p.expectIdent()}
	if p.eatWord("extends") {
		for {
			d.Extends = append(d.Extends, p.parseTypeRef())
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct("{")
	for !p.atPunct("}") {
		d.Methods = append(d.Methods, p.parseInterfaceMethod())
	}
	p.expectPunct("}")
	d.span = p.spanFrom(start)
	return d
}

func (p *parser) parseInterfaceMethod() *MethodDeclContext {
	start := p.pos
	m := &MethodDeclContext{}
	if p.atWord("void") {
		p.advance()
		m.IsVoid = true
	} else {
		m.ReturnType = p.parseTypeRef()
	}
	m.Name = p.expectIdent()
	m.Params = p.parseParams()
	p.expectPunct(";")
	m.span = p.spanFrom(start)
	return m
}

func (p *parser) parseEnumDecl(mods []*ModifierContext, start int) *EnumDeclContext {
	p.expectWord("enum")
	d := &EnumDeclContext{Modifiers: mods, Name: p.expectIdent()}
	p.expectPunct("{")
	for !p.atPunct("}") {
		d.Values = append(d.Values, p.expectIdent())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct("}")
	d.span = p.spanFrom(start)
	return d
}

func (p *parser) parseTriggerUnit() *TriggerUnitContext {
	start := p.pos
	p.expectWord("trigger")
	d := &TriggerUnitContext{Name: p.expectIdent()}
	p.expectWord("on")
	d.Target = p.expectIdent()
	p.expectPunct("(")
	for {
		d.Cases = append(d.Cases, p.parseTriggerCase())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	p.expectPunct("{")
	for !p.atPunct("}") {
		d.Statements = append(d.Statements, p.parseStatement())
	}
	p.expectPunct("}")
	d.span = p.spanFrom(start)
	return d
}

func (p *parser) parseTriggerCase() *TriggerCaseContext {
	start := p.pos
	c := &TriggerCaseContext{}
	switch {
	case p.atWord("before"):
		t := p.advance()
		c.Before = &t
	case p.atWord("after"):
		t := p.advance()
		c.After = &t
	default:
		p.errf("expected \"before\" or \"after\", found %s", p.cur().Describe())
	}
	if !p.atAnyWord("insert", "update", "delete", "undelete") {
		p.errf("expected trigger operation, found %s", p.cur().Describe())
	}
	c.Op = p.advance()
	c.span = p.spanFrom(start)
	return c
}

func (p *parser) parseMember() *MemberContext {
	start := p.pos
	m := &MemberContext{Modifiers: p.parseModifiers()}
	switch {
	case p.atPunct("{"):
		m.InitBlock = p.parseBlock()
	case p.atWord("class"):
		m.Class = p.parseClassDecl(nil, p.pos)
	case p.atWord("interface"):
		m.Interface = p.parseInterfaceDecl(nil, p.pos)
	case p.atWord("enum"):
		m.Enum = p.parseEnumDecl(nil, p.pos)
	case p.atWord("void"):
		mStart := p.pos
		p.advance()
		method := &MethodDeclContext{IsVoid: true, Name: p.expectIdent()}
		method.Params = p.parseParams()
		p.parseMethodTail(method)
		method.span = p.spanFrom(mStart)
		m.Method = method
	default:
		p.parseTypedMember(m)
	}
	m.span = p.spanFrom(start)
	return m
}

// parseTypedMember disambiguates the members that begin with a type:
// fields, methods, properties, and constructors (whose "type" is the bare
// class name followed directly by a parameter list).
func (p *parser) parseTypedMember(m *MemberContext) {
	start := p.pos
	typ := p.parseTypeRef()

	if p.atPunct("(") {
		// constructor: the parsed "type" was the constructor name
		if len(typ.Parts) != 1 || typ.Arrays != 0 || len(typ.Parts[0].Args) != 0 {
			p.errf("expected member name, found %s", p.cur().Describe())
		}
		method := &MethodDeclContext{Name: typ.Parts[0].Name}
		method.Params = p.parseParams()
		p.parseMethodTail(method)
		method.span = p.spanFrom(start)
		m.Method = method
		return
	}

	name := p.expectIdent()
	switch {
	case p.atPunct("("):
		method := &MethodDeclContext{ReturnType: typ, Name: name}
		method.Params = p.parseParams()
		p.parseMethodTail(method)
		method.span = p.spanFrom(start)
		m.Method = method
	case p.atPunct("{"):
		prop := &PropertyDeclContext{Type: typ, Name: name}
		p.expectPunct("{")
		for !p.atPunct("}") {
			prop.Accessors = append(prop.Accessors, p.parseAccessor())
		}
		p.expectPunct("}")
		prop.span = p.spanFrom(start)
		m.Property = prop
	default:
		field := &FieldDeclContext{Type: typ}
		field.Declarators = p.parseDeclarators(name)
		p.expectPunct(";")
		field.span = p.spanFrom(start)
		m.Field = field
	}
}

func (p *parser) parseMethodTail(m *MethodDeclContext) {
	if p.eatPunct(";") {
		return
	}
	m.Body = p.parseBlock()
}

// parseDeclarators matches `name [= init] (, name [= init])*`, with the
// first name already consumed.
func (p *parser) parseDeclarators(first *IdContext) []*VarDeclaratorContext {
	firstStart, _ := first.TokenSpan()
	out := []*VarDeclaratorContext{p.parseDeclaratorTail(first, firstStart)}
	for p.eatPunct(",") {
		start := p.pos
		out = append(out, p.parseDeclaratorTail(p.expectIdent(), start))
	}
	return out
}

func (p *parser) parseDeclaratorTail(name *IdContext, start int) *VarDeclaratorContext {
	d := &VarDeclaratorContext{Name: name}
	if p.eatPunct("=") {
		d.Init = p.parseExpr()
	}
	d.span = p.spanFrom(start)
	return d
}

func (p *parser) parseParams() []*ParamContext {
	p.expectPunct("(")
	var params []*ParamContext
	for !p.atPunct(")") {
		start := p.pos
		param := &ParamContext{Type: p.parseTypeRef(), Name: p.expectIdent()}
		param.span = p.spanFrom(start)
		params = append(params, param)
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	return params
}

func (p *parser) parseAccessor() *AccessorContext {
	start := p.pos
	a := &AccessorContext{Modifiers: p.parseModifiers()}
	switch {
	case p.atWord("get"):
		t := p.advance()
		a.Get = &t
	case p.atWord("set"):
		t := p.advance()
		a.Set = &t
	default:
		p.errf("expected \"get\" or \"set\", found %s", p.cur().Describe())
	}
	if !p.eatPunct(";") {
		a.Body = p.parseBlock()
	}
	a.span = p.spanFrom(start)
	return a
}
