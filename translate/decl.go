package translate

import (
	"strings"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
)

func (t *tr) typeDeclaration(ctx *parser.CompilationUnitContext) ast.TypeDeclaration {
	switch t.one(ctx, ctx.Class != nil, ctx.Interface != nil, ctx.Enum != nil, ctx.Trigger != nil) {
	case 0:
		return t.classDeclaration(ctx.Class)
	case 1:
		return t.interfaceDeclaration(ctx.Interface)
	case 2:
		return t.enumDeclaration(ctx.Enum)
	default:
		return t.triggerDeclaration(ctx.Trigger)
	}
}

// applyModifiers translates a modifier list and attaches it to a freshly
// built declaration. Modifier nodes are never shared, so a field group
// translates its modifiers once per declarator.
func (t *tr) applyModifiers(tree parser.ParseTree, d ast.Declaration, mods []*parser.ModifierContext) {
	if len(mods) == 0 {
		return
	}
	out := make([]ast.Modifier, len(mods))
	for i, m := range mods {
		out[i] = t.modifier(m)
	}
	if err := d.ApplyModifiers(out); err != nil {
		t.fail(tree, "%v", err)
	}
}

func (t *tr) modifier(ctx *parser.ModifierContext) ast.Modifier {
	if t.one(ctx, ctx.Keyword != "", ctx.Annotation != nil) == 1 {
		return t.annotation(ctx.Annotation)
	}
	kw, ok := ast.ParseKeyword(ctx.Keyword)
	if !ok {
		t.fail(ctx, "unknown modifier %q", ctx.Keyword)
	}
	return ast.NewKeywordModifier(t.c, t.loc(ctx), kw)
}

func (t *tr) annotation(ctx *parser.AnnotationContext) *ast.AnnotationModifier {
	var args []*ast.AnnotationArgument
	for _, a := range ctx.Args {
		var name *ast.Identifier
		if a.Name != nil {
			name = t.identifier(a.Name)
		}
		args = append(args, ast.NewAnnotationArgument(t.c, t.loc(a), name, t.annotationValue(a.Value)))
	}
	return ast.NewAnnotationModifier(t.c, t.loc(ctx), t.identifier(ctx.Name), args)
}

func (t *tr) annotationValue(ctx *parser.AnnotationValueContext) ast.AnnotationValue {
	switch t.one(ctx, ctx.Expr != nil, ctx.Annotation != nil, ctx.IsArray) {
	case 0:
		return ast.NewExpressionAnnotationValue(t.c, t.loc(ctx), t.expression(ctx.Expr))
	case 1:
		return ast.NewNestedAnnotationValue(t.c, t.loc(ctx), t.annotation(ctx.Annotation))
	default:
		var values []ast.AnnotationValue
		for _, v := range ctx.Array {
			values = append(values, t.annotationValue(v))
		}
		return ast.NewArrayAnnotationValue(t.c, t.loc(ctx), values)
	}
}

func (t *tr) classDeclaration(ctx *parser.ClassDeclContext) *ast.ClassDeclaration {
	var interfaces []ast.TypeRef
	for _, i := range ctx.Interfaces {
		interfaces = append(interfaces, t.typeRef(i))
	}
	var body []ast.Declaration
	for _, m := range ctx.Body {
		body = append(body, t.members(m)...)
	}
	d := ast.NewClassDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), t.typeRefPtr(ctx.SuperClass), interfaces, body)
	t.applyModifiers(ctx, d, ctx.Modifiers)
	return d
}

func (t *tr) interfaceDeclaration(ctx *parser.InterfaceDeclContext) *ast.InterfaceDeclaration {
	var extends []ast.TypeRef
	for _, e := range ctx.Extends {
		extends = append(extends, t.typeRef(e))
	}
	var body []ast.Declaration
	for _, m := range ctx.Methods {
		body = append(body, t.methodDeclaration(m, nil))
	}
	d := ast.NewInterfaceDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), extends, body)
	t.applyModifiers(ctx, d, ctx.Modifiers)
	return d
}

func (t *tr) enumDeclaration(ctx *parser.EnumDeclContext) *ast.EnumDeclaration {
	values := make([]*ast.Identifier, len(ctx.Values))
	for i, v := range ctx.Values {
		values[i] = t.identifier(v)
	}
	d := ast.NewEnumDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), values)
	t.applyModifiers(ctx, d, ctx.Modifiers)
	return d
}

var triggerOps = map[string]ast.TriggerOp{
	"insert":   ast.TriggerInsert,
	"update":   ast.TriggerUpdate,
	"delete":   ast.TriggerDelete,
	"undelete": ast.TriggerUndelete,
}

func (t *tr) triggerDeclaration(ctx *parser.TriggerUnitContext) *ast.TriggerDeclaration {
	cases := make([]ast.TriggerCase, len(ctx.Cases))
	for i, c := range ctx.Cases {
		tc := ast.TriggerCase{Time: ast.TriggerBefore}
		if t.one(c, c.Before != nil, c.After != nil) == 1 {
			tc.Time = ast.TriggerAfter
		}
		op, ok := triggerOps[strings.ToLower(c.Op.Text)]
		if !ok {
			t.fail(c, "unknown trigger operation %q", c.Op.Text)
		}
		tc.Op = op
		cases[i] = tc
	}
	stmts := make([]ast.Statement, len(ctx.Statements))
	for i, s := range ctx.Statements {
		stmts[i] = t.statement(s)
	}
	return ast.NewTriggerDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), t.identifier(ctx.Target), cases, stmts)
}

// members translates one class body member. A field declaration group
// yields one declaration per declarator; everything else yields one.
func (t *tr) members(ctx *parser.MemberContext) []ast.Declaration {
	switch t.one(ctx,
		ctx.Field != nil,
		ctx.Method != nil,
		ctx.Property != nil,
		ctx.Class != nil,
		ctx.Interface != nil,
		ctx.Enum != nil,
		ctx.InitBlock != nil,
	) {
	case 0:
		return t.fieldDeclarations(ctx.Field, ctx.Modifiers)
	case 1:
		return []ast.Declaration{t.methodDeclaration(ctx.Method, ctx.Modifiers)}
	case 2:
		return []ast.Declaration{t.propertyDeclaration(ctx.Property, ctx.Modifiers)}
	case 3:
		return []ast.Declaration{t.classDeclaration(withModifiers(ctx.Class, ctx.Modifiers))}
	case 4:
		return []ast.Declaration{t.interfaceDeclaration(withModifiersIface(ctx.Interface, ctx.Modifiers))}
	case 5:
		return []ast.Declaration{t.enumDeclaration(withModifiersEnum(ctx.Enum, ctx.Modifiers))}
	default:
		return []ast.Declaration{t.initializerMethod(ctx.InitBlock, ctx.Modifiers)}
	}
}

// Nested type declarations carry their modifiers on the enclosing member
// context; fold them in before translating.

func withModifiers(ctx *parser.ClassDeclContext, mods []*parser.ModifierContext) *parser.ClassDeclContext {
	c := *ctx
	c.Modifiers = mods
	return &c
}

func withModifiersIface(ctx *parser.InterfaceDeclContext, mods []*parser.ModifierContext) *parser.InterfaceDeclContext {
	c := *ctx
	c.Modifiers = mods
	return &c
}

func withModifiersEnum(ctx *parser.EnumDeclContext, mods []*parser.ModifierContext) *parser.EnumDeclContext {
	c := *ctx
	c.Modifiers = mods
	return &c
}

func (t *tr) fieldDeclarations(ctx *parser.FieldDeclContext, mods []*parser.ModifierContext) []ast.Declaration {
	typ := t.typeRef(ctx.Type)
	out := make([]ast.Declaration, len(ctx.Declarators))
	for i, dtor := range ctx.Declarators {
		var init ast.Expression
		if dtor.Init != nil {
			init = t.expression(dtor.Init)
		}
		d := ast.NewFieldDeclaration(t.c, t.loc(dtor), t.identifier(dtor.Name), typ, init)
		t.applyModifiers(ctx, d, mods)
		out[i] = d
	}
	return out
}

func (t *tr) methodDeclaration(ctx *parser.MethodDeclContext, mods []*parser.ModifierContext) *ast.MethodDeclaration {
	params := make([]*ast.ParameterDeclaration, len(ctx.Params))
	for i, p := range ctx.Params {
		params[i] = ast.NewParameterDeclaration(t.c, t.loc(p), t.identifier(p.Name), t.typeRef(p.Type))
	}
	var returnType *ast.TypeRef
	switch {
	case ctx.IsVoid:
		start, _ := ctx.TokenSpan()
		returnType = &ast.TypeRef{
			Parts: []ast.TypeRefPart{{Name: "void"}},
			Loc:   t.tokLoc(start),
		}
	case ctx.ReturnType != nil:
		returnType = t.typeRefPtr(ctx.ReturnType)
	}
	var body *ast.BlockStatement
	if ctx.Body != nil {
		body = t.block(ctx.Body, true)
	}
	d := ast.NewMethodDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), params, returnType, body)
	t.applyModifiers(ctx, d, mods)
	return d
}

// propertyDeclaration synthesizes a full method declaration per accessor.
// The getter takes no parameters; the setter takes a single parameter named
// value of the property's type. Both carry the reserved synthetic name and
// no return type.
func (t *tr) propertyDeclaration(ctx *parser.PropertyDeclContext, mods []*parser.ModifierContext) *ast.PropertyDeclaration {
	typ := t.typeRef(ctx.Type)
	var getter, setter *ast.MethodDeclaration
	for _, a := range ctx.Accessors {
		isSet := t.one(a, a.Get != nil, a.Set != nil) == 1
		loc := t.loc(a)
		var params []*ast.ParameterDeclaration
		if isSet {
			name := ast.NewIdentifier(t.c, loc, "value")
			params = []*ast.ParameterDeclaration{ast.NewParameterDeclaration(t.c, loc, name, typ)}
		}
		var body *ast.BlockStatement
		if a.Body != nil {
			body = t.block(a.Body, true)
		}
		m := ast.NewMethodDeclaration(t.c, loc, t.syntheticIdentifier(loc), params, nil, body)
		t.applyModifiers(a, m, a.Modifiers)
		if isSet {
			if setter != nil {
				t.fail(ctx, "duplicate setter")
			}
			setter = m
		} else {
			if getter != nil {
				t.fail(ctx, "duplicate getter")
			}
			getter = m
		}
	}
	d := ast.NewPropertyDeclaration(t.c, t.loc(ctx), t.identifier(ctx.Name), typ, getter, setter)
	t.applyModifiers(ctx, d, mods)
	return d
}

// initializerMethod wraps an anonymous initializer block in a synthetic
// method declaration: reserved name, no parameters, no return type.
func (t *tr) initializerMethod(ctx *parser.BlockContext, mods []*parser.ModifierContext) *ast.MethodDeclaration {
	loc := t.loc(ctx)
	body := t.block(ctx, true)
	d := ast.NewMethodDeclaration(t.c, loc, t.syntheticIdentifier(loc), nil, nil, body)
	t.applyModifiers(ctx, d, mods)
	return d
}
