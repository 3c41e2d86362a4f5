package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/apexcompile/apexcompile/ast"
)

// Option adjusts serialization.
type Option func(*options)

type options struct {
	omitLocations bool
	indent        string
}

// WithoutLocations drops every "loc" property from the output.
func WithoutLocations() Option {
	return func(o *options) { o.omitLocations = true }
}

// WithIndent pretty-prints the output using the given indent string.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// Marshal serializes the tree rooted at n.
func Marshal(n ast.Node, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &enc{omitLocations: o.omitLocations}
	obj, err := e.node(n)
	if err != nil {
		return nil, err
	}
	if o.indent != "" {
		return json.MarshalIndent(obj, "", o.indent)
	}
	return json.Marshal(obj)
}

type enc struct {
	omitLocations bool
}

// obj starts a node object with its discriminator and location.
func (e *enc) obj(n ast.Node) map[string]any {
	m := map[string]any{"@type": n.Kind()}
	if loc := n.Loc(); !e.omitLocations && !loc.IsUnknown() {
		m["loc"] = locArray(loc)
	}
	return m
}

func locArray(loc ast.Location) [4]int {
	return [4]int{loc.StartLine, loc.StartColumn, loc.EndLine, loc.EndColumn}
}

func (e *enc) node(n ast.Node) (map[string]any, error) {
	m := e.obj(n)
	switch x := n.(type) {
	case *ast.CompilationUnit:
		m["file"] = x.File()
		decl, err := e.node(x.TypeDeclaration())
		if err != nil {
			return nil, err
		}
		m["declaration"] = decl
	case *ast.Identifier:
		m["value"] = x.Value()

	case *ast.ClassDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		if sc := x.SuperClass(); sc != nil {
			m["superClass"] = e.typeRef(*sc)
		}
		if ifaces := x.Interfaces(); len(ifaces) > 0 {
			m["interfaces"] = e.typeRefs(ifaces)
		}
		body, err := encodeNodes(e, x.BodyDeclarations())
		if err != nil {
			return nil, err
		}
		m["body"] = body
	case *ast.InterfaceDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		if ext := x.Extends(); len(ext) > 0 {
			m["extends"] = e.typeRefs(ext)
		}
		body, err := encodeNodes(e, x.BodyDeclarations())
		if err != nil {
			return nil, err
		}
		m["body"] = body
	case *ast.EnumDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		values, err := encodeNodes(e, x.Values())
		if err != nil {
			return nil, err
		}
		m["values"] = values
	case *ast.TriggerDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		target, err := e.node(x.Target())
		if err != nil {
			return nil, err
		}
		m["target"] = target
		cases := make([]map[string]any, len(x.Cases()))
		for i, c := range x.Cases() {
			cases[i] = map[string]any{"time": c.Time.String(), "op": c.Op.String()}
		}
		m["cases"] = cases
		stmts, err := encodeNodes(e, x.Statements())
		if err != nil {
			return nil, err
		}
		m["statements"] = stmts
	case *ast.MethodDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		params, err := encodeNodes(e, x.Parameters())
		if err != nil {
			return nil, err
		}
		m["params"] = params
		if rt := x.ReturnType(); rt != nil {
			m["returnType"] = e.typeRef(*rt)
		}
		if body := x.Body(); body != nil {
			b, err := e.node(body)
			if err != nil {
				return nil, err
			}
			m["body"] = b
		}
	case *ast.ParameterDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		m["type"] = e.typeRef(x.Type())
	case *ast.FieldDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		m["type"] = e.typeRef(x.Type())
		if err := e.optNode(m, "init", x.Init()); err != nil {
			return nil, err
		}
	case *ast.PropertyDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		m["type"] = e.typeRef(x.Type())
		if err := e.optNode(m, "getter", x.Getter()); err != nil {
			return nil, err
		}
		if err := e.optNode(m, "setter", x.Setter()); err != nil {
			return nil, err
		}
	case *ast.LocalVariableDeclaration:
		if err := e.declCommon(m, x); err != nil {
			return nil, err
		}
		m["type"] = e.typeRef(x.Type())
		if err := e.optNode(m, "init", x.Init()); err != nil {
			return nil, err
		}

	case *ast.KeywordModifier:
		m["keyword"] = x.Keyword().String()
	case *ast.AnnotationModifier:
		name, err := e.node(x.Name())
		if err != nil {
			return nil, err
		}
		m["name"] = name
		if args := x.Args(); len(args) > 0 {
			a, err := encodeNodes(e, args)
			if err != nil {
				return nil, err
			}
			m["args"] = a
		}
	case *ast.AnnotationArgument:
		if err := e.optNode(m, "name", x.Name()); err != nil {
			return nil, err
		}
		value, err := e.node(x.Value())
		if err != nil {
			return nil, err
		}
		m["value"] = value
	case *ast.ExpressionAnnotationValue:
		if err := e.setNode(m, "expr", x.Expr()); err != nil {
			return nil, err
		}
	case *ast.NestedAnnotationValue:
		if err := e.setNode(m, "annotation", x.Annotation()); err != nil {
			return nil, err
		}
	case *ast.ArrayAnnotationValue:
		values, err := encodeNodes(e, x.Values())
		if err != nil {
			return nil, err
		}
		m["values"] = values

	case *ast.LiteralExpression:
		e.literal(m, x.Value())
	case *ast.BinaryExpression:
		m["op"] = x.Op().String()
		if err := e.setNode(m, "left", x.Left()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "right", x.Right()); err != nil {
			return nil, err
		}
	case *ast.UnaryExpression:
		m["op"] = x.Op().String()
		if x.Op().Postfix() {
			m["postfix"] = true
		}
		if err := e.setNode(m, "operand", x.Operand()); err != nil {
			return nil, err
		}
	case *ast.AssignExpression:
		m["op"] = x.Op().String()
		if err := e.setNode(m, "target", x.Target()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "value", x.Value()); err != nil {
			return nil, err
		}
	case *ast.CallExpression:
		if err := e.optNode(m, "receiver", x.Receiver()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "method", x.Method()); err != nil {
			return nil, err
		}
		args, err := encodeNodes(e, x.Args())
		if err != nil {
			return nil, err
		}
		m["args"] = args
	case *ast.FieldAccessExpression:
		if err := e.setNode(m, "receiver", x.Receiver()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "field", x.Field()); err != nil {
			return nil, err
		}
	case *ast.ArrayAccessExpression:
		if err := e.setNode(m, "array", x.Array()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "index", x.Index()); err != nil {
			return nil, err
		}
	case *ast.CastExpression:
		m["type"] = e.typeRef(x.Type())
		if err := e.setNode(m, "operand", x.Operand()); err != nil {
			return nil, err
		}
	case *ast.NewExpression:
		if err := e.setNode(m, "init", x.Init()); err != nil {
			return nil, err
		}
	case *ast.TernaryExpression:
		if err := e.setNode(m, "cond", x.Cond()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "then", x.Then()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "else", x.Else()); err != nil {
			return nil, err
		}
	case *ast.ThisExpression, *ast.SuperExpression, *ast.BreakStatement, *ast.ContinueStatement:
		// discriminator and location only
	case *ast.VariableExpression:
		if err := e.setNode(m, "name", x.Name()); err != nil {
			return nil, err
		}
	case *ast.TypeRefExpression:
		m["type"] = e.typeRef(x.Type())
	case *ast.InstanceOfExpression:
		if err := e.setNode(m, "operand", x.Operand()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "typeRef", x.TypeRef()); err != nil {
			return nil, err
		}
	case *ast.QueryExpression:
		m["query"] = x.Query()
		if bindings := x.Bindings(); len(bindings) > 0 {
			b, err := encodeNodes(e, bindings)
			if err != nil {
				return nil, err
			}
			m["bindings"] = b
		}

	case *ast.BlockStatement:
		stmts, err := encodeNodes(e, x.Statements())
		if err != nil {
			return nil, err
		}
		m["statements"] = stmts
		if !x.Scoped() {
			m["scoped"] = false
		}
	case *ast.ExpressionStatement:
		if err := e.setNode(m, "expr", x.Expr()); err != nil {
			return nil, err
		}
	case *ast.IfStatement:
		if err := e.setNode(m, "cond", x.Cond()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "then", x.Then()); err != nil {
			return nil, err
		}
		if err := e.optNode(m, "else", x.Else()); err != nil {
			return nil, err
		}
	case *ast.SwitchStatement:
		if err := e.setNode(m, "value", x.Value()); err != nil {
			return nil, err
		}
		whens, err := encodeNodes(e, x.Whens())
		if err != nil {
			return nil, err
		}
		m["whens"] = whens
	case *ast.WhenValueClause:
		values, err := encodeNodes(e, x.Values())
		if err != nil {
			return nil, err
		}
		m["values"] = values
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.WhenTypeClause:
		if err := e.setNode(m, "variable", x.Variable()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.WhenElseClause:
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.ForStatement:
		if err := e.optNode(m, "init", x.Init()); err != nil {
			return nil, err
		}
		if err := e.optNode(m, "cond", x.Cond()); err != nil {
			return nil, err
		}
		if updates := x.Updates(); len(updates) > 0 {
			u, err := encodeNodes(e, updates)
			if err != nil {
				return nil, err
			}
			m["updates"] = u
		}
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.EnhancedForStatement:
		if err := e.setNode(m, "variable", x.Variable()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "iterable", x.Iterable()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.WhileStatement:
		if err := e.setNode(m, "cond", x.Cond()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.DoWhileStatement:
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "cond", x.Cond()); err != nil {
			return nil, err
		}
	case *ast.TryStatement:
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
		catches, err := encodeNodes(e, x.Catches())
		if err != nil {
			return nil, err
		}
		m["catches"] = catches
		if err := e.optNode(m, "finally", x.Finally()); err != nil {
			return nil, err
		}
	case *ast.CatchClause:
		if err := e.setNode(m, "param", x.Param()); err != nil {
			return nil, err
		}
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.ReturnStatement:
		if err := e.optNode(m, "expr", x.Expr()); err != nil {
			return nil, err
		}
	case *ast.ThrowStatement:
		if err := e.setNode(m, "expr", x.Expr()); err != nil {
			return nil, err
		}
	case *ast.RunAsStatement:
		args, err := encodeNodes(e, x.Args())
		if err != nil {
			return nil, err
		}
		m["args"] = args
		if err := e.setNode(m, "body", x.Body()); err != nil {
			return nil, err
		}
	case *ast.VariableDeclarationStatement:
		m["type"] = e.typeRef(x.Type())
		decls, err := encodeNodes(e, x.Declarations())
		if err != nil {
			return nil, err
		}
		m["declarations"] = decls
	case *ast.DmlStatement:
		m["op"] = x.Op().String()
		switch x.Access() {
		case ast.DmlUserMode:
			m["access"] = "user"
		case ast.DmlSystemMode:
			m["access"] = "system"
		}
		args, err := encodeNodes(e, x.Args())
		if err != nil {
			return nil, err
		}
		m["args"] = args
		if err := e.optNode(m, "upsertField", x.UpsertField()); err != nil {
			return nil, err
		}

	case *ast.ConstructorInitializer:
		m["type"] = e.typeRef(x.Type())
		args, err := encodeNodes(e, x.Args())
		if err != nil {
			return nil, err
		}
		m["args"] = args
	case *ast.ValuesInitializer:
		m["type"] = e.typeRef(x.Type())
		values, err := encodeNodes(e, x.Values())
		if err != nil {
			return nil, err
		}
		m["values"] = values
	case *ast.MapInitializer:
		m["type"] = e.typeRef(x.Type())
		keys, err := encodeNodes(e, x.Keys())
		if err != nil {
			return nil, err
		}
		m["keys"] = keys
		values, err := encodeNodes(e, x.Values())
		if err != nil {
			return nil, err
		}
		m["values"] = values
	case *ast.SizedArrayInitializer:
		m["type"] = e.typeRef(x.Type())
		if err := e.setNode(m, "size", x.Size()); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("astjson: cannot serialize %T", n)
	}
	return m, nil
}

// declCommon adds the modifiers and name shared by every declaration.
func (e *enc) declCommon(m map[string]any, d ast.Declaration) error {
	name, err := e.node(d.Name())
	if err != nil {
		return err
	}
	m["name"] = name
	if mods := d.Modifiers(); len(mods) > 0 {
		out, err := encodeNodes(e, mods)
		if err != nil {
			return err
		}
		m["modifiers"] = out
	}
	return nil
}

func (e *enc) setNode(m map[string]any, key string, n ast.Node) error {
	obj, err := e.node(n)
	if err != nil {
		return err
	}
	m[key] = obj
	return nil
}

// optNode sets key only when n is present. n is typed by the caller, so a
// typed nil pointer arrives as a non-nil interface holding nil.
func (e *enc) optNode(m map[string]any, key string, n ast.Node) error {
	if n == nil || isNilNode(n) {
		return nil
	}
	return e.setNode(m, key, n)
}

func isNilNode(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.Identifier:
		return x == nil
	case *ast.MethodDeclaration:
		return x == nil
	case *ast.BlockStatement:
		return x == nil
	}
	return false
}

// encodeNodes serializes a homogeneous child list. An empty list encodes
// as [] rather than null.
func encodeNodes[T ast.Node](e *enc, ns []T) ([]map[string]any, error) {
	out := make([]map[string]any, len(ns))
	for i, n := range ns {
		m, err := e.node(n)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

func (e *enc) literal(m map[string]any, v ast.LiteralValue) {
	m["literalKind"] = v.Kind.String()
	switch v.Kind {
	case ast.LiteralInteger:
		m["value"] = v.Int
	case ast.LiteralLong:
		m["value"] = v.Long
	case ast.LiteralDouble:
		m["value"] = v.Double
	case ast.LiteralBoolean:
		m["value"] = v.Bool
	case ast.LiteralString:
		m["value"] = v.Str
	}
}

func (e *enc) typeRef(t ast.TypeRef) map[string]any {
	parts := make([]map[string]any, len(t.Parts))
	for i, p := range t.Parts {
		part := map[string]any{"name": p.Name}
		if len(p.Args) > 0 {
			args := make([]map[string]any, len(p.Args))
			for j, a := range p.Args {
				args[j] = e.typeRef(a)
			}
			part["args"] = args
		}
		parts[i] = part
	}
	m := map[string]any{"parts": parts}
	if t.Arrays > 0 {
		m["arrays"] = t.Arrays
	}
	if !e.omitLocations && !t.Loc.IsUnknown() {
		m["loc"] = locArray(t.Loc)
	}
	return m
}

func (e *enc) typeRefs(ts []ast.TypeRef) []map[string]any {
	out := make([]map[string]any, len(ts))
	for i, t := range ts {
		out[i] = e.typeRef(t)
	}
	return out
}
