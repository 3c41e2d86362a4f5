package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/apexcompile/apexcompile/ast"
)

// Unmarshal rebuilds a serialized tree. The returned root is linked, so
// parent references are valid.
func Unmarshal(data []byte) (u *ast.CompilationUnit, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		de, ok := r.(decodeError)
		if !ok {
			panic(r)
		}
		u, err = nil, de.err
	}()

	d := &dec{}
	n := d.node(data)
	root, ok := n.(*ast.CompilationUnit)
	if !ok {
		d.failf("root is %s, want %s", n.Kind(), ast.KindCompilationUnit)
	}
	if lerr := ast.Link(root); lerr != nil {
		d.failf("%v", lerr)
	}
	return root, nil
}

type decodeError struct{ err error }

type dec struct{}

func (d *dec) failf(format string, args ...any) {
	panic(decodeError{fmt.Errorf("astjson: %s", fmt.Sprintf(format, args...))})
}

type obj map[string]json.RawMessage

func (d *dec) obj(raw json.RawMessage) obj {
	var o obj
	if err := json.Unmarshal(raw, &o); err != nil {
		d.failf("%v", err)
	}
	return o
}

func (d *dec) kind(o obj) ast.Kind {
	raw, ok := o["@type"]
	if !ok {
		d.failf("object has no @type")
	}
	var k string
	if err := json.Unmarshal(raw, &k); err != nil {
		d.failf("%v", err)
	}
	return ast.Kind(k)
}

func (d *dec) str(o obj, key string) string {
	raw, ok := o[key]
	if !ok {
		d.failf("missing %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.failf("%q: %v", key, err)
	}
	return s
}

func (d *dec) optStr(o obj, key string) string {
	if _, ok := o[key]; !ok {
		return ""
	}
	return d.str(o, key)
}

func (d *dec) boolAt(o obj, key string, def bool) bool {
	raw, ok := o[key]
	if !ok {
		return def
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		d.failf("%q: %v", key, err)
	}
	return b
}

func (d *dec) intAt(o obj, key string, def int) int {
	raw, ok := o[key]
	if !ok {
		return def
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		d.failf("%q: %v", key, err)
	}
	return n
}

func (d *dec) list(o obj, key string) []json.RawMessage {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.failf("%q: %v", key, err)
	}
	return items
}

func (d *dec) locOf(o obj) ast.Location {
	raw, ok := o["loc"]
	if !ok {
		return ast.UnknownLoc
	}
	var a [4]int
	if err := json.Unmarshal(raw, &a); err != nil {
		d.failf("loc: %v", err)
	}
	return ast.Location{StartLine: a[0], StartColumn: a[1], EndLine: a[2], EndColumn: a[3]}
}

func (d *dec) typeRef(raw json.RawMessage) ast.TypeRef {
	o := d.obj(raw)
	var parts []ast.TypeRefPart
	for _, p := range d.list(o, "parts") {
		po := d.obj(p)
		part := ast.TypeRefPart{Name: d.str(po, "name")}
		for _, a := range d.list(po, "args") {
			part.Args = append(part.Args, d.typeRef(a))
		}
		parts = append(parts, part)
	}
	return ast.TypeRef{Parts: parts, Arrays: d.intAt(o, "arrays", 0), Loc: d.locOf(o)}
}

func (d *dec) typeRefAt(o obj, key string) ast.TypeRef {
	raw, ok := o[key]
	if !ok {
		d.failf("missing %q", key)
	}
	return d.typeRef(raw)
}

func (d *dec) typeRefPtrAt(o obj, key string) *ast.TypeRef {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	t := d.typeRef(raw)
	return &t
}

func (d *dec) typeRefsAt(o obj, key string) []ast.TypeRef {
	var out []ast.TypeRef
	for _, raw := range d.list(o, key) {
		out = append(out, d.typeRef(raw))
	}
	return out
}

// typed decode wrappers

func decodeAs[T ast.Node](d *dec, raw json.RawMessage) T {
	n := d.node(raw)
	t, ok := n.(T)
	if !ok {
		d.failf("unexpected %s node", n.Kind())
	}
	return t
}

func decodeAt[T ast.Node](d *dec, o obj, key string) T {
	raw, ok := o[key]
	if !ok {
		d.failf("missing %q", key)
	}
	return decodeAs[T](d, raw)
}

func decodeOptAt[T ast.Node](d *dec, o obj, key string) T {
	var zero T
	raw, ok := o[key]
	if !ok {
		return zero
	}
	return decodeAs[T](d, raw)
}

func decodeListAt[T ast.Node](d *dec, o obj, key string) []T {
	var out []T
	for _, raw := range d.list(o, key) {
		out = append(out, decodeAs[T](d, raw))
	}
	return out
}

// applyModifiers decodes the optional modifier list onto a rebuilt
// declaration.
func (d *dec) applyModifiers(decl ast.Declaration, o obj) {
	mods := decodeListAt[ast.Modifier](d, o, "modifiers")
	if len(mods) == 0 {
		return
	}
	if err := decl.ApplyModifiers(mods); err != nil {
		d.failf("%v", err)
	}
}

var triggerTimes = map[string]ast.TriggerTime{
	"before": ast.TriggerBefore,
	"after":  ast.TriggerAfter,
}

var triggerOps = map[string]ast.TriggerOp{
	"insert":   ast.TriggerInsert,
	"update":   ast.TriggerUpdate,
	"delete":   ast.TriggerDelete,
	"undelete": ast.TriggerUndelete,
}

var dmlOps = map[string]ast.DmlOp{
	"insert":   ast.DmlInsert,
	"update":   ast.DmlUpdate,
	"delete":   ast.DmlDelete,
	"undelete": ast.DmlUndelete,
	"upsert":   ast.DmlUpsert,
	"merge":    ast.DmlMerge,
}

func (d *dec) node(raw json.RawMessage) ast.Node {
	o := d.obj(raw)
	loc := d.locOf(o)
	switch kind := d.kind(o); kind {
	case ast.KindCompilationUnit:
		decl := decodeAt[ast.TypeDeclaration](d, o, "declaration")
		return ast.NewCompilationUnit(nil, loc, d.str(o, "file"), decl)
	case ast.KindIdentifier:
		return ast.NewIdentifier(nil, loc, d.str(o, "value"))

	case ast.KindClassDeclaration:
		decl := ast.NewClassDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefPtrAt(o, "superClass"),
			d.typeRefsAt(o, "interfaces"),
			decodeListAt[ast.Declaration](d, o, "body"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindInterfaceDeclaration:
		decl := ast.NewInterfaceDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefsAt(o, "extends"),
			decodeListAt[ast.Declaration](d, o, "body"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindEnumDeclaration:
		decl := ast.NewEnumDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			decodeListAt[*ast.Identifier](d, o, "values"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindTriggerDeclaration:
		var cases []ast.TriggerCase
		for _, raw := range d.list(o, "cases") {
			co := d.obj(raw)
			tm, ok := triggerTimes[d.str(co, "time")]
			if !ok {
				d.failf("unknown trigger time %q", d.str(co, "time"))
			}
			op, ok := triggerOps[d.str(co, "op")]
			if !ok {
				d.failf("unknown trigger operation %q", d.str(co, "op"))
			}
			cases = append(cases, ast.TriggerCase{Time: tm, Op: op})
		}
		decl := ast.NewTriggerDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			decodeAt[*ast.Identifier](d, o, "target"),
			cases,
			decodeListAt[ast.Statement](d, o, "statements"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindMethodDeclaration:
		decl := ast.NewMethodDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			decodeListAt[*ast.ParameterDeclaration](d, o, "params"),
			d.typeRefPtrAt(o, "returnType"),
			decodeOptAt[*ast.BlockStatement](d, o, "body"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindParameterDeclaration:
		decl := ast.NewParameterDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefAt(o, "type"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindFieldDeclaration:
		decl := ast.NewFieldDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefAt(o, "type"),
			decodeOptAt[ast.Expression](d, o, "init"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindPropertyDeclaration:
		decl := ast.NewPropertyDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefAt(o, "type"),
			decodeOptAt[*ast.MethodDeclaration](d, o, "getter"),
			decodeOptAt[*ast.MethodDeclaration](d, o, "setter"))
		d.applyModifiers(decl, o)
		return decl
	case ast.KindLocalVariableDeclaration:
		decl := ast.NewLocalVariableDeclaration(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			d.typeRefAt(o, "type"),
			decodeOptAt[ast.Expression](d, o, "init"))
		d.applyModifiers(decl, o)
		return decl

	case ast.KindKeywordModifier:
		kw, ok := ast.ParseKeyword(d.str(o, "keyword"))
		if !ok {
			d.failf("unknown modifier keyword %q", d.str(o, "keyword"))
		}
		return ast.NewKeywordModifier(nil, loc, kw)
	case ast.KindAnnotationModifier:
		return ast.NewAnnotationModifier(nil, loc,
			decodeAt[*ast.Identifier](d, o, "name"),
			decodeListAt[*ast.AnnotationArgument](d, o, "args"))
	case ast.KindAnnotationArgument:
		return ast.NewAnnotationArgument(nil, loc,
			decodeOptAt[*ast.Identifier](d, o, "name"),
			decodeAt[ast.AnnotationValue](d, o, "value"))
	case ast.KindExpressionAnnotationValue:
		return ast.NewExpressionAnnotationValue(nil, loc, decodeAt[ast.Expression](d, o, "expr"))
	case ast.KindNestedAnnotationValue:
		return ast.NewNestedAnnotationValue(nil, loc, decodeAt[*ast.AnnotationModifier](d, o, "annotation"))
	case ast.KindArrayAnnotationValue:
		return ast.NewArrayAnnotationValue(nil, loc, decodeListAt[ast.AnnotationValue](d, o, "values"))

	case ast.KindLiteralExpression:
		return ast.NewLiteralExpression(nil, loc, d.literal(o))
	case ast.KindBinaryExpression:
		op, ok := ast.BinaryOpFromSymbol(d.str(o, "op"))
		if !ok {
			d.failf("unknown binary operator %q", d.str(o, "op"))
		}
		return ast.NewBinaryExpression(nil, loc, op,
			decodeAt[ast.Expression](d, o, "left"),
			decodeAt[ast.Expression](d, o, "right"))
	case ast.KindUnaryExpression:
		sym := d.str(o, "op")
		op, ok := ast.UnaryOpFromSymbol(sym, !d.boolAt(o, "postfix", false))
		if !ok {
			d.failf("unknown unary operator %q", sym)
		}
		return ast.NewUnaryExpression(nil, loc, op, decodeAt[ast.Expression](d, o, "operand"))
	case ast.KindAssignExpression:
		op, ok := ast.AssignOpFromSymbol(d.str(o, "op"))
		if !ok {
			d.failf("unknown assignment operator %q", d.str(o, "op"))
		}
		return ast.NewAssignExpression(nil, loc, op,
			decodeAt[ast.Expression](d, o, "target"),
			decodeAt[ast.Expression](d, o, "value"))
	case ast.KindCallExpression:
		return ast.NewCallExpression(nil, loc,
			decodeOptAt[ast.Expression](d, o, "receiver"),
			decodeAt[*ast.Identifier](d, o, "method"),
			decodeListAt[ast.Expression](d, o, "args"))
	case ast.KindFieldAccessExpression:
		return ast.NewFieldAccessExpression(nil, loc,
			decodeAt[ast.Expression](d, o, "receiver"),
			decodeAt[*ast.Identifier](d, o, "field"))
	case ast.KindArrayAccessExpression:
		return ast.NewArrayAccessExpression(nil, loc,
			decodeAt[ast.Expression](d, o, "array"),
			decodeAt[ast.Expression](d, o, "index"))
	case ast.KindCastExpression:
		return ast.NewCastExpression(nil, loc,
			d.typeRefAt(o, "type"),
			decodeAt[ast.Expression](d, o, "operand"))
	case ast.KindNewExpression:
		return ast.NewNewExpression(nil, loc, decodeAt[ast.Initializer](d, o, "init"))
	case ast.KindTernaryExpression:
		return ast.NewTernaryExpression(nil, loc,
			decodeAt[ast.Expression](d, o, "cond"),
			decodeAt[ast.Expression](d, o, "then"),
			decodeAt[ast.Expression](d, o, "else"))
	case ast.KindThisExpression:
		return ast.NewThisExpression(nil, loc)
	case ast.KindSuperExpression:
		return ast.NewSuperExpression(nil, loc)
	case ast.KindVariableExpression:
		return ast.NewVariableExpression(nil, loc, decodeAt[*ast.Identifier](d, o, "name"))
	case ast.KindTypeRefExpression:
		return ast.NewTypeRefExpression(nil, loc, d.typeRefAt(o, "type"))
	case ast.KindInstanceOfExpression:
		return ast.NewInstanceOfExpression(nil, loc,
			decodeAt[ast.Expression](d, o, "operand"),
			decodeAt[*ast.TypeRefExpression](d, o, "typeRef"))
	case ast.KindSoqlExpression, ast.KindSoslExpression:
		return ast.NewQueryExpression(nil, loc, kind == ast.KindSoslExpression,
			d.str(o, "query"),
			decodeListAt[ast.Expression](d, o, "bindings"))

	case ast.KindBlockStatement:
		return ast.NewBlockStatement(nil, loc,
			decodeListAt[ast.Statement](d, o, "statements"),
			d.boolAt(o, "scoped", true))
	case ast.KindExpressionStatement:
		return ast.NewExpressionStatement(nil, loc, decodeAt[ast.Expression](d, o, "expr"))
	case ast.KindIfStatement:
		return ast.NewIfStatement(nil, loc,
			decodeAt[ast.Expression](d, o, "cond"),
			decodeAt[ast.Statement](d, o, "then"),
			decodeOptAt[ast.Statement](d, o, "else"))
	case ast.KindSwitchStatement:
		return ast.NewSwitchStatement(nil, loc,
			decodeAt[ast.Expression](d, o, "value"),
			decodeListAt[ast.WhenClause](d, o, "whens"))
	case ast.KindWhenValueClause:
		return ast.NewWhenValueClause(nil, loc,
			decodeListAt[ast.Expression](d, o, "values"),
			decodeAt[*ast.BlockStatement](d, o, "body"))
	case ast.KindWhenTypeClause:
		return ast.NewWhenTypeClause(nil, loc,
			decodeAt[*ast.LocalVariableDeclaration](d, o, "variable"),
			decodeAt[*ast.BlockStatement](d, o, "body"))
	case ast.KindWhenElseClause:
		return ast.NewWhenElseClause(nil, loc, decodeAt[*ast.BlockStatement](d, o, "body"))
	case ast.KindForStatement:
		return ast.NewForStatement(nil, loc,
			decodeOptAt[ast.Statement](d, o, "init"),
			decodeOptAt[ast.Expression](d, o, "cond"),
			decodeListAt[ast.Expression](d, o, "updates"),
			decodeAt[ast.Statement](d, o, "body"))
	case ast.KindEnhancedForStatement:
		return ast.NewEnhancedForStatement(nil, loc,
			decodeAt[*ast.LocalVariableDeclaration](d, o, "variable"),
			decodeAt[ast.Expression](d, o, "iterable"),
			decodeAt[ast.Statement](d, o, "body"))
	case ast.KindWhileStatement:
		return ast.NewWhileStatement(nil, loc,
			decodeAt[ast.Expression](d, o, "cond"),
			decodeAt[ast.Statement](d, o, "body"))
	case ast.KindDoWhileStatement:
		return ast.NewDoWhileStatement(nil, loc,
			decodeAt[ast.Statement](d, o, "body"),
			decodeAt[ast.Expression](d, o, "cond"))
	case ast.KindTryStatement:
		return ast.NewTryStatement(nil, loc,
			decodeAt[*ast.BlockStatement](d, o, "body"),
			decodeListAt[*ast.CatchClause](d, o, "catches"),
			decodeOptAt[*ast.BlockStatement](d, o, "finally"))
	case ast.KindCatchClause:
		return ast.NewCatchClause(nil, loc,
			decodeAt[*ast.ParameterDeclaration](d, o, "param"),
			decodeAt[*ast.BlockStatement](d, o, "body"))
	case ast.KindReturnStatement:
		return ast.NewReturnStatement(nil, loc, decodeOptAt[ast.Expression](d, o, "expr"))
	case ast.KindThrowStatement:
		return ast.NewThrowStatement(nil, loc, decodeAt[ast.Expression](d, o, "expr"))
	case ast.KindBreakStatement:
		return ast.NewBreakStatement(nil, loc)
	case ast.KindContinueStatement:
		return ast.NewContinueStatement(nil, loc)
	case ast.KindRunAsStatement:
		return ast.NewRunAsStatement(nil, loc,
			decodeListAt[ast.Expression](d, o, "args"),
			decodeAt[*ast.BlockStatement](d, o, "body"))
	case ast.KindVariableDeclarationStatement:
		return ast.NewVariableDeclarationStatement(nil, loc,
			d.typeRefAt(o, "type"),
			decodeListAt[*ast.LocalVariableDeclaration](d, o, "declarations"))
	case ast.KindDmlStatement:
		op, ok := dmlOps[d.str(o, "op")]
		if !ok {
			d.failf("unknown DML operation %q", d.str(o, "op"))
		}
		access := ast.DmlDefault
		switch d.optStr(o, "access") {
		case "":
		case "user":
			access = ast.DmlUserMode
		case "system":
			access = ast.DmlSystemMode
		default:
			d.failf("unknown DML access %q", d.optStr(o, "access"))
		}
		return ast.NewDmlStatement(nil, loc, op, access,
			decodeListAt[ast.Expression](d, o, "args"),
			decodeOptAt[*ast.Identifier](d, o, "upsertField"))

	case ast.KindConstructorInitializer:
		return ast.NewConstructorInitializer(nil, loc,
			d.typeRefAt(o, "type"),
			decodeListAt[ast.Expression](d, o, "args"))
	case ast.KindValuesInitializer:
		return ast.NewValuesInitializer(nil, loc,
			d.typeRefAt(o, "type"),
			decodeListAt[ast.Expression](d, o, "values"))
	case ast.KindMapInitializer:
		return ast.NewMapInitializer(nil, loc,
			d.typeRefAt(o, "type"),
			decodeListAt[ast.Expression](d, o, "keys"),
			decodeListAt[ast.Expression](d, o, "values"))
	case ast.KindSizedArrayInitializer:
		return ast.NewSizedArrayInitializer(nil, loc,
			d.typeRefAt(o, "type"),
			decodeAt[ast.Expression](d, o, "size"))

	default:
		d.failf("unknown node type %q", kind)
		return nil
	}
}

func (d *dec) literal(o obj) ast.LiteralValue {
	switch kind := d.str(o, "literalKind"); kind {
	case "integer":
		var v int32
		d.valueInto(o, &v)
		return ast.LiteralValue{Kind: ast.LiteralInteger, Int: v}
	case "long":
		var v int64
		d.valueInto(o, &v)
		return ast.LiteralValue{Kind: ast.LiteralLong, Long: v}
	case "double":
		var v float64
		d.valueInto(o, &v)
		return ast.LiteralValue{Kind: ast.LiteralDouble, Double: v}
	case "boolean":
		var v bool
		d.valueInto(o, &v)
		return ast.LiteralValue{Kind: ast.LiteralBoolean, Bool: v}
	case "string":
		var v string
		d.valueInto(o, &v)
		return ast.LiteralValue{Kind: ast.LiteralString, Str: v}
	case "null":
		return ast.LiteralValue{Kind: ast.LiteralNull}
	default:
		d.failf("unknown literal kind %q", kind)
		return ast.LiteralValue{}
	}
}

func (d *dec) valueInto(o obj, dst any) {
	raw, ok := o["value"]
	if !ok {
		d.failf("literal has no value")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.failf("value: %v", err)
	}
}
