package translate

import (
	"math"
	"strconv"
	"strings"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
)

func (t *tr) expression(ctx parser.ExprContext) ast.Expression {
	loc := t.loc(ctx)
	switch x := ctx.(type) {
	case *parser.LiteralExprContext:
		return ast.NewLiteralExpression(t.c, loc, t.literalValue(x))
	case *parser.VarExprContext:
		return ast.NewVariableExpression(t.c, loc, t.identifier(x.Name))
	case *parser.ThisExprContext:
		return ast.NewThisExpression(t.c, loc)
	case *parser.SuperExprContext:
		return ast.NewSuperExpression(t.c, loc)
	case *parser.FieldAccessExprContext:
		return ast.NewFieldAccessExpression(t.c, loc, t.expression(x.Receiver), t.identifier(x.Name))
	case *parser.CallExprContext:
		var receiver ast.Expression
		if x.Receiver != nil {
			receiver = t.expression(x.Receiver)
		}
		return ast.NewCallExpression(t.c, loc, receiver, t.identifier(x.Name), t.expressions(x.Args))
	case *parser.IndexExprContext:
		return ast.NewArrayAccessExpression(t.c, loc, t.expression(x.Receiver), t.expression(x.Index))
	case *parser.BinaryExprContext:
		op, ok := ast.BinaryOpFromSymbol(x.Op)
		if !ok {
			t.fail(x, "unknown binary operator %q", x.Op)
		}
		return ast.NewBinaryExpression(t.c, loc, op, t.expression(x.Left), t.expression(x.Right))
	case *parser.InstanceOfExprContext:
		typ := t.typeRef(x.Type)
		typeExpr := ast.NewTypeRefExpression(t.c, typ.Loc, typ)
		return ast.NewInstanceOfExpression(t.c, loc, t.expression(x.Operand), typeExpr)
	case *parser.UnaryExprContext:
		op, ok := ast.UnaryOpFromSymbol(x.Op, x.Prefix)
		if !ok {
			t.fail(x, "unknown unary operator %q", x.Op)
		}
		return ast.NewUnaryExpression(t.c, loc, op, t.expression(x.Operand))
	case *parser.AssignExprContext:
		op, ok := ast.AssignOpFromSymbol(x.Op)
		if !ok {
			t.fail(x, "unknown assignment operator %q", x.Op)
		}
		return ast.NewAssignExpression(t.c, loc, op, t.expression(x.Target), t.expression(x.Value))
	case *parser.TernaryExprContext:
		return ast.NewTernaryExpression(t.c, loc, t.expression(x.Cond), t.expression(x.Then), t.expression(x.Else))
	case *parser.CastExprContext:
		return ast.NewCastExpression(t.c, loc, t.typeRef(x.Type), t.expression(x.Operand))
	case *parser.NewExprContext:
		return ast.NewNewExpression(t.c, loc, t.initializer(x.Creator))
	case *parser.QueryExprContext:
		return ast.NewQueryExpression(t.c, loc, x.Sosl, x.Raw, t.expressions(x.Bindings))
	default:
		t.fail(ctx, "untranslatable expression")
		return nil
	}
}

func (t *tr) expressions(ctxs []parser.ExprContext) []ast.Expression {
	if len(ctxs) == 0 {
		return nil
	}
	out := make([]ast.Expression, len(ctxs))
	for i, c := range ctxs {
		out[i] = t.expression(c)
	}
	return out
}

func (t *tr) initializer(ctx *parser.CreatorContext) ast.Initializer {
	typ := t.typeRef(ctx.Type)
	switch t.one(ctx, ctx.Ctor != nil, ctx.List != nil, ctx.Map != nil, ctx.Array != nil) {
	case 0:
		return ast.NewConstructorInitializer(t.c, t.loc(ctx), typ, t.expressions(ctx.Ctor.Args))
	case 1:
		return ast.NewValuesInitializer(t.c, t.loc(ctx), typ, t.expressions(ctx.List.Values))
	case 2:
		keys := make([]ast.Expression, len(ctx.Map.Pairs))
		vals := make([]ast.Expression, len(ctx.Map.Pairs))
		for i, p := range ctx.Map.Pairs {
			keys[i] = t.expression(p.Key)
			vals[i] = t.expression(p.Value)
		}
		return ast.NewMapInitializer(t.c, t.loc(ctx), typ, keys, vals)
	default:
		return ast.NewSizedArrayInitializer(t.c, t.loc(ctx), typ, t.expression(ctx.Array.Size))
	}
}

// literalValue parses a literal token into its typed value. Integer
// literals must fit in 32 bits; long literals carry an l suffix and get the
// full 64-bit range.
func (t *tr) literalValue(ctx *parser.LiteralExprContext) ast.LiteralValue {
	tok := ctx.Tok
	switch tok.Kind {
	case parser.TokenIntLiteral:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil || v > math.MaxInt32 {
			t.fail(ctx, "integer literal %s out of range", tok.Text)
		}
		return ast.LiteralValue{Kind: ast.LiteralInteger, Int: int32(v)}
	case parser.TokenLongLiteral:
		v, err := strconv.ParseInt(strings.TrimRight(tok.Text, "lL"), 10, 64)
		if err != nil {
			t.fail(ctx, "long literal %s out of range", tok.Text)
		}
		return ast.LiteralValue{Kind: ast.LiteralLong, Long: v}
	case parser.TokenDoubleLiteral:
		v, err := strconv.ParseFloat(strings.TrimRight(tok.Text, "dD"), 64)
		if err != nil {
			t.fail(ctx, "malformed double literal %s", tok.Text)
		}
		return ast.LiteralValue{Kind: ast.LiteralDouble, Double: v}
	case parser.TokenStringLiteral:
		return ast.LiteralValue{Kind: ast.LiteralString, Str: unquote(tok.Text)}
	case parser.TokenIdent:
		switch strings.ToLower(tok.Text) {
		case "true":
			return ast.LiteralValue{Kind: ast.LiteralBoolean, Bool: true}
		case "false":
			return ast.LiteralValue{Kind: ast.LiteralBoolean, Bool: false}
		case "null":
			return ast.LiteralValue{Kind: ast.LiteralNull}
		}
	}
	t.fail(ctx, "malformed literal %s", tok.Describe())
	return ast.LiteralValue{}
}

// unquote strips the surrounding single quotes and resolves escapes. An
// unrecognized escape keeps its character as-is.
func unquote(raw string) string {
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' || i+1 == len(body) {
			sb.WriteByte(ch)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}
