package translate

import (
	"strings"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
)

func (t *tr) block(ctx *parser.BlockContext, scoped bool) *ast.BlockStatement {
	stmts := make([]ast.Statement, len(ctx.Statements))
	for i, s := range ctx.Statements {
		stmts[i] = t.statement(s)
	}
	return ast.NewBlockStatement(t.c, t.loc(ctx), stmts, scoped)
}

func (t *tr) statement(ctx *parser.StmtContext) ast.Statement {
	switch t.one(ctx,
		ctx.Block != nil,
		ctx.If != nil,
		ctx.Switch != nil,
		ctx.For != nil,
		ctx.While != nil,
		ctx.DoWhile != nil,
		ctx.Try != nil,
		ctx.Return != nil,
		ctx.Throw != nil,
		ctx.Break != nil,
		ctx.Continue != nil,
		ctx.RunAs != nil,
		ctx.VarDecl != nil,
		ctx.Dml != nil,
		ctx.Expr != nil,
	) {
	case 0:
		return t.block(ctx.Block, true)
	case 1:
		return t.ifStatement(ctx.If)
	case 2:
		return t.switchStatement(ctx.Switch)
	case 3:
		return t.forStatement(ctx.For)
	case 4:
		w := ctx.While
		return ast.NewWhileStatement(t.c, t.loc(w), t.expression(w.Cond), t.statement(w.Body))
	case 5:
		d := ctx.DoWhile
		return ast.NewDoWhileStatement(t.c, t.loc(d), t.statement(d.Body), t.expression(d.Cond))
	case 6:
		return t.tryStatement(ctx.Try)
	case 7:
		r := ctx.Return
		var expr ast.Expression
		if r.Expr != nil {
			expr = t.expression(r.Expr)
		}
		return ast.NewReturnStatement(t.c, t.loc(r), expr)
	case 8:
		return ast.NewThrowStatement(t.c, t.loc(ctx.Throw), t.expression(ctx.Throw.Expr))
	case 9:
		return ast.NewBreakStatement(t.c, t.loc(ctx.Break))
	case 10:
		return ast.NewContinueStatement(t.c, t.loc(ctx.Continue))
	case 11:
		return t.runAsStatement(ctx.RunAs)
	case 12:
		return t.variableDeclarationStatement(ctx.VarDecl)
	case 13:
		return t.dmlStatement(ctx.Dml)
	default:
		return ast.NewExpressionStatement(t.c, t.loc(ctx), t.expression(ctx.Expr))
	}
}

func (t *tr) ifStatement(ctx *parser.IfContext) *ast.IfStatement {
	var els ast.Statement
	if ctx.Else != nil {
		els = t.statement(ctx.Else)
	}
	return ast.NewIfStatement(t.c, t.loc(ctx), t.expression(ctx.Cond), t.statement(ctx.Then), els)
}

func (t *tr) switchStatement(ctx *parser.SwitchContext) *ast.SwitchStatement {
	whens := make([]ast.WhenClause, len(ctx.Whens))
	for i, w := range ctx.Whens {
		whens[i] = t.whenClause(w)
	}
	return ast.NewSwitchStatement(t.c, t.loc(ctx), t.expression(ctx.Value), whens)
}

func (t *tr) whenClause(ctx *parser.WhenContext) ast.WhenClause {
	body := t.block(ctx.Body, true)
	switch t.one(ctx, len(ctx.Values) > 0, ctx.Type != nil, ctx.Else != nil) {
	case 0:
		values := make([]ast.Expression, len(ctx.Values))
		for i, v := range ctx.Values {
			values[i] = t.expression(v)
		}
		return ast.NewWhenValueClause(t.c, t.loc(ctx), values, body)
	case 1:
		// The binding becomes a local variable declaration with no
		// initializer; its value is the switch operand at runtime.
		name := t.identifier(ctx.Binding)
		variable := ast.NewLocalVariableDeclaration(t.c, t.loc(ctx.Binding), name, t.typeRef(ctx.Type), nil)
		return ast.NewWhenTypeClause(t.c, t.loc(ctx), variable, body)
	default:
		return ast.NewWhenElseClause(t.c, t.loc(ctx), body)
	}
}

func (t *tr) forStatement(ctx *parser.ForContext) ast.Statement {
	body := t.statement(ctx.Body)
	if t.one(ctx, ctx.Classic != nil, ctx.Enhanced != nil) == 1 {
		e := ctx.Enhanced
		name := t.identifier(e.Name)
		variable := ast.NewLocalVariableDeclaration(t.c, t.loc(e), name, t.typeRef(e.Type), nil)
		return ast.NewEnhancedForStatement(t.c, t.loc(ctx), variable, t.expression(e.Iterable), body)
	}

	c := ctx.Classic
	var init ast.Statement
	switch {
	case c.Decl != nil:
		init = t.variableDeclarationStatement(c.Decl)
	case len(c.InitExprs) == 1:
		e := t.expression(c.InitExprs[0])
		init = ast.NewExpressionStatement(t.c, e.Loc(), e)
	case len(c.InitExprs) > 1:
		// Several comma-separated init expressions become an unscoped
		// wrapper block.
		stmts := make([]ast.Statement, len(c.InitExprs))
		for i, x := range c.InitExprs {
			e := t.expression(x)
			stmts[i] = ast.NewExpressionStatement(t.c, e.Loc(), e)
		}
		init = ast.NewBlockStatement(t.c, t.loc(c), stmts, false)
	}
	var cond ast.Expression
	if c.Cond != nil {
		cond = t.expression(c.Cond)
	}
	var updates []ast.Expression
	for _, u := range c.Updates {
		updates = append(updates, t.expression(u))
	}
	return ast.NewForStatement(t.c, t.loc(ctx), init, cond, updates, body)
}

func (t *tr) tryStatement(ctx *parser.TryContext) *ast.TryStatement {
	body := t.block(ctx.Body, true)
	catches := make([]*ast.CatchClause, len(ctx.Catches))
	for i, c := range ctx.Catches {
		param := ast.NewParameterDeclaration(t.c, t.loc(c), t.identifier(c.Name), t.typeRef(c.Type))
		catches[i] = ast.NewCatchClause(t.c, t.loc(c), param, t.block(c.Body, true))
	}
	var finally *ast.BlockStatement
	if ctx.Finally != nil {
		finally = t.block(ctx.Finally, true)
	}
	return ast.NewTryStatement(t.c, t.loc(ctx), body, catches, finally)
}

func (t *tr) runAsStatement(ctx *parser.RunAsContext) *ast.RunAsStatement {
	args := make([]ast.Expression, len(ctx.Args))
	for i, a := range ctx.Args {
		args[i] = t.expression(a)
	}
	return ast.NewRunAsStatement(t.c, t.loc(ctx), args, t.block(ctx.Body, true))
}

func (t *tr) variableDeclarationStatement(ctx *parser.LocalVarDeclContext) *ast.VariableDeclarationStatement {
	typ := t.typeRef(ctx.Type)
	decls := make([]*ast.LocalVariableDeclaration, len(ctx.Declarators))
	for i, dtor := range ctx.Declarators {
		var init ast.Expression
		if dtor.Init != nil {
			init = t.expression(dtor.Init)
		}
		decls[i] = ast.NewLocalVariableDeclaration(t.c, t.loc(dtor), t.identifier(dtor.Name), typ, init)
	}
	return ast.NewVariableDeclarationStatement(t.c, t.loc(ctx), typ, decls)
}

var dmlOps = map[string]ast.DmlOp{
	"insert":   ast.DmlInsert,
	"update":   ast.DmlUpdate,
	"delete":   ast.DmlDelete,
	"undelete": ast.DmlUndelete,
	"upsert":   ast.DmlUpsert,
	"merge":    ast.DmlMerge,
}

func (t *tr) dmlStatement(ctx *parser.DmlContext) *ast.DmlStatement {
	op, ok := dmlOps[strings.ToLower(ctx.Op.Text)]
	if !ok {
		t.fail(ctx, "unknown DML operation %q", ctx.Op.Text)
	}
	access := ast.DmlDefault
	switch {
	case ctx.UserMode != nil && ctx.SystemMode != nil:
		t.fail(ctx, "more than one alternative present")
	case ctx.UserMode != nil:
		access = ast.DmlUserMode
	case ctx.SystemMode != nil:
		access = ast.DmlSystemMode
	}
	args := make([]ast.Expression, len(ctx.Args))
	for i, a := range ctx.Args {
		args[i] = t.expression(a)
	}
	var upsertField *ast.Identifier
	if ctx.UpsertField != nil {
		if op != ast.DmlUpsert {
			t.fail(ctx, "external-id field on a non-upsert operation")
		}
		upsertField = t.identifier(ctx.UpsertField)
	}
	return ast.NewDmlStatement(t.c, t.loc(ctx), op, access, args, upsertField)
}
