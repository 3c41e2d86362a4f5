package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexcompile/apexcompile/parser"
	"github.com/apexcompile/apexcompile/reporter"
)

func parseUnit(t *testing.T, src string) *parser.CompilationUnitContext {
	t.Helper()
	unit, toks, err := parser.Parse("test.cls", []byte(src), reporter.NewHandler(nil))
	require.NoError(t, err)
	require.NotNil(t, unit)
	require.NotNil(t, toks)
	assert.Equal(t, "test.cls", toks.File())
	return unit
}

func TestParseClass(t *testing.T) {
	t.Parallel()
	src := `
@IsTest(SeeAllData = true)
public with sharing class OrderService extends BaseService implements Billable, Schedulable {
    private static final Integer BATCH = 200;

    public Integer Total { get; private set { Total = value; } }

    public OrderService(String name) {
        this.name = name;
    }

    public virtual Map<Id, List<Order>> load(Integer max) {
        List<Order> orders = [SELECT Id FROM Order WHERE Amount > :max LIMIT 200];
        for (Integer i = 0; i < orders.size(); i++) {
            process(orders[i], (Decimal) max + 1.5);
        }
        if (max > 0 && max != 3) {
            return null;
        } else {
            throw new ServiceException('too few: \'' + max);
        }
    }

    public void clear() { total = 0; }

    class Inner { }
}`
	unit := parseUnit(t, src)
	cls := unit.Class
	require.NotNil(t, cls)
	assert.Nil(t, unit.Interface)
	assert.Nil(t, unit.Enum)
	assert.Nil(t, unit.Trigger)

	require.Len(t, cls.Modifiers, 3)
	ann := cls.Modifiers[0].Annotation
	require.NotNil(t, ann)
	assert.Equal(t, "IsTest", ann.Name.Text)
	require.Len(t, ann.Args, 1)
	assert.Equal(t, "SeeAllData", ann.Args[0].Name.Text)
	assert.Equal(t, "public", cls.Modifiers[1].Keyword)
	assert.Equal(t, "with sharing", cls.Modifiers[2].Keyword)

	assert.Equal(t, "OrderService", cls.Name.Text)
	require.NotNil(t, cls.SuperClass)
	assert.Equal(t, "BaseService", cls.SuperClass.Parts[0].Name.Text)
	require.Len(t, cls.Interfaces, 2)
	assert.Equal(t, "Billable", cls.Interfaces[0].Parts[0].Name.Text)
	assert.Equal(t, "Schedulable", cls.Interfaces[1].Parts[0].Name.Text)

	require.Len(t, cls.Body, 6)

	field := cls.Body[0].Field
	require.NotNil(t, field)
	assert.Len(t, cls.Body[0].Modifiers, 3)
	assert.Equal(t, "Integer", field.Type.Parts[0].Name.Text)
	require.Len(t, field.Declarators, 1)
	assert.Equal(t, "BATCH", field.Declarators[0].Name.Text)
	assert.NotNil(t, field.Declarators[0].Init)

	prop := cls.Body[1].Property
	require.NotNil(t, prop)
	assert.Equal(t, "Total", prop.Name.Text)
	require.Len(t, prop.Accessors, 2)
	require.NotNil(t, prop.Accessors[0].Get)
	assert.Nil(t, prop.Accessors[0].Body)
	require.NotNil(t, prop.Accessors[1].Set)
	require.NotNil(t, prop.Accessors[1].Body)
	require.Len(t, prop.Accessors[1].Modifiers, 1)
	assert.Equal(t, "private", prop.Accessors[1].Modifiers[0].Keyword)

	ctor := cls.Body[2].Method
	require.NotNil(t, ctor)
	assert.Nil(t, ctor.ReturnType)
	assert.False(t, ctor.IsVoid)
	assert.Equal(t, "OrderService", ctor.Name.Text)
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "name", ctor.Params[0].Name.Text)

	load := cls.Body[3].Method
	require.NotNil(t, load)
	ret := load.ReturnType
	require.NotNil(t, ret)
	assert.Equal(t, "Map", ret.Parts[0].Name.Text)
	require.Len(t, ret.Parts[0].Args, 2)
	assert.Equal(t, "List", ret.Parts[0].Args[1].Parts[0].Name.Text)
	require.NotNil(t, load.Body)
	require.Len(t, load.Body.Statements, 3)

	decl := load.Body.Statements[0].VarDecl
	require.NotNil(t, decl)
	query, ok := decl.Declarators[0].Init.(*parser.QueryExprContext)
	require.True(t, ok)
	assert.False(t, query.Sosl)
	assert.Equal(t, "SELECT Id FROM Order WHERE Amount > :max LIMIT 200", query.Raw)
	require.Len(t, query.Bindings, 1)
	bind, ok := query.Bindings[0].(*parser.VarExprContext)
	require.True(t, ok)
	assert.Equal(t, "max", bind.Name.Text)

	loop := load.Body.Statements[1].For
	require.NotNil(t, loop)
	require.NotNil(t, loop.Classic)
	assert.NotNil(t, loop.Classic.Decl)
	cond, ok := loop.Classic.Cond.(*parser.BinaryExprContext)
	require.True(t, ok)
	assert.Equal(t, "<", cond.Op)
	require.Len(t, loop.Classic.Updates, 1)
	update, ok := loop.Classic.Updates[0].(*parser.UnaryExprContext)
	require.True(t, ok)
	assert.Equal(t, "++", update.Op)
	assert.False(t, update.Prefix)
	call, ok := loop.Body.Block.Statements[0].Expr.(*parser.CallExprContext)
	require.True(t, ok)
	assert.Equal(t, "process", call.Name.Text)
	require.Len(t, call.Args, 2)
	sum, ok := call.Args[1].(*parser.BinaryExprContext)
	require.True(t, ok)
	assert.Equal(t, "+", sum.Op)
	_, ok = sum.Left.(*parser.CastExprContext)
	assert.True(t, ok)

	branch := load.Body.Statements[2].If
	require.NotNil(t, branch)
	and, ok := branch.Cond.(*parser.BinaryExprContext)
	require.True(t, ok)
	assert.Equal(t, "&&", and.Op)
	require.NotNil(t, branch.Else)
	thrown := branch.Else.Block.Statements[0].Throw
	require.NotNil(t, thrown)
	created, ok := thrown.Expr.(*parser.NewExprContext)
	require.True(t, ok)
	require.NotNil(t, created.Creator.Ctor)
	assert.Len(t, created.Creator.Ctor.Args, 1)

	clear := cls.Body[4].Method
	require.NotNil(t, clear)
	assert.True(t, clear.IsVoid)
	assert.Nil(t, clear.ReturnType)

	inner := cls.Body[5].Class
	require.NotNil(t, inner)
	assert.Equal(t, "Inner", inner.Name.Text)
	assert.Empty(t, inner.Body)
}

func TestParseTrigger(t *testing.T) {
	t.Parallel()
	src := `trigger AuditTrail on Order (before insert, after update) {
        insert as user audits;
        upsert records Account.ExternalId__c;
    }`
	unit := parseUnit(t, src)
	trig := unit.Trigger
	require.NotNil(t, trig)
	assert.Equal(t, "AuditTrail", trig.Name.Text)
	assert.Equal(t, "Order", trig.Target.Text)

	require.Len(t, trig.Cases, 2)
	require.NotNil(t, trig.Cases[0].Before)
	assert.Equal(t, "insert", trig.Cases[0].Op.Text)
	require.NotNil(t, trig.Cases[1].After)
	assert.Equal(t, "update", trig.Cases[1].Op.Text)

	require.Len(t, trig.Statements, 2)
	first := trig.Statements[0].Dml
	require.NotNil(t, first)
	assert.Equal(t, "insert", first.Op.Text)
	assert.NotNil(t, first.UserMode)
	assert.Nil(t, first.SystemMode)
	second := trig.Statements[1].Dml
	require.NotNil(t, second)
	assert.Equal(t, "upsert", second.Op.Text)
	require.NotNil(t, second.UpsertField)
	assert.Equal(t, "Account.ExternalId__c", second.UpsertField.Text)
}

func TestParseSwitch(t *testing.T) {
	t.Parallel()
	src := `public class Router {
        void route(Object o) {
            switch on o {
                when 1, 2 { return; }
                when Account a { insert a; }
                when else { }
            }
        }
    }`
	unit := parseUnit(t, src)
	method := unit.Class.Body[0].Method
	require.NotNil(t, method)
	stmt := method.Body.Statements[0].Switch
	require.NotNil(t, stmt)
	require.Len(t, stmt.Whens, 3)

	assert.Len(t, stmt.Whens[0].Values, 2)
	require.NotNil(t, stmt.Whens[1].Type)
	assert.Equal(t, "Account", stmt.Whens[1].Type.Parts[0].Name.Text)
	assert.Equal(t, "a", stmt.Whens[1].Binding.Text)
	assert.NotNil(t, stmt.Whens[2].Else)
}

func TestParseGenericsCloseCorrectly(t *testing.T) {
	t.Parallel()
	src := `public class C {
        Map<Id, List<List<Integer>>> deep;
        void f(Integer a, Integer b) { x = a >> b; y = a >>>= b; }
    }`
	unit := parseUnit(t, src)
	field := unit.Class.Body[0].Field
	require.NotNil(t, field)
	part := field.Type.Parts[0]
	assert.Equal(t, "Map", part.Name.Text)
	require.Len(t, part.Args, 2)
	inner := part.Args[1]
	assert.Equal(t, "List", inner.Parts[0].Name.Text)

	body := unit.Class.Body[1].Method.Body
	shift, ok := body.Statements[0].Expr.(*parser.AssignExprContext)
	require.True(t, ok)
	rhs, ok := shift.Value.(*parser.BinaryExprContext)
	require.True(t, ok)
	assert.Equal(t, ">>", rhs.Op)
	compound, ok := body.Statements[1].Expr.(*parser.AssignExprContext)
	require.True(t, ok)
	inner2, ok := compound.Value.(*parser.AssignExprContext)
	require.True(t, ok)
	assert.Equal(t, ">>>=", inner2.Op)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("default handler returns the syntax error", func(t *testing.T) {
		t.Parallel()
		unit, _, err := parser.Parse("bad.cls", []byte("public class {"), reporter.NewHandler(nil))
		require.Error(t, err)
		assert.Nil(t, unit)
		assert.ErrorContains(t, err, "expected identifier")
	})

	t.Run("swallowed errors yield the sentinel", func(t *testing.T) {
		t.Parallel()
		var got []reporter.ErrorWithLoc
		h := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithLoc) error {
			got = append(got, err)
			return nil
		}, nil))
		unit, _, err := parser.Parse("bad.cls", []byte("public class {"), h)
		require.ErrorIs(t, err, reporter.ErrInvalidSource)
		assert.Nil(t, unit)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Location().StartLine)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		unit, _, err := parser.Parse("empty.cls", nil, reporter.NewHandler(nil))
		require.Error(t, err)
		assert.Nil(t, unit)
	})
}
