package translate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
	"github.com/apexcompile/apexcompile/reporter"
	"github.com/apexcompile/apexcompile/translate"
)

func mustTranslate(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	root, toks, err := parser.Parse("test.cls", []byte(src), reporter.NewHandler(nil))
	require.NoError(t, err)
	unit, err := translate.CompilationUnit("test.cls", root, toks)
	require.NoError(t, err)
	require.NotNil(t, unit)
	return unit
}

func classOf(t *testing.T, u *ast.CompilationUnit) *ast.ClassDeclaration {
	t.Helper()
	cls, ok := u.TypeDeclaration().(*ast.ClassDeclaration)
	require.True(t, ok)
	return cls
}

// firstBody returns the body of the first method of a single-class unit.
func firstBody(t *testing.T, src string) *ast.BlockStatement {
	t.Helper()
	cls := classOf(t, mustTranslate(t, src))
	methods := cls.Methods()
	require.NotEmpty(t, methods)
	require.NotNil(t, methods[0].Body())
	return methods[0].Body()
}

func TestTranslateEmptyClass(t *testing.T) {
	t.Parallel()
	unit := mustTranslate(t, "public class Test { }")
	assert.Equal(t, "test.cls", unit.File())

	cls := classOf(t, unit)
	assert.Equal(t, "Test", cls.Name().Value())
	assert.Nil(t, cls.SuperClass())
	assert.Empty(t, cls.Interfaces())
	assert.Empty(t, cls.BodyDeclarations())
	require.Len(t, cls.Modifiers(), 1)
	kw, ok := cls.Modifiers()[0].(*ast.KeywordModifier)
	require.True(t, ok)
	assert.Equal(t, ast.KeywordPublic, kw.Keyword())

	// the tree comes back linked
	assert.Same(t, unit, cls.Parent())
	assert.Same(t, cls, cls.Name().Parent())
}

func TestTranslateMethodShapes(t *testing.T) {
	t.Parallel()
	cls := classOf(t, mustTranslate(t, `public class Shapes {
        public Shapes() { }
        public void run() { }
        public Integer size() { return 1; }
    }`))
	methods := cls.Methods()
	require.Len(t, methods, 3)

	ctor := methods[0]
	assert.Equal(t, "Shapes", ctor.Name().Value())
	assert.Nil(t, ctor.ReturnType())

	void := methods[1]
	require.NotNil(t, void.ReturnType())
	assert.Equal(t, "void", void.ReturnType().String())

	size := methods[2]
	require.NotNil(t, size.ReturnType())
	assert.Equal(t, "Integer", size.ReturnType().String())
}

func TestTranslateProperty(t *testing.T) {
	t.Parallel()

	t.Run("getter only", func(t *testing.T) {
		t.Parallel()
		cls := classOf(t, mustTranslate(t, `public class P {
            public Integer Count { get; }
        }`))
		props := cls.Properties()
		require.Len(t, props, 1)
		prop := props[0]
		assert.Equal(t, "Count", prop.Name().Value())
		assert.Equal(t, "Integer", prop.Type().String())

		getter := prop.Getter()
		require.NotNil(t, getter)
		assert.Nil(t, prop.Setter())
		assert.Equal(t, ast.SyntheticName, getter.Name().Value())
		assert.Empty(t, getter.Parameters())
		assert.Nil(t, getter.ReturnType())
		assert.Nil(t, getter.Body())
	})

	t.Run("setter takes the property type", func(t *testing.T) {
		t.Parallel()
		cls := classOf(t, mustTranslate(t, `public class P {
            public String Name { get; set { Name = value; } }
        }`))
		setter := cls.Properties()[0].Setter()
		require.NotNil(t, setter)
		require.Len(t, setter.Parameters(), 1)
		param := setter.Parameters()[0]
		assert.Equal(t, "value", param.Name().Value())
		assert.Equal(t, "String", param.Type().String())
		assert.NotNil(t, setter.Body())
	})
}

func TestTranslateInitBlock(t *testing.T) {
	t.Parallel()
	cls := classOf(t, mustTranslate(t, `public class P {
        { count = 0; }
    }`))
	methods := cls.Methods()
	require.Len(t, methods, 1)
	assert.Equal(t, ast.SyntheticName, methods[0].Name().Value())
	assert.Nil(t, methods[0].ReturnType())
	require.NotNil(t, methods[0].Body())
	assert.Len(t, methods[0].Body().Statements(), 1)
}

func TestTranslateFieldGroup(t *testing.T) {
	t.Parallel()
	cls := classOf(t, mustTranslate(t, `public class P {
        private Integer a, b = 2;
    }`))
	fields := cls.Fields()
	require.Len(t, fields, 2)

	assert.Equal(t, "a", fields[0].Name().Value())
	assert.Nil(t, fields[0].Init())
	assert.Equal(t, "b", fields[1].Name().Value())
	require.NotNil(t, fields[1].Init())

	// each declaration gets its own modifier nodes
	require.Len(t, fields[0].Modifiers(), 1)
	require.Len(t, fields[1].Modifiers(), 1)
	assert.NotSame(t, fields[0].Modifiers()[0], fields[1].Modifiers()[0])
	assert.Equal(t, "Integer", fields[0].Type().String())
	assert.Equal(t, "Integer", fields[1].Type().String())
}

func TestTranslateLiterals(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f() {
        Integer a = 2147483647;
        Long b = 2147483648L;
        Double c = 1.5;
        Boolean d = true;
        String s = 'a\'b';
        Object n = null;
    } }`)
	stmts := body.Statements()
	require.Len(t, stmts, 6)

	lit := func(i int) ast.LiteralValue {
		decl, ok := stmts[i].(*ast.VariableDeclarationStatement)
		require.True(t, ok)
		expr, ok := decl.Declarations()[0].Init().(*ast.LiteralExpression)
		require.True(t, ok)
		return expr.Value()
	}

	a := lit(0)
	assert.Equal(t, ast.LiteralInteger, a.Kind)
	assert.Equal(t, int32(2147483647), a.Int)

	b := lit(1)
	assert.Equal(t, ast.LiteralLong, b.Kind)
	assert.Equal(t, int64(2147483648), b.Long)

	c := lit(2)
	assert.Equal(t, ast.LiteralDouble, c.Kind)
	assert.Equal(t, 1.5, c.Double)

	d := lit(3)
	assert.Equal(t, ast.LiteralBoolean, d.Kind)
	assert.True(t, d.Bool)

	s := lit(4)
	assert.Equal(t, ast.LiteralString, s.Kind)
	assert.Equal(t, "a'b", s.Str)

	assert.Equal(t, ast.LiteralNull, lit(5).Kind)
}

func TestTranslateIntLiteralOverflow(t *testing.T) {
	t.Parallel()
	src := "public class P { Integer a = 2147483648; }"
	root, toks, err := parser.Parse("test.cls", []byte(src), reporter.NewHandler(nil))
	require.NoError(t, err)

	unit, err := translate.CompilationUnit("test.cls", root, toks)
	require.Error(t, err)
	assert.Nil(t, unit)
	var terr *translate.Error
	require.ErrorAs(t, err, &terr)
	assert.ErrorContains(t, err, "2147483648")
}

func TestTranslateTrigger(t *testing.T) {
	t.Parallel()
	unit := mustTranslate(t, `trigger Audit on Account (before update, after delete) {
        update changed;
    }`)
	trig, ok := unit.TypeDeclaration().(*ast.TriggerDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Audit", trig.Name().Value())
	assert.Equal(t, "Account", trig.Target().Value())

	require.Len(t, trig.Cases(), 2)
	assert.Equal(t, ast.TriggerCase{Time: ast.TriggerBefore, Op: ast.TriggerUpdate}, trig.Cases()[0])
	assert.Equal(t, ast.TriggerCase{Time: ast.TriggerAfter, Op: ast.TriggerDelete}, trig.Cases()[1])

	require.Len(t, trig.Statements(), 1)
	dml, ok := trig.Statements()[0].(*ast.DmlStatement)
	require.True(t, ok)
	assert.Equal(t, ast.DmlUpdate, dml.Op())
}

func TestTranslateSwitchWhenType(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(Object o) {
        switch on o {
            when 1, 2 { }
            when Account a { }
            when else { }
        }
    } }`)
	sw, ok := body.Statements()[0].(*ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Whens(), 3)

	values, ok := sw.Whens()[0].(*ast.WhenValueClause)
	require.True(t, ok)
	assert.Len(t, values.Values(), 2)

	typed, ok := sw.Whens()[1].(*ast.WhenTypeClause)
	require.True(t, ok)
	binding := typed.Variable()
	require.NotNil(t, binding)
	assert.Equal(t, "a", binding.Name().Value())
	assert.Equal(t, "Account", binding.Type().String())
	assert.Nil(t, binding.Init())

	_, ok = sw.Whens()[2].(*ast.WhenElseClause)
	assert.True(t, ok)
}

func TestTranslateDml(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(Account a, List<Account> b, Account c) {
        insert as user a;
        upsert b Ext__c;
        delete c;
    } }`)
	stmts := body.Statements()
	require.Len(t, stmts, 3)

	ins := stmts[0].(*ast.DmlStatement)
	assert.Equal(t, ast.DmlInsert, ins.Op())
	assert.Equal(t, ast.DmlUserMode, ins.Access())
	assert.Nil(t, ins.UpsertField())

	up := stmts[1].(*ast.DmlStatement)
	assert.Equal(t, ast.DmlUpsert, up.Op())
	assert.Equal(t, ast.DmlDefault, up.Access())
	require.NotNil(t, up.UpsertField())
	assert.Equal(t, "Ext__c", up.UpsertField().Value())

	del := stmts[2].(*ast.DmlStatement)
	assert.Equal(t, ast.DmlDelete, del.Op())
	assert.Equal(t, ast.DmlDefault, del.Access())
}

func TestTranslateClassicForInitForms(t *testing.T) {
	t.Parallel()

	t.Run("declaration", func(t *testing.T) {
		t.Parallel()
		body := firstBody(t, `public class P { void f() {
            for (Integer i = 0; i < 3; i++) { }
        } }`)
		loop := body.Statements()[0].(*ast.ForStatement)
		_, ok := loop.Init().(*ast.VariableDeclarationStatement)
		assert.True(t, ok)
		assert.NotNil(t, loop.Cond())
		assert.Len(t, loop.Updates(), 1)
	})

	t.Run("multiple init expressions share an unscoped block", func(t *testing.T) {
		t.Parallel()
		body := firstBody(t, `public class P { void f(Integer i, Integer j) {
            for (i = 0, j = 1; ; ) { }
        } }`)
		loop := body.Statements()[0].(*ast.ForStatement)
		block, ok := loop.Init().(*ast.BlockStatement)
		require.True(t, ok)
		assert.False(t, block.Scoped())
		assert.Len(t, block.Statements(), 2)
		assert.Nil(t, loop.Cond())
	})
}

func TestTranslateEnhancedFor(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(List<Account> accs) {
        for (Account a : accs) { }
    } }`)
	loop, ok := body.Statements()[0].(*ast.EnhancedForStatement)
	require.True(t, ok)
	require.NotNil(t, loop.Variable())
	assert.Equal(t, "a", loop.Variable().Name().Value())
	assert.Equal(t, "Account", loop.Variable().Type().String())
}

func TestTranslateQuery(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(Integer max, String term) {
        List<Account> a = [SELECT Id FROM Account WHERE Size > :max];
        List<List<SObject>> b = [FIND :term IN ALL FIELDS RETURNING Account];
    } }`)
	decl := body.Statements()[0].(*ast.VariableDeclarationStatement)
	query, ok := decl.Declarations()[0].Init().(*ast.QueryExpression)
	require.True(t, ok)
	assert.False(t, query.Sosl())
	assert.Equal(t, "SELECT Id FROM Account WHERE Size > :max", query.Query())
	require.Len(t, query.Bindings(), 1)
	bind, ok := query.Bindings()[0].(*ast.VariableExpression)
	require.True(t, ok)
	assert.Equal(t, "max", bind.Name().Value())

	decl = body.Statements()[1].(*ast.VariableDeclarationStatement)
	find, ok := decl.Declarations()[0].Init().(*ast.QueryExpression)
	require.True(t, ok)
	assert.True(t, find.Sosl())
	assert.Equal(t, "FIND :term IN ALL FIELDS RETURNING Account", find.Query())
	require.Len(t, find.Bindings(), 1)
}

func TestTranslateIf(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(Boolean b) {
        if (b) { return; }
    } }`)
	branch, ok := body.Statements()[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, branch.Cond())
	assert.NotNil(t, branch.Then())
	assert.Nil(t, branch.Else())
}

func TestTranslateIfElse(t *testing.T) {
	t.Parallel()
	body := firstBody(t, `public class P { void f(Boolean b) {
        if (b) { return; } else { throw new MyException('x'); }
    } }`)
	branch, ok := body.Statements()[0].(*ast.IfStatement)
	require.True(t, ok)
	assert.NotNil(t, branch.Cond())
	assert.NotNil(t, branch.Then())
	require.NotNil(t, branch.Else())

	elseBlock, ok := branch.Else().(*ast.BlockStatement)
	require.True(t, ok)
	thrown, ok := elseBlock.Statements()[0].(*ast.ThrowStatement)
	require.True(t, ok)
	created, ok := thrown.Expr().(*ast.NewExpression)
	require.True(t, ok)
	ctor, ok := created.Init().(*ast.ConstructorInitializer)
	require.True(t, ok)
	assert.Equal(t, "MyException", ctor.Type().String())
	assert.Len(t, ctor.Args(), 1)
}
