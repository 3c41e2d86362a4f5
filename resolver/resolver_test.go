package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
	"github.com/apexcompile/apexcompile/reporter"
	"github.com/apexcompile/apexcompile/resolver"
	"github.com/apexcompile/apexcompile/translate"
)

func unit(t *testing.T, file, src string) *ast.CompilationUnit {
	t.Helper()
	root, toks, err := parser.Parse(file, []byte(src), reporter.NewHandler(nil))
	require.NoError(t, err)
	u, err := translate.CompilationUnit(file, root, toks)
	require.NoError(t, err)
	return u
}

func TestCollect(t *testing.T) {
	t.Parallel()
	outer := unit(t, "Outer.cls", `public class Outer {
        public void run() { }
        class Inner {
            void ping() { }
        }
    }`)
	other := unit(t, "Billing.cls", `public interface Billing {
        void invoice();
    }`)

	table, err := resolver.Collect(outer, other)
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())

	// lookups are case-insensitive
	d, ok := table.Lookup("outer.inner.PING")
	require.True(t, ok)
	method, ok := d.(*ast.MethodDeclaration)
	require.True(t, ok)
	assert.Equal(t, "ping", method.Name().Value())

	_, ok = table.Lookup("Outer.ping")
	assert.False(t, ok)

	var names []string
	table.Range(func(name string, _ ast.Declaration) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{
		"billing", "billing.invoice",
		"outer", "outer.inner", "outer.inner.ping", "outer.run",
	}, names)
}

func TestCollectPrefix(t *testing.T) {
	t.Parallel()
	u := unit(t, "Outer.cls", `public class Outer {
        void alpha() { }
        void beta() { }
    }`)
	table, err := resolver.Collect(u)
	require.NoError(t, err)

	var names []string
	table.Prefix("outer.", func(name string, _ ast.Declaration) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"outer.alpha", "outer.beta"}, names)

	// early stop
	names = nil
	table.Prefix("outer.", func(name string, _ ast.Declaration) bool {
		names = append(names, name)
		return false
	})
	assert.Equal(t, []string{"outer.alpha"}, names)
}

func TestCollectSkipsSynthetics(t *testing.T) {
	t.Parallel()
	u := unit(t, "P.cls", `public class P {
        public Integer Count { get; set; }
        { x = 1; }
    }`)
	table, err := resolver.Collect(u)
	require.NoError(t, err)

	// only the class itself: accessors and the init block are synthetic
	assert.Equal(t, 1, table.Len())
	_, ok := table.Lookup("p")
	assert.True(t, ok)
}

func TestCollectMethodOverloads(t *testing.T) {
	t.Parallel()
	u := unit(t, "P.cls", `public class P {
        void f() { }
        void f(Integer i) { }
        void f(Integer i, String s) { }
    }`)
	table, err := resolver.Collect(u)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	// the first overload wins the key
	d, ok := table.Lookup("P.f")
	require.True(t, ok)
	method, ok := d.(*ast.MethodDeclaration)
	require.True(t, ok)
	assert.Empty(t, method.Parameters())
}

func TestCollectRejectsDuplicates(t *testing.T) {
	t.Parallel()
	a := unit(t, "a.cls", "public class Dup { }")
	b := unit(t, "b.cls", "public class DUP { }")

	table, err := resolver.Collect(a, b)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.ErrorContains(t, err, "a.cls")
	assert.ErrorContains(t, err, "b.cls")
}

func TestCollectRejectsSameFileDuplicates(t *testing.T) {
	t.Parallel()
	u := unit(t, "P.cls", `public class P {
        class Inner { }
        class INNER { }
    }`)
	table, err := resolver.Collect(u)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.ErrorContains(t, err, "declared twice in P.cls")
}
