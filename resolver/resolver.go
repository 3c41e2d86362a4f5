// Package resolver builds a symbol table over translated compilation
// units. The table maps qualified declaration names to their nodes and
// keeps them in name order, so tooling can both look up a symbol exactly
// and scan a name range.
package resolver

import (
	"fmt"
	"strings"

	"github.com/tidwall/btree"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/walk"
)

// Table is an ordered symbol table. Keys are qualified names folded to
// lower case; Apex names are case-insensitive.
type Table struct {
	syms btree.Map[string, ast.Declaration]
}

// Collect indexes every type and method declaration reachable from the
// given units. Declarations carrying the reserved synthetic name are not
// indexed. Method overloads share a qualified name; the first overload
// seen is the one indexed. Any other name collision is an error.
func Collect(units ...*ast.CompilationUnit) (*Table, error) {
	t := &Table{}
	for _, u := range units {
		w := walk.NewDfsWalker(u, walk.PreOrder)
		for n := range w.All() {
			d, ok := n.(ast.Declaration)
			if !ok || !indexable(d) {
				continue
			}
			key := Fold(d.QualifiedName())
			if prev, dup := t.syms.Get(key); dup {
				if isOverload(prev, d) {
					continue
				}
				if prevFile := unitOf(prev).File(); prevFile != u.File() {
					return nil, fmt.Errorf("resolver: %s declared in both %s and %s",
						d.QualifiedName(), prevFile, u.File())
				}
				return nil, fmt.Errorf("resolver: %s declared twice in %s",
					d.QualifiedName(), u.File())
			}
			t.syms.Set(key, d)
		}
	}
	return t, nil
}

// isOverload reports whether both declarations are methods, in which case
// a shared qualified name is an overload set rather than a duplicate.
func isOverload(a, b ast.Declaration) bool {
	_, am := a.(*ast.MethodDeclaration)
	_, bm := b.(*ast.MethodDeclaration)
	return am && bm
}

func indexable(d ast.Declaration) bool {
	if d.Name().Value() == ast.SyntheticName {
		return false
	}
	switch d.(type) {
	case ast.TypeDeclaration, *ast.MethodDeclaration:
		return true
	}
	return false
}

// unitOf walks up to the compilation unit a linked declaration belongs to.
func unitOf(d ast.Declaration) *ast.CompilationUnit {
	for n := ast.Node(d); n != nil; n = n.Parent() {
		if u, ok := n.(*ast.CompilationUnit); ok {
			return u
		}
	}
	return nil
}

// Fold normalizes a name for table lookup.
func Fold(name string) string { return strings.ToLower(name) }

// Lookup returns the declaration with the given qualified name. The
// lookup is case-insensitive.
func (t *Table) Lookup(name string) (ast.Declaration, bool) {
	return t.syms.Get(Fold(name))
}

// Len returns the number of indexed declarations.
func (t *Table) Len() int { return t.syms.Len() }

// Range calls fn for every declaration in folded-name order until fn
// returns false.
func (t *Table) Range(fn func(name string, d ast.Declaration) bool) {
	t.syms.Scan(fn)
}

// Prefix calls fn for every declaration whose folded name starts with
// prefix, in order, until fn returns false.
func (t *Table) Prefix(prefix string, fn func(name string, d ast.Declaration) bool) {
	prefix = Fold(prefix)
	t.syms.Ascend(prefix, func(name string, d ast.Declaration) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		return fn(name, d)
	})
}
