package translate

import (
	"fmt"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/parser"
)

// Error is a translation failure. Tree is the parse-tree node the
// translator could not lower.
type Error struct {
	Tree parser.ParseTree
	msg  string
}

func (e *Error) Error() string {
	if e.Tree == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.Tree.Production(), e.msg)
}

// CompilationUnit translates a parsed compilation unit into an AST rooted at
// an *ast.CompilationUnit. file identifies the originating source file. The
// returned tree is linked; parent references are valid.
func CompilationUnit(file string, root *parser.CompilationUnitContext, toks *parser.TokenStream) (u *ast.CompilationUnit, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		te, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		u, err = nil, te
	}()

	t := &tr{toks: toks, c: &ast.Counter{}}
	decl := t.typeDeclaration(root)
	u = ast.NewCompilationUnit(t.c, t.loc(root), file, decl)

	if lerr := ast.Link(u); lerr != nil {
		t.fail(root, "%v", lerr)
	}
	if got, want := ast.CountReachable(u), t.c.Count(); got != want {
		t.fail(root, "internal: %d nodes reachable, %d constructed", got, want)
	}
	return u, nil
}

// tr carries per-call translation state.
type tr struct {
	toks *parser.TokenStream
	c    *ast.Counter
}

func (t *tr) loc(p parser.ParseTree) ast.Location {
	start, stop := p.TokenSpan()
	return t.toks.Location(start, stop)
}

// tokLoc is the location of the single token at index i.
func (t *tr) tokLoc(i int) ast.Location {
	return t.toks.Location(i, i)
}

func (t *tr) fail(tree parser.ParseTree, format string, args ...any) {
	panic(&Error{Tree: tree, msg: fmt.Sprintf(format, args...)})
}

// one checks that exactly one alternative of a production is present and
// returns its index.
func (t *tr) one(tree parser.ParseTree, present ...bool) int {
	idx := -1
	for i, p := range present {
		if !p {
			continue
		}
		if idx >= 0 {
			t.fail(tree, "more than one alternative present")
		}
		idx = i
	}
	if idx < 0 {
		t.fail(tree, "no alternative present")
	}
	return idx
}

func (t *tr) identifier(ctx *parser.IdContext) *ast.Identifier {
	return ast.NewIdentifier(t.c, t.loc(ctx), ctx.Text)
}

// syntheticIdentifier names a declaration the translator invents.
func (t *tr) syntheticIdentifier(loc ast.Location) *ast.Identifier {
	return ast.NewIdentifier(t.c, loc, ast.SyntheticName)
}

func (t *tr) typeRef(ctx *parser.TypeRefContext) ast.TypeRef {
	parts := make([]ast.TypeRefPart, len(ctx.Parts))
	for i, p := range ctx.Parts {
		part := ast.TypeRefPart{Name: p.Name.Text}
		for _, a := range p.Args {
			part.Args = append(part.Args, t.typeRef(a))
		}
		parts[i] = part
	}
	return ast.TypeRef{Parts: parts, Arrays: ctx.Arrays, Loc: t.loc(ctx)}
}

// typeRefPtr translates an optional type reference.
func (t *tr) typeRefPtr(ctx *parser.TypeRefContext) *ast.TypeRef {
	if ctx == nil {
		return nil
	}
	r := t.typeRef(ctx)
	return &r
}
