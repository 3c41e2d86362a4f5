package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterTracksConstruction(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	name := NewIdentifier(c, UnknownLoc, "Foo")
	decl := NewClassDeclaration(c, UnknownLoc, name, nil, nil, nil)
	unit := NewCompilationUnit(c, UnknownLoc, "Foo.cls", decl)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 3, CountReachable(unit))
}

func TestNilCounterDisablesCounting(t *testing.T) {
	t.Parallel()
	id := NewIdentifier(nil, UnknownLoc, "x")
	assert.Equal(t, "x", id.Value())
	assert.Equal(t, 0, (*Counter)(nil).Count())
}

func TestLinkSetsParents(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	name := NewIdentifier(c, UnknownLoc, "Foo")
	field := NewFieldDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "a"), TypeRef{}, nil)
	decl := NewClassDeclaration(c, UnknownLoc, name, nil, nil, []Declaration{field})
	unit := NewCompilationUnit(c, UnknownLoc, "Foo.cls", decl)

	require.Nil(t, name.Parent())
	require.NoError(t, Link(unit))

	assert.Nil(t, unit.Parent())
	assert.Same(t, Node(unit), decl.Parent())
	assert.Same(t, Node(decl), name.Parent())
	assert.Same(t, Node(decl), field.Parent())
}

func TestLinkRejectsSharedChild(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	shared := NewIdentifier(c, UnknownLoc, "dup")
	first := NewClassDeclaration(c, UnknownLoc, shared, nil, nil, nil)
	require.NoError(t, Link(first))

	// the same identifier hung under a second parent must fail the link
	second := NewClassDeclaration(c, UnknownLoc, shared, nil, nil, nil)
	assert.Error(t, Link(second))
}

func TestCountReachableFindsEveryNode(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	init := NewLiteralExpression(c, UnknownLoc, LiteralValue{Kind: LiteralInteger, Int: 42})
	field := NewFieldDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "a"), TypeRef{}, init)
	decl := NewClassDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Foo"), nil, nil, []Declaration{field})
	unit := NewCompilationUnit(c, UnknownLoc, "Foo.cls", decl)

	assert.Equal(t, c.Count(), CountReachable(unit))

	// a node built outside the tree is constructed but not reachable
	NewIdentifier(c, UnknownLoc, "stray")
	assert.Equal(t, c.Count()-1, CountReachable(unit))
}

func TestQualifiedName(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	method := NewMethodDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "run"), nil, nil, nil)
	inner := NewClassDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Inner"), nil, nil, []Declaration{method})
	outer := NewClassDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Outer"), nil, nil, []Declaration{inner})
	unit := NewCompilationUnit(c, UnknownLoc, "Outer.cls", outer)
	require.NoError(t, Link(unit))

	assert.Equal(t, "Outer", outer.QualifiedName())
	assert.Equal(t, "Outer.Inner", inner.QualifiedName())
	assert.Equal(t, "Outer.Inner.run", method.QualifiedName())
}

func TestTypeDeclMemberFiltering(t *testing.T) {
	t.Parallel()
	c := &Counter{}
	field := NewFieldDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "a"), TypeRef{}, nil)
	method := NewMethodDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "run"), nil, nil, nil)
	prop := NewPropertyDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "p"), TypeRef{}, nil, nil)
	inner := NewEnumDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Color"), nil)
	decl := NewClassDeclaration(c, UnknownLoc, NewIdentifier(c, UnknownLoc, "Foo"), nil, nil,
		[]Declaration{field, method, prop, inner})

	require.Len(t, decl.BodyDeclarations(), 4)
	assert.Equal(t, []*FieldDeclaration{field}, decl.Fields())
	assert.Equal(t, []*MethodDeclaration{method}, decl.Methods())
	assert.Equal(t, []*PropertyDeclaration{prop}, decl.Properties())
	assert.Equal(t, []TypeDeclaration{inner}, decl.InnerTypes())
}

func TestTypeRefString(t *testing.T) {
	t.Parallel()
	inner := TypeRef{Parts: []TypeRefPart{{Name: "Integer"}}}
	list := TypeRef{Parts: []TypeRefPart{{Name: "List", Args: []TypeRef{inner}}}}
	ref := TypeRef{
		Parts: []TypeRefPart{
			{Name: "Map", Args: []TypeRef{{Parts: []TypeRefPart{{Name: "Id"}}}, list}},
		},
		Arrays: 1,
	}
	assert.Equal(t, "Map<Id, List<Integer>>[]", ref.String())
}
