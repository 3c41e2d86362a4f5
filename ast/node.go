package ast

import (
	"errors"
	"strings"
)

// SyntheticName is the reserved identifier used for declarations that the
// translator manufactures for constructs with no explicit name in source,
// such as anonymous initializer blocks and property accessor methods. It is
// not a legal Apex identifier, so it can never collide with user code.
const SyntheticName = "<synthetic>"

// Kind is a stable discriminator for the concrete type of a node. It is the
// tag a serializer writes so that a polymorphic tree can be rebuilt.
type Kind string

// Node is implemented by every AST node.
//
// A node's children are fixed by the time the node is part of a tree and are
// always enumerated in source order. The parent reference is nil until Link
// runs over the completed tree; it is a non-owning back-pointer and may be
// set at most once.
type Node interface {
	// Loc returns the node's source range, possibly unknown.
	Loc() Location
	// Children returns the node's direct children in order. Callers must
	// not mutate the returned slice.
	Children() []Node
	// Parent returns the parent node, or nil for the root and for nodes
	// that have not been linked yet.
	Parent() Node
	// Kind returns the node's stable discriminator.
	Kind() Kind

	setParent(Node) error
}

// Counter tracks how many nodes have been constructed through it. The
// translate package threads one Counter through a single translation call
// and afterwards checks the total against the number of nodes reachable from
// the root, which catches constructors that forget to list a field as a
// child. A nil *Counter disables counting; the serializer's rebuild path
// uses that.
type Counter struct {
	built int
}

// Count returns the number of nodes constructed through c.
func (c *Counter) Count() int {
	if c == nil {
		return 0
	}
	return c.built
}

func (c *Counter) add() {
	if c != nil {
		c.built++
	}
}

// node is the embedded base of every concrete AST node.
type node struct {
	loc      Location
	children []Node
	parent   Node
}

func newNode(c *Counter, loc Location, children []Node) node {
	c.add()
	return node{loc: loc, children: children}
}

func (n *node) Loc() Location    { return n.loc }
func (n *node) Children() []Node { return n.children }
func (n *node) Parent() Node     { return n.parent }

func (n *node) setParent(p Node) error {
	if n.parent != nil {
		return errors.New("ast: node already has a parent")
	}
	n.parent = p
	return nil
}

// childList collects the non-nil nodes among ns into a child slice.
func childList(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Link assigns parent references throughout the tree rooted at root. It
// returns an error if any node already has a parent, which indicates a
// subtree shared between two parents and therefore a violation of the tree
// invariant.
func Link(root Node) error {
	for _, ch := range root.Children() {
		if err := ch.setParent(root); err != nil {
			return err
		}
		if err := Link(ch); err != nil {
			return err
		}
	}
	return nil
}

// CountReachable returns the number of nodes reachable from root via child
// enumeration, including root itself.
func CountReachable(root Node) int {
	n := 1
	for _, ch := range root.Children() {
		n += CountReachable(ch)
	}
	return n
}

// Identifier is a leaf node carrying a name and its exact source range, so
// that error reporting and rename tooling can point at the name itself
// rather than the whole declaration.
type Identifier struct {
	node
	value string
}

// NewIdentifier constructs an identifier leaf.
func NewIdentifier(c *Counter, loc Location, value string) *Identifier {
	id := &Identifier{value: value}
	id.node = newNode(c, loc, nil)
	return id
}

// Value returns the identifier text.
func (i *Identifier) Value() string { return i.value }

func (i *Identifier) Kind() Kind { return KindIdentifier }

// CompilationUnit is the root node for one translated source file. It owns
// exactly one top-level type or trigger declaration.
type CompilationUnit struct {
	node
	file string
	decl TypeDeclaration
}

// NewCompilationUnit constructs the root node for the given file identifier.
func NewCompilationUnit(c *Counter, loc Location, file string, decl TypeDeclaration) *CompilationUnit {
	u := &CompilationUnit{file: file, decl: decl}
	u.node = newNode(c, loc, childList(decl))
	return u
}

// File returns the identifier of the originating source file.
func (u *CompilationUnit) File() string { return u.file }

// TypeDeclaration returns the unit's single top-level declaration.
func (u *CompilationUnit) TypeDeclaration() TypeDeclaration { return u.decl }

func (u *CompilationUnit) Kind() Kind { return KindCompilationUnit }

// qualifiedName derives the dotted name of a declaration by walking the
// enclosing type declarations.
func qualifiedName(name string, from Node) string {
	parts := []string{name}
	for p := from; p != nil; p = p.Parent() {
		if td, ok := p.(TypeDeclaration); ok {
			parts = append(parts, td.Name().Value())
		}
	}
	// reverse into source order
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
