// Package walk provides the traversal framework for Apex ASTs: a post-order
// visitor and a lazy, explicit-stack depth-first iterator. Traversal never
// mutates the tree, so any number of walks may run concurrently over the
// same AST.
package walk

import "github.com/apexcompile/apexcompile/ast"

// Visitor receives nodes during a post-order walk.
//
// StopAt halts the whole traversal when it returns true for a node: the
// node's children are not visited, the node itself is not visited, and no
// further nodes are visited — including ancestors whose children were still
// being walked. SkipBelow excludes only the subtree beneath a node; the node
// itself is still visited.
type Visitor interface {
	Visit(ast.Node)
	StopAt(ast.Node) bool
	SkipBelow(ast.Node) bool
}

// Base provides the default always-false StopAt and SkipBelow hooks; embed
// it to implement only Visit.
type Base struct{}

// StopAt implements Visitor.
func (Base) StopAt(ast.Node) bool { return false }

// SkipBelow implements Visitor.
func (Base) SkipBelow(ast.Node) bool { return false }

// Walk traverses the subtree rooted at root depth-first in post-order,
// calling v.Visit for each node after its children. It returns false if the
// traversal was halted by StopAt.
func Walk(root ast.Node, v Visitor) bool {
	if v.StopAt(root) {
		return false
	}
	if !v.SkipBelow(root) {
		for _, ch := range root.Children() {
			if !Walk(ch, v) {
				return false
			}
		}
	}
	v.Visit(root)
	return true
}

// VisitFunc adapts a plain function to a Visitor.
type VisitFunc func(ast.Node)

// Visit implements Visitor.
func (f VisitFunc) Visit(n ast.Node) { f(n) }

// StopAt implements Visitor.
func (VisitFunc) StopAt(ast.Node) bool { return false }

// SkipBelow implements Visitor.
func (VisitFunc) SkipBelow(ast.Node) bool { return false }
