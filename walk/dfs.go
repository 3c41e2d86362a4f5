package walk

import (
	"iter"

	"github.com/apexcompile/apexcompile/ast"
)

// Order selects the emission order of a DfsWalker.
type Order int

const (
	// PreOrder emits a node before its children.
	PreOrder Order = iota
	// PostOrder emits a node after its children.
	PostOrder
)

// Option configures a DfsWalker.
type Option func(*DfsWalker)

// WithSkipBelow sets a predicate that excludes the subtree beneath any node
// it matches. The matched node itself is still emitted.
func WithSkipBelow(pred func(ast.Node) bool) Option {
	return func(w *DfsWalker) { w.skipBelow = pred }
}

// DfsWalker is a pull-based depth-first iterator over an AST. It walks with
// an explicit stack rather than recursion, produces each node exactly once,
// and is single-use: once exhausted it stays exhausted. A caller may simply
// stop pulling to abandon a walk early; no cleanup is required.
type DfsWalker struct {
	order     Order
	skipBelow func(ast.Node) bool
	stack     []dfsFrame
}

// post-order is implemented by re-pushing a frame marked expanded after its
// children and emitting it on the second pop
type dfsFrame struct {
	n        ast.Node
	expanded bool
}

// NewDfsWalker returns a walker over the subtree rooted at root.
func NewDfsWalker(root ast.Node, order Order, opts ...Option) *DfsWalker {
	w := &DfsWalker{order: order, stack: []dfsFrame{{n: root}}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Next returns the next node in the walk, or false once the walk is
// exhausted.
func (w *DfsWalker) Next() (ast.Node, bool) {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := w.stack[top]

		if w.order == PreOrder {
			w.stack = w.stack[:top]
			if !w.skip(f.n) {
				w.pushChildren(f.n)
			}
			return f.n, true
		}

		if f.expanded {
			w.stack = w.stack[:top]
			return f.n, true
		}
		w.stack[top].expanded = true
		if !w.skip(f.n) {
			w.pushChildren(f.n)
		}
	}
	return nil, false
}

// All exposes the remainder of the walk as a lazy sequence. The sequence
// draws from the walker's single pass, so ranging over it consumes the
// walker.
func (w *DfsWalker) All() iter.Seq[ast.Node] {
	return func(yield func(ast.Node) bool) {
		for {
			n, ok := w.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

func (w *DfsWalker) skip(n ast.Node) bool {
	return w.skipBelow != nil && w.skipBelow(n)
}

// children are pushed in reverse so the leftmost child is popped first
func (w *DfsWalker) pushChildren(n ast.Node) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		w.stack = append(w.stack, dfsFrame{n: children[i]})
	}
}
