// Package translate lowers parse trees to the AST.
//
// Translation is a single pass over the parse tree: each grammar production
// has a function that builds the corresponding AST node from its translated
// children. Every node is constructed through one Counter, and after the
// tree is linked the count is checked against the number of reachable nodes,
// which catches constructors that drop a child.
//
// Failures are not recoverable mid-tree. The first inconsistency panics with
// an *Error carrying the offending parse-tree node; the entry point recovers
// it and returns it to the caller.
package translate
