// Package ast defines the typed abstract syntax tree for Apex source files.
//
// The AST is distinct from the grammar-shaped parse tree produced by the
// parser package: where the parse tree mirrors grammar productions, the AST
// models the language. Nodes are built bottom-up by the translate package,
// have an ordered child list that is fixed once the node is complete, and
// gain a parent back-reference in a single linking pass (see Link) after the
// whole tree exists.
//
// Node variants are grouped into closed families: Declaration, Expression,
// Statement, Modifier, Initializer. Each family is an interface with an
// unexported marker method, so the set of variants cannot grow outside this
// package and consumers can type-switch exhaustively. Every concrete node
// also reports a stable Kind discriminator for serialization.
package ast
